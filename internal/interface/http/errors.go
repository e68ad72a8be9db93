package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storeward/storefront-api/internal/application"
	"github.com/storeward/storefront-api/internal/domain/domainerr"
	"github.com/storeward/storefront-api/pkg/response"
)

// writeDomainError maps the domain error taxonomy onto HTTP statuses:
// not-found → 404, invalid argument → 400, constraint-violating writes
// → 400, anything else → 500 with the cause logged, never echoed.
func writeDomainError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, domainerr.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, domainerr.ErrInvalidArgument):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
	case domainerr.IsConstraint(err):
		response.Error(c, http.StatusBadRequest, "request conflicts with existing data", nil)
	default:
		logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
