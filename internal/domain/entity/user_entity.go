package entity

// User is identified by a caller-chosen natural key, not a surrogate.
// PasswordDigest holds the peppered bcrypt hash and never leaves the
// API.
type User struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PasswordDigest string `json:"-"`
}
