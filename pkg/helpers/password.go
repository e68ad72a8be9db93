package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes plain+pepper with bcrypt at the given cost. A
// cost outside bcrypt's range falls back to the library default.
func HashPassword(plain, pepper string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain+pepper), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares a stored digest with a plain password and the
// pepper it was hashed with.
func CheckPassword(digest, plain, pepper string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain+pepper)) == nil
}
