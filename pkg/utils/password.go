package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of pw. The digest is the only form
// ever persisted; the plain password never leaves the auth service.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(pw, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(pw)) == nil
}
