package utils

import "golang.org/x/crypto/bcrypt"

// Cost 12 keeps a login check well under a second while staying expensive
// enough for offline cracking to hurt.
const bcryptCost = 12

// HashPassword derives the stored credential for a plaintext password.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
