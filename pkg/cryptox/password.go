// Package cryptox holds the password hashing primitives.
package cryptox

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor. Raising it only affects hashes
// created after the change; verification reads the cost out of the hash.
const PasswordCost = 10

// HashPassword returns a bcrypt hash of the password. The salt is
// generated per call and embedded in the encoded output.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the encoded hash.
// A mismatch or a malformed hash both return false; this never panics.
// bcrypt performs the comparison in constant time.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
