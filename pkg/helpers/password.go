package helpers

import "golang.org/x/crypto/bcrypt"

// bcrypt only reads the first 72 bytes of its input; the policy allows
// passwords up to 128 characters, so longer inputs are truncated before
// hashing. Compare applies the same truncation so both sides agree.
const bcryptMaxLen = 72

func truncateForBcrypt(plain string) []byte {
	b := []byte(plain)
	if len(b) > bcryptMaxLen {
		b = b[:bcryptMaxLen]
	}
	return b
}

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(truncateForBcrypt(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
// A malformed hash compares as false, it never panics.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncateForBcrypt(plain)) == nil
}
