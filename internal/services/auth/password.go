package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt digest from the plaintext secret. bcrypt
// generates a fresh random salt on every call, so two hashes of the same
// secret never match byte-for-byte.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext secret matches the stored
// digest. Malformed or foreign digest formats yield false, never an error.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
