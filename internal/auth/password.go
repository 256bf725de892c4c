package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a one-way salted hash of the plaintext. bcrypt embeds
// a fresh random salt in every hash, so the same password hashed for two
// users never produces the same stored value.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
