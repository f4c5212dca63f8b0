package pkg

import "golang.org/x/crypto/bcrypt"

// bcrypt cost for admin password hashes, hashing happens only on
// credential setup so the extra work factor is fine
const passwordHashCost = 14

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
