package models

import "golang.org/x/crypto/bcrypt"

// User is an account that can sign in and leave reviews. Superuser marks
// store-management accounts allowed to mutate the product catalog.
type User struct {
	Base
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Superuser    bool   `gorm:"not null;default:false"`
}

// HashPassword turns a plain password into a bcrypt hash.
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword reports whether pw matches the stored hash.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
