package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/LAES18/proyecto-automatas/auth"
	"github.com/LAES18/proyecto-automatas/models"
)

// RegisterUser creates a user with a salted bcrypt hash of the password. The
// plaintext is never stored. A duplicate email maps to ErrEmailTaken.
func RegisterUser(db *gorm.DB, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: email, Password: hash}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// VerifyUser checks login credentials. Unknown email and wrong password
// return the same ErrInvalidCredentials.
func VerifyUser(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
