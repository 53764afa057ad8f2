package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("unable to authenticate with these credentials")
	ErrPictureAlreadySet  = errors.New("profile picture can only be set once and cannot be changed")
)

// notFound maps gorm's missing-row error onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
