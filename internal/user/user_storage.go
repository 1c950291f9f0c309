package user

import (
	"forumapi/internal/entities"
	"forumapi/internal/models"
)

type UserStorage interface {
	// AddUser persists a new user; password must already be hashed.
	AddUser(username, password, fullname string) (*entities.AddedUser, error)
	GetUserByUsername(username string) (*models.User, error)
	// VerifyAvailableUsername returns a ValidationError when the username
	// is taken.
	VerifyAvailableUsername(username string) error
}
