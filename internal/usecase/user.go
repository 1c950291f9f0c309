package usecase

import (
	"errors"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/models"
	"forumapi/internal/user"
	"forumapi/internal/utils"
)

type UserUseCase struct {
	users user.UserStorage
}

func NewUserUseCase(users user.UserStorage) *UserUseCase {
	return &UserUseCase{users: users}
}

func (u *UserUseCase) Register(payload entities.RegisterPayload) (*entities.AddedUser, error) {
	if payload.Username == "" || payload.Password == "" {
		return nil, apperrors.NewValidationError("harus mengirimkan username dan password")
	}
	if err := u.users.VerifyAvailableUsername(payload.Username); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	return u.users.AddUser(payload.Username, hash, payload.Fullname)
}

// Login verifies credentials and returns the matching user. An unknown
// username and a wrong password fail identically, so the response does not
// leak which part was wrong.
func (u *UserUseCase) Login(payload entities.LoginPayload) (*models.User, error) {
	if payload.Username == "" || payload.Password == "" {
		return nil, apperrors.NewValidationError("harus mengirimkan username dan password")
	}

	found, err := u.users.GetUserByUsername(payload.Username)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			return nil, apperrors.NewAuthenticationError("Kredensial yang Anda berikan salah")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(payload.Password, found.Password) {
		return nil, apperrors.NewAuthenticationError("Kredensial yang Anda berikan salah")
	}

	return found, nil
}
