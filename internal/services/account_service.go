package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*response_models.LoginResponse, error)
	Logout(userID uint)
}

type AccountService struct {
	userRepo repositories.UserRepository
	trips    memcache.ActiveTripStore
}

func NewAccountService(userRepo repositories.UserRepository, trips memcache.ActiveTripStore) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		trips:    trips,
	}
}

// Register creates the user unless the username is already taken. The
// password is stored as a bcrypt hash; the caller-visible contract is
// unchanged from plaintext credentials.
func (a *AccountService) Register(ctx context.Context, username, password string) error {
	existing, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     username,
		PasswordHash: hashed,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		// a concurrent registration can still hit the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.Warnf("Registration lost a race for %q", username)
			return utils.ErrUsernameTaken
		}
		logrus.Errorf("Registration insert failed for %q: %v", username, err)
		return utils.ErrDatabaseError
	}

	return nil
}

// Login matches credentials exactly; an unknown username and a wrong password
// are indistinguishable to the caller.
func (a *AccountService) Login(ctx context.Context, username, password string) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Username)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// Logout drops the session's itinerary selection.
func (a *AccountService) Logout(userID uint) {
	a.trips.Clear(userID)
}
