package services

import (
	"context"

	"github.com/DmytroSyrovatskyi/FoodDiary/apperrors"
	"github.com/DmytroSyrovatskyi/FoodDiary/models"
	"github.com/DmytroSyrovatskyi/FoodDiary/repository"
	"github.com/DmytroSyrovatskyi/FoodDiary/validation"
)

// UserService handles the profile of the current user.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateUsername renames the user after running the validation engine on the
// updated entity. Nothing is written when any constraint fails.
func (s *UserService) UpdateUsername(ctx context.Context, id uint, username string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Username = username
	if ok, messages := validation.Check(user); !ok {
		return nil, apperrors.NewValidationError(messages...)
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.StoreFailure("update user", err)
	}
	return user, nil
}
