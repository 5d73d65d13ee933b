package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/exetrack/internal/error_values"
	"github.com/limbo/exetrack/internal/repository"
	"github.com/limbo/exetrack/pkg/entity"
)

type UserService struct {
	repo          repository.UsersRepositoryI
	enforceUnique bool
}

func NewUserService(usersRepo repository.UsersRepositoryI, enforceUniqueUsername bool) *UserService {
	return &UserService{
		repo:          usersRepo,
		enforceUnique: enforceUniqueUsername,
	}
}

func (us *UserService) Create(ctx context.Context, req *CreateUserRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			return nil, &errorvalues.ValidationError{Messages: violationMessages(validationErrs)}
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	if us.enforceUnique {
		// Read-then-write: concurrent identical requests can still both
		// insert. Accepted at this scale
		existing, err := us.repo.FindByUsername(ctx, req.Username)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errors.New("repository searching error: " + err.Error())
		}
	}
	user := entity.User{
		ID:       uuid.New(),
		Username: req.Username,
	}
	err = us.repo.Create(ctx, &user)
	if err != nil {
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return &user, nil
}

func (us *UserService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := us.repo.List(ctx)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	return users, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}
