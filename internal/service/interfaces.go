package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/exetrack/pkg/entity"
)

type CreateUserRequest struct {
	Username string `validate:"required,max=30"`
}

type AddExerciseRequest struct {
	Description string `validate:"required,max=20"`
	Duration    int    `validate:"required,min=1,max=1440"`
	// Raw caller-supplied date, empty means "now"
	Date string
}

type LogQuery struct {
	From  time.Time
	To    time.Time
	Limit int
}

type UserServiceI interface {
	// Validates username, applies the duplicate-username policy and stores
	// new user with a generated id
	Create(ctx context.Context, req *CreateUserRequest) (*entity.User, error)
	// Lists every registered user
	List(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type ExercisesServiceI interface {
	// Validates fields and stores a new exercise for uid. The owning user's
	// existence is checked by the caller beforehand
	Add(ctx context.Context, uid uuid.UUID, req *AddExerciseRequest) (*entity.Exercise, error)
	// Full exercise count plus the filtered, ascending, truncated log of uid
	GetUserLog(ctx context.Context, uid uuid.UUID, query LogQuery) (*entity.ExerciseLog, error)
}
