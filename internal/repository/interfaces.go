package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/exetrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user with application-assigned id
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by username. Used for the duplicate-username policy
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Looks up user by id. Owning-user checks before logging exercises go through this
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Lists every registered user
	List(ctx context.Context) ([]*entity.User, error)
}

type ExercisesRepositoryI interface {
	// Creates exercise row and returns its assigned id. Doesn't verify the
	// referenced user exists, that's the caller's job
	Create(ctx context.Context, exercise *entity.Exercise) (int, error)
	// Total number of exercises logged by user with uid
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
	// Exercises of uid with date in [from, to), ascending by date,
	// truncated to limit. Limit < 1 means no limit
	FindByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time, limit int) ([]*entity.Exercise, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
