package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/exetrack/pkg/cleanup"
	"github.com/limbo/exetrack/pkg/entity"
)

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(cfg DBConfig) *ExercisesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for exercisesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ExercisesRepository{
		conn: pool,
	}
}

func NewExercisesRepoWithConn(conn PgConnection) *ExercisesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) Create(ctx context.Context, exercise *entity.Exercise) (int, error) {
	if exercise == nil {
		return 0, errors.New("exercise is nil")
	}
	var id int
	row := er.conn.QueryRow(
		ctx,
		`INSERT INTO exercises (user_id, description, duration, exercise_date) VALUES ($1, $2, $3, $4) RETURNING id;`,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
	)
	if err := row.Scan(&id); err != nil {
		return 0, errors.New("creating exercise db error: " + err.Error())
	}
	return id, nil
}

func (er *ExercisesRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	row := er.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM exercises WHERE user_id = $1;`,
		uid,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting exercises: " + err.Error())
	}
	return count, nil
}

func (er *ExercisesRepository) FindByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time, limit int) ([]*entity.Exercise, error) {
	// NULL limit keeps the query text constant while meaning "no limit"
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}
	rows, err := er.conn.Query(
		ctx,
		`SELECT id, user_id, description, duration, exercise_date, created_at FROM exercises WHERE user_id = $1 AND exercise_date >= $2 AND exercise_date < $3 ORDER BY exercise_date LIMIT $4;`,
		uid,
		from,
		to,
		limitArg,
	)
	if err != nil {
		return nil, errors.New("getting exercises by uid error: " + err.Error())
	}
	defer rows.Close()
	exercises := make([]*entity.Exercise, 0)
	for rows.Next() {
		e := entity.Exercise{}
		err = rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date, &e.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling exercise error: " + err.Error())
		}
		exercises = append(exercises, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return exercises, nil
}
