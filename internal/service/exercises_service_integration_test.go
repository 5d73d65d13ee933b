package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/limbo/exetrack/internal/repository"
	"github.com/limbo/exetrack/internal/service"
	"github.com/limbo/exetrack/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestExerciseTrackingIntegrational(t *testing.T) {
	dbCfg := setupTestDB(t)
	userService := service.NewUserService(repository.NewUsersRepo(dbCfg), true)
	exercisesService := service.NewExercisesService(repository.NewExercisesRepo(dbCfg))
	ctx := context.Background()
	var user *entity.User
	var err error
	t.Run("created user", func(t *testing.T) {
		user, err = userService.Create(ctx, &service.CreateUserRequest{Username: "runner_42"})
		require.NoError(t, err)
		assert.Equal(t, "runner_42", user.Username)
	})
	t.Run("user appears in the list", func(t *testing.T) {
		users, err := userService.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, user.ID, users[0].ID)
	})
	t.Run("duplicate username returns the original id", func(t *testing.T) {
		again, err := userService.Create(ctx, &service.CreateUserRequest{Username: "runner_42"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, again.ID)
	})
	t.Run("logged exercises appear in the log", func(t *testing.T) {
		for _, date := range []string{"2024-01-01", "2024-02-01", "2024-03-01"} {
			_, err := exercisesService.Add(ctx, user.ID, &service.AddExerciseRequest{
				Description: "run",
				Duration:    30,
				Date:        date,
			})
			require.NoError(t, err)
		}
		exerciseLog, err := exercisesService.GetUserLog(ctx, user.ID, service.LogQuery{})
		require.NoError(t, err)
		assert.Equal(t, 3, exerciseLog.Count)
		assert.Len(t, exerciseLog.Exercises, 3)
	})
	t.Run("invalid exercise isn't persisted", func(t *testing.T) {
		_, err := exercisesService.Add(ctx, user.ID, &service.AddExerciseRequest{
			Description: "run",
			Duration:    1441,
		})
		assert.Error(t, err)
		exerciseLog, err := exercisesService.GetUserLog(ctx, user.ID, service.LogQuery{})
		require.NoError(t, err)
		assert.Equal(t, 3, exerciseLog.Count)
	})
	t.Run("date window filters", func(t *testing.T) {
		exerciseLog, err := exercisesService.GetUserLog(ctx, user.ID, service.LogQuery{
			From: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, 3, exerciseLog.Count)
		require.Len(t, exerciseLog.Exercises, 1)
		assert.Equal(t, "2024-02-01", exerciseLog.Exercises[0].Date.Format("2006-01-02"))
	})
	t.Run("limit keeps the earliest entries", func(t *testing.T) {
		for _, date := range []string{"2024-04-01", "2024-05-01"} {
			_, err := exercisesService.Add(ctx, user.ID, &service.AddExerciseRequest{
				Description: "run",
				Duration:    30,
				Date:        date,
			})
			require.NoError(t, err)
		}
		exerciseLog, err := exercisesService.GetUserLog(ctx, user.ID, service.LogQuery{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, exerciseLog.Count)
		require.Len(t, exerciseLog.Exercises, 2)
		assert.Equal(t, "2024-01-01", exerciseLog.Exercises[0].Date.Format("2006-01-02"))
		assert.Equal(t, "2024-02-01", exerciseLog.Exercises[1].Date.Format("2006-01-02"))
	})
	t.Run("fresh user has an empty log", func(t *testing.T) {
		fresh, err := userService.Create(ctx, &service.CreateUserRequest{Username: "swimmer_7"})
		require.NoError(t, err)
		exerciseLog, err := exercisesService.GetUserLog(ctx, fresh.ID, service.LogQuery{})
		require.NoError(t, err)
		assert.Equal(t, 0, exerciseLog.Count)
		assert.Empty(t, exerciseLog.Exercises)
	})
	t.Run("exercise for unknown user is a distinct error", func(t *testing.T) {
		_, err := userService.GetByID(ctx, uuid.New())
		assert.Error(t, err)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("exetrack"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
