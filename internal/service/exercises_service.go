package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/exetrack/internal/error_values"
	"github.com/limbo/exetrack/internal/repository"
	"github.com/limbo/exetrack/pkg/entity"
)

// Default log window when the caller supplies no bounds
var (
	logRangeStart = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	logRangeEnd   = time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
)

type ExercisesService struct {
	repo repository.ExercisesRepositoryI
}

func NewExercisesService(exercisesRepo repository.ExercisesRepositoryI) *ExercisesService {
	if exercisesRepo == nil {
		log.Fatal("provided nil exercisesRepo")
	}
	return &ExercisesService{
		repo: exercisesRepo,
	}
}

func (es *ExercisesService) Add(ctx context.Context, uid uuid.UUID, req *AddExerciseRequest) (*entity.Exercise, error) {
	var msgs []string
	err := validate.Struct(*req)
	if err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, errors.New("validation unexpected error: " + err.Error())
		}
		msgs = violationMessages(validationErrs)
	}
	date := time.Now()
	if req.Date != "" {
		parsed, err := ParseDate(req.Date)
		if err != nil {
			msgs = append(msgs, "date must be a valid calendar date")
		} else {
			date = parsed
		}
	}
	if len(msgs) > 0 {
		return nil, &errorvalues.ValidationError{Messages: msgs}
	}
	exercise := entity.Exercise{
		UserID:      uid,
		Description: req.Description,
		Duration:    req.Duration,
		Date:        date,
	}
	id, err := es.repo.Create(ctx, &exercise)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	exercise.ID = id
	return &exercise, nil
}

func (es *ExercisesService) GetUserLog(ctx context.Context, uid uuid.UUID, query LogQuery) (*entity.ExerciseLog, error) {
	from, to := query.From, query.To
	if from.IsZero() {
		from = logRangeStart
	}
	if to.IsZero() {
		to = logRangeEnd
	}
	count, err := es.repo.CountByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	exercises, err := es.repo.FindByUserAndDateRange(ctx, uid, from, to, query.Limit)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return &entity.ExerciseLog{
		Count:     count,
		Exercises: exercises,
	}, nil
}
