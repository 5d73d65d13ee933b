package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type Exercise struct {
	ID          int       `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

type ExerciseLog struct {
	// Count is the user's total number of exercises, not the filtered one
	Count     int         `json:"count"`
	Exercises []*Exercise `json:"exercises"`
}
