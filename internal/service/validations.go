package service

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
	})
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// ParseDate accepts the plain calendar form first, full timestamps second
func ParseDate(raw string) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range dateLayouts {
		parsed, err = time.Parse(layout, raw)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}

// violationMessages renders one human-readable message per violated field.
// Every violation of a request is reported, not just the first
func violationMessages(errs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		switch fieldErr.Field() {
		case "Username":
			if fieldErr.Tag() == "required" {
				msgs = append(msgs, "username is required")
			} else {
				msgs = append(msgs, "username must be 30 characters or fewer")
			}
		case "Description":
			if fieldErr.Tag() == "required" {
				msgs = append(msgs, "description is required")
			} else {
				msgs = append(msgs, "description must be 20 characters or fewer")
			}
		case "Duration":
			msgs = append(msgs, "duration must be between 1 and 1440 minutes")
		default:
			msgs = append(msgs, fieldErr.Error())
		}
	}
	return msgs
}
