package errorvalues

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound = errors.New("user doesn't exists")
)

// ValidationError collects every violated-field message of a request
// instead of aborting on the first one
type ValidationError struct {
	Messages []string
}

func (ve *ValidationError) Error() string {
	return "validation error: " + strings.Join(ve.Messages, "; ")
}
