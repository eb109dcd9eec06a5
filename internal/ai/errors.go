package ai

import "errors"

var (
	// ErrParse means the model output could not be decoded into a draft.
	ErrParse = errors.New("Failed to parse task from natural language input")
	// ErrUnavailable covers gateway and other runtime failures on the
	// task-creation path.
	ErrUnavailable = errors.New("AI service temporarily unavailable")
	// ErrInvalidTitle means the model produced a draft without a usable title.
	ErrInvalidTitle = errors.New("AI failed to generate a valid task title")
)
