package services

import "errors"

// User-input failures. These reach the user; provider failures never do.
var (
	ErrUnknownLocation       = errors.New("unknown location")
	ErrInvalidQuestion       = errors.New("invalid quiz question")
	ErrIncompleteQuiz        = errors.New("quiz has unanswered questions")
	ErrMissingReminderFields = errors.New("reminder is missing first application or end time")
)

// Prompts shown to the user for the input failures above.
const (
	QUIZ_INCOMPLETE_PROMPT     = "Please answer all questions before submitting."
	REMINDER_INCOMPLETE_PROMPT = "Please set both first application time and end time."
)
