package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrNotMeetingOwner = errors.New("user is not the meeting owner")
)

// Suggestion errors
var (
	ErrSuggestionNotFound        = errors.New("suggestion not found")
	ErrSuggestionAlreadyReviewed = errors.New("suggestion already reviewed")
	ErrRejectionReasonRequired   = errors.New("rejection reason is required")
)

// Settings errors
var (
	ErrSettingsNotFound = errors.New("ai settings not found")
)
