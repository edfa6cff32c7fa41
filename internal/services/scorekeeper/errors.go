package scorekeeper

import "errors"

var (
	// ErrSessionNotFound is returned when the referenced session does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrHandNotFound is returned when the referenced hand does not exist
	ErrHandNotFound = errors.New("hand not found")

	// ErrSessionCompleted is returned when recording into a closed session
	ErrSessionCompleted = errors.New("session is already completed")

	// ErrInvalidRoster is returned when a session roster is not 4 or 5 players
	ErrInvalidRoster = errors.New("roster must have 4 or 5 players")

	// ErrDuplicatePlayer is returned when a roster contains the same name twice
	ErrDuplicatePlayer = errors.New("player names must be unique")

	// ErrCannotCorrectMarriage is returned when trying to correct a marriage
	// row in place; the two rows would fall out of sync
	ErrCannotCorrectMarriage = errors.New("marriage hands cannot be corrected in place")
)
