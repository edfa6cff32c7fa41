package models

import (
	"time"
)

// SessionStatus represents the lifecycle state of a session
type SessionStatus string

const (
	// SessionStatusActive indicates hands can still be recorded
	SessionStatusActive SessionStatus = "active"

	// SessionStatusCompleted indicates the session has been settled and closed
	SessionStatusCompleted SessionStatus = "completed"
)

// BockState tracks the double-stakes streak across the hands of a session.
// All three counters are zero when no streak is open. While a streak is open,
// Active = TotalInStreak - PlayedInStreak.
type BockState struct {
	// Active is the number of double-stakes hands still to be played
	Active int

	// PlayedInStreak is the number of double-stakes hands played in the current streak
	PlayedInStreak int

	// TotalInStreak is the total size of the current streak
	TotalInStreak int
}

// Session represents one game day ("Spieltag") for a fixed roster of players
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// OwnerID is the user the session belongs to
	OwnerID string

	// Date is the day the session was played
	Date time.Time

	// Stake is the base amount every player pays ("Startgeld")
	Stake float64

	// PointValue is the monetary value of a single point ("Punktwert")
	PointValue float64

	// PlayerNames is the ordered roster for this session (4 or 5 names)
	PlayerNames []string

	// Status is the current lifecycle state of the session
	Status SessionStatus

	// Bock is the double-stakes streak state, updated after every hand
	Bock BockState

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}
