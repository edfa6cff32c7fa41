package models

import (
	"time"
)

// HandPhase marks which row of a marriage ("Hochzeit") hand a record is.
// Normal and solo hands carry HandPhaseNone.
type HandPhase string

const (
	// HandPhaseNone indicates a regular (non-marriage) hand
	HandPhaseNone HandPhase = ""

	// HandPhaseSearch is the first marriage row: the holder searches for a partner
	HandPhaseSearch HandPhase = "suche"

	// HandPhaseWithPartner is the second marriage row when a partner was found
	HandPhaseWithPartner HandPhase = "mit_partner"

	// HandPhaseSoloMarriage is the second marriage row when the holder played alone
	HandPhaseSoloMarriage HandPhase = "solo"
)

// Role is a role tag recorded on a player's entry in a hand
type Role string

const (
	// RoleGeber marks the dealer of the hand
	RoleGeber Role = "geber"

	// RoleRe marks a member of the Re team
	RoleRe Role = "re"

	// RoleSolo marks the solo player
	RoleSolo Role = "solo"

	// RoleHochzeit marks the marriage player
	RoleHochzeit Role = "hochzeit"
)

// PlayerScore is one player's entry in a hand record
type PlayerScore struct {
	// Roles are the role tags the player held in this hand. An empty list
	// means the player was on the Kontra side or sat out as dealer.
	Roles []Role

	// Points is the player's point delta for this hand
	Points int
}

// Hand represents one scored row within a session. A marriage hand produces
// two Hand records sharing the same HandNumber.
type Hand struct {
	// ID is the unique identifier for the hand
	ID string

	// SessionID is the session this hand belongs to
	SessionID string

	// HandNumber is the 1-based ordinal of the hand within its session
	HandNumber int

	// Value is the effective game value the hand was scored at, including
	// any double-stakes multiplier
	Value int

	// BockTrigger indicates this hand triggered a new double-stakes streak
	BockTrigger bool

	// Players maps every roster name to its role tags and point delta.
	// The deltas of a single record always sum to zero.
	Players map[string]PlayerScore

	// Phase marks the marriage row this record represents, if any
	Phase HandPhase

	// Date is when the hand was played
	Date time.Time

	// CreatedAt is when the record was created
	CreatedAt time.Time

	// UpdatedAt is when the record was last updated
	UpdatedAt time.Time
}
