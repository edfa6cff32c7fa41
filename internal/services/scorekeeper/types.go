package scorekeeper

import (
	"time"

	"github.com/dokoclub/dokolator/internal/common/clock"
	"github.com/dokoclub/dokolator/internal/common/uuid"
	"github.com/dokoclub/dokolator/internal/models"
	handRepo "github.com/dokoclub/dokolator/internal/repositories/hand"
	sessionRepo "github.com/dokoclub/dokolator/internal/repositories/session"
	"github.com/dokoclub/dokolator/internal/scoring"
)

// Config holds the dependencies of the scorekeeper service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	HandRepo    handRepo.Repository

	// Common dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains parameters for starting a new session
type CreateSessionInput struct {
	// OwnerID is the user the session belongs to
	OwnerID string

	// Date is the day the session is played
	Date time.Time

	// Stake is the base amount every player pays ("Startgeld")
	Stake float64

	// PointValue is the monetary value of one point ("Punktwert")
	PointValue float64

	// PlayerNames is the ordered roster (4 or 5 unique names)
	PlayerNames []string
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *models.Session
}

// RecordHandInput contains one hand's raw submission
type RecordHandInput struct {
	// SessionID is the session the hand belongs to
	SessionID string

	// Roles maps player names to their role tokens. Players missing from
	// the map hold no role.
	Roles map[string]scoring.RoleToken

	// Value is the base game value chosen by the players
	Value int

	// BockTrigger indicates the hand triggers a new double-stakes streak
	BockTrigger bool
}

// RecordHandOutput contains the persisted hand record(s) and the session's
// streak state after the hand
type RecordHandOutput struct {
	// Hands holds one record for a normal or solo hand, two for a marriage
	Hands []*models.Hand

	// WasBockHand indicates the hand was scored at double value
	WasBockHand bool

	// BockState is the session's streak state after the transition
	BockState models.BockState
}

// CorrectHandInput contains a hand correction. The hand keeps its identifier
// and hand number; roles and value are replaced and the hand is rescored at
// the multiplier it was originally played under.
type CorrectHandInput struct {
	SessionID string
	HandID    string

	// Roles is the corrected role assignment
	Roles map[string]scoring.RoleToken

	// Value is the corrected base game value
	Value int
}

// CorrectHandOutput contains the rescored hand
type CorrectHandOutput struct {
	Hand *models.Hand
}

// CompleteSessionInput contains parameters for closing a session
type CompleteSessionInput struct {
	SessionID string
}

// CompleteSessionOutput contains the closed session
type CompleteSessionOutput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for loading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains a session and its hands in scoring order
type GetSessionOutput struct {
	Session *models.Session
	Hands   []*models.Hand
}

// ListSessionsInput contains parameters for listing a user's sessions
type ListSessionsInput struct {
	OwnerID string
}

// ListSessionsOutput contains the user's sessions, oldest first
type ListSessionsOutput struct {
	Sessions []*models.Session
}

// GetSettlementInput contains parameters for settling a session
type GetSettlementInput struct {
	SessionID string
}

// GetSettlementOutput contains the per-player settlement
type GetSettlementOutput struct {
	Settlement map[string]models.PlayerSettlement
}

// GetSessionStatsInput contains parameters for the session stats view
type GetSessionStatsInput struct {
	SessionID string
}

// GetSessionStatsOutput bundles a session, its hands and its settlement
type GetSessionStatsOutput struct {
	Session    *models.Session
	Hands      []*models.Hand
	Settlement map[string]models.PlayerSettlement
	TotalGames int
}

// GetPlayerStatsInput contains parameters for the cross-session statistics
type GetPlayerStatsInput struct {
	OwnerID string
}

// GetPlayerStatsOutput contains per-player statistics across all of the
// user's sessions, ordered by total points descending
type GetPlayerStatsOutput struct {
	Stats []*models.PlayerStats

	// Session counters over all of the user's sessions
	TotalSpieltage     int
	ActiveSpieltage    int
	CompletedSpieltage int

	// TotalGames is the number of hand records across all sessions
	TotalGames int
}
