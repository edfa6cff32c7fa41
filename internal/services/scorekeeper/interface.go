package scorekeeper

import "context"

// Service records hands for a session, maintains the Bock streak state and
// derives settlements and statistics.
//
// Hands of one session must be recorded strictly in submission order and
// callers must serialize RecordHand and CorrectHand per session: the Bock
// streak transition depends on the state left by the previous hand. The
// service itself performs no locking; the in-memory repositories serialize
// internally, any other store must provide the same guarantee.
type Service interface {
	// CreateSession starts a new game day for a roster of 4 or 5 players
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// RecordHand validates, scores and persists one hand. A marriage hand
	// produces two records sharing one hand number, written atomically.
	RecordHand(ctx context.Context, input *RecordHandInput) (*RecordHandOutput, error)

	// CorrectHand rescores a previously recorded hand in place, preserving
	// its identifier and hand number. Marriage rows cannot be corrected.
	CorrectHand(ctx context.Context, input *CorrectHandInput) (*CorrectHandOutput, error)

	// CompleteSession closes a session; no further hands can be recorded
	CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error)

	// GetSession retrieves a session together with its hands
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessions retrieves all sessions of a user, oldest first
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// GetSettlement computes the per-player settlement of one session
	GetSettlement(ctx context.Context, input *GetSettlementInput) (*GetSettlementOutput, error)

	// GetSessionStats returns a session, its hands and its settlement in one call
	GetSessionStats(ctx context.Context, input *GetSessionStatsInput) (*GetSessionStatsOutput, error)

	// GetPlayerStats aggregates per-player statistics across all sessions of a user
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)
}
