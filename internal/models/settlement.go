package models

// PlayerSettlement is one player's share of a session's final settlement.
// It is derived from the session's hands and never persisted.
type PlayerSettlement struct {
	// Points is the sum of the player's point deltas across all hands
	Points int

	// Money is the amount the player pays, rounded to cents. The player(s)
	// with the most points pay only the base stake; everyone else pays the
	// stake plus the point difference times the point value.
	Money float64

	// GainLoss is Money minus the base stake
	GainLoss float64
}
