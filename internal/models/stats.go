package models

import (
	"time"
)

// PlayerStats aggregates a player's results across all sessions of a user
type PlayerStats struct {
	// PlayerName identifies the player
	PlayerName string

	// TotalGames is the number of hand records the player appeared in
	TotalGames int

	// TotalPoints is the sum of all point deltas
	TotalPoints int

	// TotalMoney is the accumulated gain/loss from completed sessions only
	TotalMoney float64

	// AveragePoints is TotalPoints / TotalGames, rounded to two decimals
	AveragePoints float64

	// SpieltageCount is the number of sessions the player was rostered in
	SpieltageCount int

	// LastPlayed is the date of the player's most recent hand
	LastPlayed time.Time
}
