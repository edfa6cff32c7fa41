package settlement

import (
	"sort"

	"github.com/dokoclub/dokolator/internal/models"
)

// AggregateStats aggregates settlement results across many sessions into
// per-player statistics. handsBySession maps session IDs to their hands.
//
// Every hand record a player appears in counts as one game, so the two rows
// of a marriage hand count twice. Money accumulates the settlement gain/loss
// of completed sessions only; points from active sessions still count.
// Results are ordered by total points, best first.
func AggregateStats(sessions []*models.Session, handsBySession map[string][]*models.Hand) []*models.PlayerStats {
	statsByName := make(map[string]*models.PlayerStats)

	for _, session := range sessions {
		hands := handsBySession[session.ID]

		for _, hand := range hands {
			for name, entry := range hand.Players {
				stats, ok := statsByName[name]
				if !ok {
					stats = &models.PlayerStats{
						PlayerName: name,
						LastPlayed: hand.Date,
					}
					statsByName[name] = stats
				}

				stats.TotalGames++
				stats.TotalPoints += entry.Points

				if hand.Date.After(stats.LastPlayed) {
					stats.LastPlayed = hand.Date
				}
			}
		}

		if session.Status == models.SessionStatusCompleted {
			for name, res := range SettleSession(session, hands) {
				if stats, ok := statsByName[name]; ok {
					stats.TotalMoney += res.GainLoss
				}
			}
		}
	}

	// A player is counted for a session when rostered, even without hands.
	for _, session := range sessions {
		for _, name := range session.PlayerNames {
			if stats, ok := statsByName[name]; ok {
				stats.SpieltageCount++
			}
		}
	}

	result := make([]*models.PlayerStats, 0, len(statsByName))
	for _, stats := range statsByName {
		if stats.TotalGames > 0 {
			stats.AveragePoints = roundCents(float64(stats.TotalPoints) / float64(stats.TotalGames))
		}
		stats.TotalMoney = roundCents(stats.TotalMoney)
		result = append(result, stats)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalPoints != result[j].TotalPoints {
			return result[i].TotalPoints > result[j].TotalPoints
		}
		return result[i].PlayerName < result[j].PlayerName
	})

	return result
}
