// Package settlement turns a session's recorded hands into money: the final
// per-player settlement of a single session and the cross-session player
// statistics. Like the scoring package it is pure computation over values
// handed in by the caller.
package settlement

import (
	"math"

	"github.com/dokoclub/dokolator/internal/models"
)

// SettleSession computes the final settlement of one session from its hands.
// The player(s) with the highest point total pay only the base stake; every
// other player pays the stake plus the point difference to the winner times
// the point value. Amounts are rounded to cents, half up.
func SettleSession(session *models.Session, hands []*models.Hand) map[string]models.PlayerSettlement {
	result := make(map[string]models.PlayerSettlement, len(session.PlayerNames))
	if len(session.PlayerNames) == 0 {
		return result
	}

	points := sumPoints(session.PlayerNames, hands)

	maxPoints := points[session.PlayerNames[0]]
	for _, name := range session.PlayerNames {
		if points[name] > maxPoints {
			maxPoints = points[name]
		}
	}

	for _, name := range session.PlayerNames {
		money := session.Stake
		if points[name] < maxPoints {
			diff := maxPoints - points[name]
			money = session.Stake + float64(diff)*session.PointValue
		}
		money = roundCents(money)

		result[name] = models.PlayerSettlement{
			Points:   points[name],
			Money:    money,
			GainLoss: roundCents(money - session.Stake),
		}
	}

	return result
}

// sumPoints totals each roster player's deltas across all hand records
func sumPoints(roster []string, hands []*models.Hand) map[string]int {
	points := make(map[string]int, len(roster))
	for _, name := range roster {
		points[name] = 0
	}
	for _, hand := range hands {
		for _, name := range roster {
			points[name] += hand.Players[name].Points
		}
	}
	return points
}

// roundCents rounds to two decimal places, half away from zero
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
