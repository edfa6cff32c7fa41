package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokoclub/dokolator/internal/models"
)

func TestAggregateStats_RoundTripAcrossSessions(t *testing.T) {
	day1 := testSession([]string{"A", "B", "C", "D"}, 10, 0.05)
	day1.ID = "day-1"
	day1.Status = models.SessionStatusCompleted
	day1Hands := []*models.Hand{
		handWithPoints(1, map[string]int{"A": 4, "B": -4, "C": 2, "D": -2}),
		handWithPoints(2, map[string]int{"A": 6, "B": 2, "C": -4, "D": -4}),
	}

	day2 := testSession([]string{"A", "B", "C", "D"}, 10, 0.05)
	day2.ID = "day-2"
	day2.Status = models.SessionStatusCompleted
	day2Hands := []*models.Hand{
		handWithPoints(1, map[string]int{"A": -3, "B": 3, "C": 3, "D": -3}),
	}

	stats := AggregateStats(
		[]*models.Session{day1, day2},
		map[string][]*models.Hand{"day-1": day1Hands, "day-2": day2Hands},
	)
	require.Len(t, stats, 4)

	byName := make(map[string]*models.PlayerStats, len(stats))
	for _, s := range stats {
		byName[s.PlayerName] = s
	}

	// Totals match summing each session's points by hand.
	assert.Equal(t, 7, byName["A"].TotalPoints)
	assert.Equal(t, 1, byName["B"].TotalPoints)
	assert.Equal(t, 1, byName["C"].TotalPoints)
	assert.Equal(t, -9, byName["D"].TotalPoints)

	assert.Equal(t, 3, byName["A"].TotalGames)
	assert.Equal(t, 2, byName["A"].SpieltageCount)

	// Money accumulates the settlement gain/loss of both completed days.
	// Day 1: A leads with 10; B pays +0.60, C +0.60, D +0.80.
	// Day 2: B and C lead with 3; A pays +0.30, D +0.30.
	assert.Equal(t, 0.30, byName["A"].TotalMoney)
	assert.Equal(t, 0.60, byName["B"].TotalMoney)
	assert.Equal(t, 0.60, byName["C"].TotalMoney)
	assert.Equal(t, 1.10, byName["D"].TotalMoney)

	// Ordered by total points, best first.
	assert.Equal(t, "A", stats[0].PlayerName)
	assert.Equal(t, "D", stats[3].PlayerName)
}

func TestAggregateStats_ActiveSessionMoneyExcluded(t *testing.T) {
	session := testSession([]string{"A", "B", "C", "D"}, 10, 0.05)
	session.Status = models.SessionStatusActive
	hands := []*models.Hand{
		handWithPoints(1, map[string]int{"A": 3, "B": 3, "C": -3, "D": -3}),
	}

	stats := AggregateStats([]*models.Session{session}, map[string][]*models.Hand{session.ID: hands})

	for _, s := range stats {
		assert.Zero(t, s.TotalMoney, "active sessions must not contribute money")
	}
	// Points still count.
	assert.Equal(t, 3, stats[0].TotalPoints)
}

func TestAggregateStats_AveragePoints(t *testing.T) {
	session := testSession([]string{"A", "B", "C", "D"}, 10, 0.05)
	hands := []*models.Hand{
		handWithPoints(1, map[string]int{"A": 1, "B": 1, "C": -1, "D": -1}),
		handWithPoints(2, map[string]int{"A": 1, "B": -1, "C": 1, "D": -1}),
		handWithPoints(3, map[string]int{"A": -1, "B": 1, "C": 1, "D": -1}),
	}

	stats := AggregateStats([]*models.Session{session}, map[string][]*models.Hand{session.ID: hands})

	byName := make(map[string]*models.PlayerStats, len(stats))
	for _, s := range stats {
		byName[s.PlayerName] = s
	}

	assert.Equal(t, 0.33, byName["A"].AveragePoints)
	assert.Equal(t, -1.0, byName["D"].AveragePoints)
}

func TestAggregateStats_LastPlayed(t *testing.T) {
	session := testSession([]string{"A", "B", "C", "D"}, 10, 0.05)

	older := handWithPoints(1, map[string]int{"A": 1, "B": -1, "C": 1, "D": -1})
	older.Date = time.Date(2025, 10, 3, 19, 0, 0, 0, time.UTC)
	newer := handWithPoints(2, map[string]int{"A": 1, "B": -1, "C": 1, "D": -1})
	newer.Date = time.Date(2025, 11, 7, 20, 30, 0, 0, time.UTC)

	stats := AggregateStats([]*models.Session{session}, map[string][]*models.Hand{session.ID: {older, newer}})

	for _, s := range stats {
		assert.Equal(t, newer.Date, s.LastPlayed)
	}
}

func TestAggregateStats_Empty(t *testing.T) {
	stats := AggregateStats(nil, nil)
	assert.Empty(t, stats)
}
