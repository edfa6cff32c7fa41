package scoring

import (
	"fmt"

	"github.com/dokoclub/dokolator/internal/models"
)

// BockMultiplier returns the value multiplier for the next hand: 2 while a
// streak is open, 1 otherwise. It must be read before AdvanceBock is applied
// for that hand, since the transition consumes the hand just scored.
func BockMultiplier(state models.BockState) int {
	if state.Active > 0 {
		return 2
	}
	return 1
}

// AdvanceBock applies one hand's transition to the Bock streak state and
// returns the new state. It must be called exactly once per hand played, in
// submission order; for a marriage hand only the game row advances the
// state, never the search row.
//
// wasBockHand reports whether the hand just played consumed a streak slot
// (i.e. the streak was open before the hand). triggerNewStreak is the hand's
// trigger flag; it opens a fresh streak of tableSize hands, or extends the
// current one by tableSize. tableSize is the number of players at the table,
// not the active-player count.
func AdvanceBock(state models.BockState, wasBockHand, triggerNewStreak bool, tableSize int) models.BockState {
	next := state

	if wasBockHand {
		next.Active--
		next.PlayedInStreak++
	}

	if triggerNewStreak {
		if next.Active == 0 {
			// Fresh streak
			next.PlayedInStreak = 0
			next.TotalInStreak = tableSize
		} else {
			// Extend the running streak
			next.TotalInStreak += tableSize
		}
		next.Active += tableSize
	}

	// Streak exhausted
	if next.Active == 0 && next.PlayedInStreak >= next.TotalInStreak && next.TotalInStreak > 0 {
		next.PlayedInStreak = 0
		next.TotalInStreak = 0
	}

	return next
}

// FormatBockDisplay renders the streak position of a hand for table output,
// e.g. "3/5", or "-" when the hand was not part of a streak.
func FormatBockDisplay(wasBockHand bool, playedInStreak, totalInStreak int) string {
	if wasBockHand && totalInStreak > 0 {
		return fmt.Sprintf("%d/%d", playedInStreak, totalInStreak)
	}
	return "-"
}
