package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dokoclub/dokolator/internal/models"
)

func TestBockMultiplier(t *testing.T) {
	assert.Equal(t, 1, BockMultiplier(models.BockState{}))
	assert.Equal(t, 2, BockMultiplier(models.BockState{Active: 1, TotalInStreak: 5, PlayedInStreak: 4}))
	assert.Equal(t, 2, BockMultiplier(models.BockState{Active: 10, TotalInStreak: 10}))
}

func TestAdvanceBock_NoStreakIsNoOp(t *testing.T) {
	state := models.BockState{}
	for i := 0; i < 3; i++ {
		state = AdvanceBock(state, false, false, 5)
	}
	assert.Equal(t, models.BockState{}, state)
}

func TestAdvanceBock_TriggerStartsStreak(t *testing.T) {
	state := AdvanceBock(models.BockState{}, false, true, 5)
	assert.Equal(t, models.BockState{Active: 5, PlayedInStreak: 0, TotalInStreak: 5}, state)

	state = AdvanceBock(models.BockState{}, false, true, 4)
	assert.Equal(t, models.BockState{Active: 4, PlayedInStreak: 0, TotalInStreak: 4}, state)
}

func TestAdvanceBock_StreakRunsOutAndResets(t *testing.T) {
	state := AdvanceBock(models.BockState{}, false, true, 5)

	// Five double-stakes hands consume the streak; the fifth resets it.
	for i := 1; i <= 5; i++ {
		wasBock := state.Active > 0
		assert.True(t, wasBock, "hand %d should be a bock hand", i)
		assert.Equal(t, 2, BockMultiplier(state))

		state = AdvanceBock(state, wasBock, false, 5)

		if i < 5 {
			assert.Equal(t, models.BockState{Active: 5 - i, PlayedInStreak: i, TotalInStreak: 5}, state)
		}
	}

	assert.Equal(t, models.BockState{}, state)
	assert.Equal(t, 1, BockMultiplier(state))
}

func TestAdvanceBock_TriggerExtendsRunningStreak(t *testing.T) {
	state := AdvanceBock(models.BockState{}, false, true, 4)
	assert.Equal(t, models.BockState{Active: 4, TotalInStreak: 4}, state)

	// Second trigger lands while the streak is open: the played counter
	// survives and the streak grows by the table size.
	state = AdvanceBock(state, true, true, 4)
	assert.Equal(t, models.BockState{Active: 7, PlayedInStreak: 1, TotalInStreak: 8}, state)

	for state.Active > 0 {
		state = AdvanceBock(state, true, false, 4)
	}
	assert.Equal(t, models.BockState{}, state)
}

func TestAdvanceBock_TriggerOnLastStreakHand(t *testing.T) {
	state := models.BockState{Active: 1, PlayedInStreak: 4, TotalInStreak: 5}

	// The hand consumes the final slot and immediately opens a new streak:
	// no reset happens in between.
	state = AdvanceBock(state, true, true, 5)
	assert.Equal(t, models.BockState{Active: 5, PlayedInStreak: 0, TotalInStreak: 5}, state)
}

func TestFormatBockDisplay(t *testing.T) {
	assert.Equal(t, "-", FormatBockDisplay(false, 0, 0))
	assert.Equal(t, "-", FormatBockDisplay(true, 0, 0))
	assert.Equal(t, "2/5", FormatBockDisplay(true, 2, 5))
}
