package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokoclub/dokolator/internal/models"
)

func TestComposeMarriage_WithPartner(t *testing.T) {
	rows := ComposeMarriage(&MarriageHand{
		MarriagePlayer: "Bernd",
		Partner:        "Dirk",
		Dealer:         "Alice",
		ActivePlayers:  []string{"Bernd", "Claudia", "Dirk", "Emil"},
		Value:          5,
		Multiplier:     1,
	})
	require.Len(t, rows, 2)

	search, game := rows[0], rows[1]

	// The search row is a fixed-value solo round for the marriage holder,
	// regardless of the chosen game value.
	assert.Equal(t, models.HandPhaseSearch, search.Phase)
	assert.Equal(t, 1, search.Value)
	assert.Equal(t, map[string]int{"Bernd": 3, "Claudia": -1, "Dirk": -1, "Emil": -1}, search.Scores)
	assert.Equal(t, []models.Role{models.RoleHochzeit}, search.Roles["Bernd"])
	assert.Equal(t, []models.Role{models.RoleGeber}, search.Roles["Alice"])
	assert.Zero(t, sumScores(search.Scores))

	assert.Equal(t, models.HandPhaseWithPartner, game.Phase)
	assert.Equal(t, 5, game.Value)
	assert.Equal(t, map[string]int{"Bernd": 5, "Dirk": 5, "Claudia": -5, "Emil": -5}, game.Scores)
	assert.Equal(t, []models.Role{models.RoleRe}, game.Roles["Dirk"])
	assert.Zero(t, sumScores(game.Scores))
}

func TestComposeMarriage_WithoutPartner(t *testing.T) {
	rows := ComposeMarriage(&MarriageHand{
		MarriagePlayer: "Bernd",
		Dealer:         "Alice",
		ActivePlayers:  []string{"Bernd", "Claudia", "Dirk", "Emil"},
		Value:          4,
		Multiplier:     1,
	})
	require.Len(t, rows, 2)

	game := rows[1]
	assert.Equal(t, models.HandPhaseSoloMarriage, game.Phase)
	assert.Equal(t, 4, game.Value)
	assert.Equal(t, map[string]int{"Bernd": 12, "Claudia": -4, "Dirk": -4, "Emil": -4}, game.Scores)
	assert.Zero(t, sumScores(game.Scores))
}

func TestComposeMarriage_BockDoublesBothRows(t *testing.T) {
	rows := ComposeMarriage(&MarriageHand{
		MarriagePlayer: "Bernd",
		Partner:        "Claudia",
		Dealer:         "Alice",
		ActivePlayers:  []string{"Bernd", "Claudia", "Dirk", "Emil"},
		Value:          3,
		Multiplier:     2,
	})

	// The search row's fixed value of 1 is doubled even though the search
	// row never consumes a streak slot.
	assert.Equal(t, 2, rows[0].Value)
	assert.Equal(t, map[string]int{"Bernd": 6, "Claudia": -2, "Dirk": -2, "Emil": -2}, rows[0].Scores)

	assert.Equal(t, 6, rows[1].Value)
	assert.Equal(t, map[string]int{"Bernd": 6, "Claudia": 6, "Dirk": -6, "Emil": -6}, rows[1].Scores)
}

func TestComposeMarriage_DealerHoldsMarriageAtFour(t *testing.T) {
	rows := ComposeMarriage(&MarriageHand{
		MarriagePlayer: "Alice",
		Partner:        "Claudia",
		Dealer:         "Alice",
		ActivePlayers:  []string{"Alice", "Bernd", "Claudia", "Dirk"},
		Value:          2,
		Multiplier:     1,
	})

	// At a four-player table the dealer plays along; the geber tag is
	// merged onto the marriage holder.
	assert.Equal(t, []models.Role{models.RoleGeber, models.RoleHochzeit}, rows[0].Roles["Alice"])
	assert.Equal(t, map[string]int{"Alice": 3, "Bernd": -1, "Claudia": -1, "Dirk": -1}, rows[0].Scores)
	assert.Equal(t, map[string]int{"Alice": 2, "Claudia": 2, "Bernd": -2, "Dirk": -2}, rows[1].Scores)
}

func TestComposeMarriage_ZeroMultiplierDefaultsToOne(t *testing.T) {
	rows := ComposeMarriage(&MarriageHand{
		MarriagePlayer: "Bernd",
		Dealer:         "Alice",
		ActivePlayers:  []string{"Bernd", "Claudia", "Dirk", "Emil"},
		Value:          3,
	})
	assert.Equal(t, 1, rows[0].Value)
	assert.Equal(t, 3, rows[1].Value)
}
