package scoring

import (
	"github.com/dokoclub/dokolator/internal/models"
)

// MarriageHand describes a marriage ("Hochzeit") hand to be composed into
// its two scoring rows
type MarriageHand struct {
	// MarriagePlayer is the player holding the marriage
	MarriagePlayer string

	// Partner is the Re partner found during the search, or empty if the
	// marriage player ended up playing alone
	Partner string

	// Dealer is the dealing player
	Dealer string

	// ActivePlayers is the ordered active-player set for the hand
	ActivePlayers []string

	// Value is the base game value chosen for the actual game row
	Value int

	// Multiplier is the Bock multiplier in effect when the hand was played
	Multiplier int
}

// MarriageRow is one of the two scoring rows of a marriage hand
type MarriageRow struct {
	// Phase tags the row: search, with-partner or solo-marriage
	Phase models.HandPhase

	// Value is the effective value the row was scored at
	Value int

	// Scores maps active players to their point deltas for the row
	Scores map[string]int

	// Roles maps tagged players to their role tags for the row
	Roles map[string][]models.Role
}

// ComposeMarriage expands a marriage hand into its two rows, which share one
// hand number. The search row is always a solo-formula row at value 1 times
// the multiplier: the holder announces, everyone pays one. The game row is a
// Re/Kontra row of holder and partner when a partner was found, and a
// solo-formula row otherwise.
//
// The search row is doubled by an open streak but never consumes a streak
// slot; only the game row's trigger flag reaches the Bock machine.
func ComposeMarriage(in *MarriageHand) []MarriageRow {
	mult := in.Multiplier
	if mult == 0 {
		mult = 1
	}

	search := MarriageRow{
		Phase:  models.HandPhaseSearch,
		Value:  1 * mult,
		Scores: ScoreSolo(in.MarriagePlayer, in.ActivePlayers, 1*mult),
		Roles:  marriageRoles(in.Dealer, in.MarriagePlayer, ""),
	}

	game := MarriageRow{
		Value: in.Value * mult,
		Roles: marriageRoles(in.Dealer, in.MarriagePlayer, in.Partner),
	}
	if in.Partner != "" {
		game.Phase = models.HandPhaseWithPartner
		game.Scores = ScoreReKontra([]string{in.MarriagePlayer, in.Partner}, in.ActivePlayers, game.Value)
	} else {
		game.Phase = models.HandPhaseSoloMarriage
		game.Scores = ScoreSolo(in.MarriagePlayer, in.ActivePlayers, game.Value)
	}

	return []MarriageRow{search, game}
}

// marriageRoles builds the role tags for one marriage row. The dealer tag is
// merged onto the marriage player when they also deal (four-player table).
func marriageRoles(dealer, marriagePlayer, partner string) map[string][]models.Role {
	roles := make(map[string][]models.Role)
	if dealer != "" && dealer != marriagePlayer && dealer != partner {
		roles[dealer] = []models.Role{models.RoleGeber}
	}

	marriageTags := []models.Role{}
	if dealer == marriagePlayer {
		marriageTags = append(marriageTags, models.RoleGeber)
	}
	roles[marriagePlayer] = append(marriageTags, models.RoleHochzeit)

	if partner != "" {
		partnerTags := []models.Role{}
		if dealer == partner {
			partnerTags = append(partnerTags, models.RoleGeber)
		}
		roles[partner] = append(partnerTags, models.RoleRe)
	}

	return roles
}
