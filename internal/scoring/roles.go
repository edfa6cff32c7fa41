// Package scoring is the pure computation core of the scorekeeper: role
// classification, per-hand point calculation, marriage composition and the
// Bock streak state machine. It performs no I/O and holds no state; every
// function is deterministic over its inputs.
package scoring

import (
	"fmt"

	"github.com/dokoclub/dokolator/internal/models"
)

// PrimaryRole is the scoring role a player holds in a hand, independent of
// whether they also deal
type PrimaryRole string

const (
	// PrimaryNone means the player holds no scoring role (Kontra side)
	PrimaryNone PrimaryRole = ""

	// PrimaryRe marks a member of the Re team
	PrimaryRe PrimaryRole = "re"

	// PrimarySolo marks the solo player
	PrimarySolo PrimaryRole = "solo"

	// PrimaryHochzeit marks the marriage player
	PrimaryHochzeit PrimaryRole = "hochzeit"
)

// RoleToken is one player's role selection for a hand. It replaces the
// legacy concatenated strings ("geber+re") with a structured form: dealing
// is orthogonal to the scoring role, since at a four-player table the dealer
// plays along.
type RoleToken struct {
	// Dealer indicates the player deals this hand
	Dealer bool

	// Primary is the player's scoring role, if any
	Primary PrimaryRole
}

// ParseRoleToken parses the wire form of a role selection: "", "geber",
// "re", "solo", "hochzeit" or a "geber+X" combination.
func ParseRoleToken(s string) (RoleToken, error) {
	switch s {
	case "":
		return RoleToken{}, nil
	case "geber":
		return RoleToken{Dealer: true}, nil
	case "re":
		return RoleToken{Primary: PrimaryRe}, nil
	case "solo":
		return RoleToken{Primary: PrimarySolo}, nil
	case "hochzeit":
		return RoleToken{Primary: PrimaryHochzeit}, nil
	case "geber+re":
		return RoleToken{Dealer: true, Primary: PrimaryRe}, nil
	case "geber+solo":
		return RoleToken{Dealer: true, Primary: PrimarySolo}, nil
	case "geber+hochzeit":
		return RoleToken{Dealer: true, Primary: PrimaryHochzeit}, nil
	}

	return RoleToken{}, fmt.Errorf("unknown role token %q", s)
}

// String renders the token back into its wire form
func (t RoleToken) String() string {
	if t.Dealer {
		if t.Primary == PrimaryNone {
			return "geber"
		}
		return "geber+" + string(t.Primary)
	}
	return string(t.Primary)
}

// Roles returns the role tags to record on a hand entry for this token
func (t RoleToken) Roles() []models.Role {
	var roles []models.Role
	if t.Dealer {
		roles = append(roles, models.RoleGeber)
	}
	switch t.Primary {
	case PrimaryRe:
		roles = append(roles, models.RoleRe)
	case PrimarySolo:
		roles = append(roles, models.RoleSolo)
	case PrimaryHochzeit:
		roles = append(roles, models.RoleHochzeit)
	}
	return roles
}

// RoleSet is the validated, classified role assignment for one hand
type RoleSet struct {
	// Dealer is the name of the dealing player
	Dealer string

	// RePlayers are the members of the Re team. For a marriage hand this
	// holds the partner, if one was named.
	RePlayers []string

	// SoloPlayer is the solo player, or empty
	SoloPlayer string

	// MarriagePlayer is the marriage ("Hochzeit") player, or empty
	MarriagePlayer string
}

// IsSolo reports whether the hand is a solo hand
func (r *RoleSet) IsSolo() bool {
	return r.SoloPlayer != ""
}

// IsMarriage reports whether the hand is a marriage hand
func (r *RoleSet) IsMarriage() bool {
	return r.MarriagePlayer != ""
}

// ResolveActivePlayers returns the ordered subset of the roster that takes
// part in scoring this hand. At a five-player table the dealer sits out; at
// four players the dealer plays along and may hold a scoring role.
func ResolveActivePlayers(roster []string, dealer string, tableSize int) []string {
	active := make([]string, 0, len(roster))
	for _, name := range roster {
		if tableSize == 5 && name == dealer {
			continue
		}
		active = append(active, name)
	}
	return active
}

// ClassifyRoles validates one hand's role assignment against the roster and
// table size and returns the structured role set. The assignment maps player
// names to their role tokens; players missing from the map hold no role.
// Failures are *ValidationError values naming the violated rule.
func ClassifyRoles(assignment map[string]RoleToken, roster []string, tableSize int) (*RoleSet, error) {
	var dealers, rePlayers, soloPlayers, marriagePlayers []string

	// Walk the roster, not the map, to keep classification order stable.
	for _, name := range roster {
		token := assignment[name]
		if token.Dealer {
			dealers = append(dealers, name)
		}
		switch token.Primary {
		case PrimaryRe:
			rePlayers = append(rePlayers, name)
		case PrimarySolo:
			soloPlayers = append(soloPlayers, name)
		case PrimaryHochzeit:
			marriagePlayers = append(marriagePlayers, name)
		}
	}

	if len(dealers) != 1 {
		return nil, ErrNoDealer
	}
	dealer := dealers[0]

	active := ResolveActivePlayers(roster, dealer, tableSize)

	if len(soloPlayers) > 0 {
		if len(soloPlayers) != 1 || len(rePlayers) > 0 || len(marriagePlayers) > 0 {
			return nil, ErrInvalidSolo
		}
		if !containsPlayer(active, soloPlayers[0]) {
			return nil, ErrPlayerNotActive
		}

		return &RoleSet{
			Dealer:     dealer,
			SoloPlayer: soloPlayers[0],
		}, nil
	}

	if len(marriagePlayers) > 0 {
		if len(marriagePlayers) != 1 || len(rePlayers) > 1 {
			return nil, ErrInvalidMarriage
		}
		if len(rePlayers) == 1 && rePlayers[0] == marriagePlayers[0] {
			return nil, ErrInvalidMarriage
		}
		if !containsPlayer(active, marriagePlayers[0]) {
			return nil, ErrPlayerNotActive
		}
		for _, name := range rePlayers {
			if !containsPlayer(active, name) {
				return nil, ErrPlayerNotActive
			}
		}

		return &RoleSet{
			Dealer:         dealer,
			RePlayers:      rePlayers,
			MarriagePlayer: marriagePlayers[0],
		}, nil
	}

	if len(rePlayers) != 2 {
		return nil, ErrTwoRePlayers
	}
	for _, name := range rePlayers {
		if !containsPlayer(active, name) {
			return nil, ErrPlayerNotActive
		}
	}

	return &RoleSet{
		Dealer:    dealer,
		RePlayers: rePlayers,
	}, nil
}

func containsPlayer(players []string, name string) bool {
	for _, p := range players {
		if p == name {
			return true
		}
	}
	return false
}
