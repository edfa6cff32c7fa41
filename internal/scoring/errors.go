package scoring

// ValidationError reports an illegal role assignment for a hand. The caller
// must reject the submission before any scoring or Bock transition happens.
type ValidationError struct {
	// Rule is the human-readable name of the violated rule
	Rule string
}

// Error returns the violated rule name
func (e *ValidationError) Error() string {
	return e.Rule
}

// Validation failures surfaced by ClassifyRoles. These are deterministic:
// retrying the same submission yields the same error.
var (
	// ErrNoDealer indicates zero or more than one player was marked as dealer
	ErrNoDealer = &ValidationError{Rule: "no dealer selected"}

	// ErrInvalidSolo indicates a solo hand with extra solo, Re or marriage players
	ErrInvalidSolo = &ValidationError{Rule: "invalid solo configuration"}

	// ErrInvalidMarriage indicates a marriage hand with an illegal partner setup
	ErrInvalidMarriage = &ValidationError{Rule: "invalid marriage configuration"}

	// ErrTwoRePlayers indicates a plain Re/Kontra hand without exactly two Re players
	ErrTwoRePlayers = &ValidationError{Rule: "exactly two Re players required"}

	// ErrPlayerNotActive indicates a scoring role was given to a player who
	// sits out this hand (the dealer at a five-player table)
	ErrPlayerNotActive = &ValidationError{Rule: "player must be active"}
)
