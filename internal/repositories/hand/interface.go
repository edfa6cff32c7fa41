package hand

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dokoclub/dokolator/internal/repositories/hand Repository

import (
	"context"

	"github.com/dokoclub/dokolator/internal/models"
)

// Repository defines the persistence contract for hand records. Hands must
// be returned in scoring order (hand number ascending, insertion order
// within a shared number) so that Bock streak replays stay correct.
type Repository interface {
	// SaveHand persists a hand, replacing any existing record with the
	// same ID in place
	SaveHand(ctx context.Context, input *SaveHandInput) error

	// SaveHands persists several hands atomically. The two rows of a
	// marriage hand go through here so a session is never left with half
	// a marriage.
	SaveHands(ctx context.Context, input *SaveHandsInput) error

	// GetHand retrieves a hand by ID
	GetHand(ctx context.Context, input *GetHandInput) (*models.Hand, error)

	// GetHandsBySession retrieves all hands of a session in scoring order
	GetHandsBySession(ctx context.Context, input *GetHandsBySessionInput) ([]*models.Hand, error)
}
