package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dokoclub/dokolator/internal/repositories/session Repository

import (
	"context"

	"github.com/dokoclub/dokolator/internal/models"
)

// Repository defines the persistence contract for sessions. Implementations
// must serialize writes per session: the Bock streak state stored on a
// session is sequential and interleaved saves would corrupt it.
type Repository interface {
	// SaveSession persists a session, replacing any existing record with the same ID
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListSessionsByOwner retrieves all sessions belonging to a user,
	// oldest first
	ListSessionsByOwner(ctx context.Context, input *ListSessionsByOwnerInput) ([]*models.Session, error)
}
