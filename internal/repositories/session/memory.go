package session

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/dokoclub/dokolator/internal/models"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// memoryRepository implements the Repository interface with an in-process
// map. It is the reference collaborator for tests and the replay CLI; a real
// deployment supplies its own store behind the same interface. The mutex
// gives the per-session write serialization the interface demands.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemory creates a new in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
	}
}

// SaveSession persists a session, replacing any existing record with the same ID
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[input.Session.ID] = copySession(input.Session)

	return nil
}

// GetSession retrieves a session by ID
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return copySession(stored), nil
}

// ListSessionsByOwner retrieves all sessions belonging to a user, oldest first
func (r *memoryRepository) ListSessionsByOwner(ctx context.Context, input *ListSessionsByOwnerInput) ([]*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var sessions []*models.Session
	for _, stored := range r.sessions {
		if stored.OwnerID == input.OwnerID {
			sessions = append(sessions, copySession(stored))
		}
	}

	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
		}
		return sessions[i].ID < sessions[j].ID
	})

	return sessions, nil
}

// copySession copies a session so callers cannot mutate stored state
func copySession(s *models.Session) *models.Session {
	copied := *s
	if s.PlayerNames != nil {
		copied.PlayerNames = make([]string, len(s.PlayerNames))
		copy(copied.PlayerNames, s.PlayerNames)
	}
	return &copied
}
