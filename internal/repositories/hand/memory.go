package hand

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/dokoclub/dokolator/internal/models"
)

// ErrHandNotFound is returned when a hand is not found
var ErrHandNotFound = errors.New("hand not found")

// memoryRepository implements the Repository interface with in-process maps.
// It is the reference collaborator for tests and the replay CLI. The mutex
// serializes writes, which keeps marriage pairs atomic and hand order stable.
type memoryRepository struct {
	mu        sync.RWMutex
	byID      map[string]*models.Hand
	bySession map[string][]*models.Hand
}

// NewMemory creates a new in-memory hand repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		byID:      make(map[string]*models.Hand),
		bySession: make(map[string][]*models.Hand),
	}
}

// SaveHand persists a hand, replacing any existing record with the same ID
// in place so corrections keep their position in the session
func (r *memoryRepository) SaveHand(ctx context.Context, input *SaveHandInput) error {
	if input == nil || input.Hand == nil {
		return errors.New("input and hand cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saveLocked(input.Hand)
}

// SaveHands persists several hands atomically
func (r *memoryRepository) SaveHands(ctx context.Context, input *SaveHandsInput) error {
	if input == nil || len(input.Hands) == 0 {
		return errors.New("input and hands cannot be nil")
	}
	for _, h := range input.Hands {
		if h == nil {
			return errors.New("hands cannot contain nil entries")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range input.Hands {
		if err := r.saveLocked(h); err != nil {
			return err
		}
	}

	return nil
}

func (r *memoryRepository) saveLocked(h *models.Hand) error {
	if h.ID == "" {
		return errors.New("hand ID cannot be empty")
	}
	if h.SessionID == "" {
		return errors.New("hand session ID cannot be empty")
	}

	stored := copyHand(h)

	if existing, ok := r.byID[h.ID]; ok {
		// Replace in place, preserving the session position
		list := r.bySession[existing.SessionID]
		for i, candidate := range list {
			if candidate.ID == h.ID {
				list[i] = stored
				break
			}
		}
	} else {
		r.bySession[h.SessionID] = append(r.bySession[h.SessionID], stored)
	}
	r.byID[h.ID] = stored

	return nil
}

// GetHand retrieves a hand by ID
func (r *memoryRepository) GetHand(ctx context.Context, input *GetHandInput) (*models.Hand, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[input.HandID]
	if !ok {
		return nil, ErrHandNotFound
	}

	return copyHand(stored), nil
}

// GetHandsBySession retrieves all hands of a session in scoring order
func (r *memoryRepository) GetHandsBySession(ctx context.Context, input *GetHandsBySessionInput) ([]*models.Hand, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.bySession[input.SessionID]
	hands := make([]*models.Hand, 0, len(list))
	for _, stored := range list {
		hands = append(hands, copyHand(stored))
	}

	// Insertion order already matches submission order; a stable sort by
	// hand number keeps marriage pairs together without reordering them.
	sort.SliceStable(hands, func(i, j int) bool {
		return hands[i].HandNumber < hands[j].HandNumber
	})

	return hands, nil
}

// copyHand deep-copies a hand so callers cannot mutate stored state
func copyHand(h *models.Hand) *models.Hand {
	copied := *h
	copied.Players = make(map[string]models.PlayerScore, len(h.Players))
	for name, entry := range h.Players {
		var roles []models.Role
		if entry.Roles != nil {
			roles = make([]models.Role, len(entry.Roles))
			copy(roles, entry.Roles)
		}
		copied.Players[name] = models.PlayerScore{
			Roles:  roles,
			Points: entry.Points,
		}
	}
	return &copied
}
