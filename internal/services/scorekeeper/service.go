package scorekeeper

import (
	"context"
	"errors"

	commonClock "github.com/dokoclub/dokolator/internal/common/clock"
	commonUUID "github.com/dokoclub/dokolator/internal/common/uuid"
	"github.com/dokoclub/dokolator/internal/models"
	handRepo "github.com/dokoclub/dokolator/internal/repositories/hand"
	sessionRepo "github.com/dokoclub/dokolator/internal/repositories/session"
	"github.com/dokoclub/dokolator/internal/scoring"
	"github.com/dokoclub/dokolator/internal/settlement"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	handRepo    handRepo.Repository
	clock       commonClock.Clock
	uuid        commonUUID.UUID
}

// New creates a new scorekeeper service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}
	if cfg.HandRepo == nil {
		return nil, errors.New("hand repository cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		handRepo:    cfg.HandRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
	}, nil
}

// CreateSession starts a new game day for a roster of 4 or 5 players
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if len(input.PlayerNames) != 4 && len(input.PlayerNames) != 5 {
		return nil, ErrInvalidRoster
	}

	seen := make(map[string]struct{}, len(input.PlayerNames))
	for _, name := range input.PlayerNames {
		if name == "" {
			return nil, ErrInvalidRoster
		}
		if _, ok := seen[name]; ok {
			return nil, ErrDuplicatePlayer
		}
		seen[name] = struct{}{}
	}

	now := s.clock.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	roster := make([]string, len(input.PlayerNames))
	copy(roster, input.PlayerNames)

	session := &models.Session{
		ID:          s.uuid.NewUUID(),
		OwnerID:     input.OwnerID,
		Date:        date,
		Stake:       input.Stake,
		PointValue:  input.PointValue,
		PlayerNames: roster,
		Status:      models.SessionStatusActive,
		Bock:        models.BockState{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, err
	}

	return &CreateSessionOutput{Session: session}, nil
}

// RecordHand validates, scores and persists one hand, then advances the
// session's Bock streak state
func (s *service) RecordHand(ctx context.Context, input *RecordHandInput) (*RecordHandOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionStatusActive {
		return nil, ErrSessionCompleted
	}

	tableSize := len(session.PlayerNames)

	roleSet, err := scoring.ClassifyRoles(input.Roles, session.PlayerNames, tableSize)
	if err != nil {
		return nil, err
	}
	active := scoring.ResolveActivePlayers(session.PlayerNames, roleSet.Dealer, tableSize)

	// The multiplier must be read before the state transition: the
	// transition consumes the hand that is being scored right now.
	wasBockHand := session.Bock.Active > 0
	multiplier := scoring.BockMultiplier(session.Bock)

	number, err := s.nextHandNumber(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var hands []*models.Hand
	if roleSet.IsMarriage() {
		partner := ""
		if len(roleSet.RePlayers) == 1 {
			partner = roleSet.RePlayers[0]
		}

		rows := scoring.ComposeMarriage(&scoring.MarriageHand{
			MarriagePlayer: roleSet.MarriagePlayer,
			Partner:        partner,
			Dealer:         roleSet.Dealer,
			ActivePlayers:  active,
			Value:          input.Value,
			Multiplier:     multiplier,
		})

		for _, row := range rows {
			record := &models.Hand{
				ID:         s.uuid.NewUUID(),
				SessionID:  session.ID,
				HandNumber: number,
				Value:      row.Value,
				Players:    buildPlayers(session.PlayerNames, row.Scores, row.Roles),
				Phase:      row.Phase,
				Date:       now,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			// Only the game row may open a new streak
			if row.Phase != models.HandPhaseSearch {
				record.BockTrigger = input.BockTrigger
			}
			hands = append(hands, record)
		}

		// Both rows or neither: a half-written marriage would leave the
		// session inconsistent.
		if err := s.handRepo.SaveHands(ctx, &handRepo.SaveHandsInput{Hands: hands}); err != nil {
			return nil, err
		}
	} else {
		effective := input.Value * multiplier

		var scores map[string]int
		if roleSet.IsSolo() {
			scores = scoring.ScoreSolo(roleSet.SoloPlayer, active, effective)
		} else {
			scores = scoring.ScoreReKontra(roleSet.RePlayers, active, effective)
		}

		record := &models.Hand{
			ID:          s.uuid.NewUUID(),
			SessionID:   session.ID,
			HandNumber:  number,
			Value:       effective,
			BockTrigger: input.BockTrigger,
			Players:     buildPlayers(session.PlayerNames, scores, rolesFromTokens(session.PlayerNames, input.Roles)),
			Phase:       models.HandPhaseNone,
			Date:        now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		hands = append(hands, record)

		if err := s.handRepo.SaveHand(ctx, &handRepo.SaveHandInput{Hand: record}); err != nil {
			return nil, err
		}
	}

	// One transition per hand number; the marriage search row never
	// consumes a streak slot.
	session.Bock = scoring.AdvanceBock(session.Bock, wasBockHand, input.BockTrigger, tableSize)
	session.UpdatedAt = now

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, err
	}

	return &RecordHandOutput{
		Hands:       hands,
		WasBockHand: wasBockHand,
		BockState:   session.Bock,
	}, nil
}

// CorrectHand rescores a recorded hand in place, preserving its identifier
// and hand number. The hand is rescored at the multiplier it was originally
// played under, reconstructed by replaying the Bock streak from the start of
// the session. The trigger flag is kept as recorded so downstream streak
// state stays valid.
func (s *service) CorrectHand(ctx context.Context, input *CorrectHandInput) (*CorrectHandOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	tableSize := len(session.PlayerNames)

	existing, err := s.handRepo.GetHand(ctx, &handRepo.GetHandInput{HandID: input.HandID})
	if err != nil {
		if errors.Is(err, handRepo.ErrHandNotFound) {
			return nil, ErrHandNotFound
		}
		return nil, err
	}
	if existing.SessionID != session.ID {
		return nil, ErrHandNotFound
	}
	if existing.Phase != models.HandPhaseNone {
		return nil, ErrCannotCorrectMarriage
	}

	roleSet, err := scoring.ClassifyRoles(input.Roles, session.PlayerNames, tableSize)
	if err != nil {
		return nil, err
	}
	if roleSet.IsMarriage() {
		return nil, ErrCannotCorrectMarriage
	}
	active := scoring.ResolveActivePlayers(session.PlayerNames, roleSet.Dealer, tableSize)

	multiplier, err := s.multiplierAt(ctx, session, existing.ID)
	if err != nil {
		return nil, err
	}
	effective := input.Value * multiplier

	var scores map[string]int
	if roleSet.IsSolo() {
		scores = scoring.ScoreSolo(roleSet.SoloPlayer, active, effective)
	} else {
		scores = scoring.ScoreReKontra(roleSet.RePlayers, active, effective)
	}

	corrected := &models.Hand{
		ID:          existing.ID,
		SessionID:   existing.SessionID,
		HandNumber:  existing.HandNumber,
		Value:       effective,
		BockTrigger: existing.BockTrigger,
		Players:     buildPlayers(session.PlayerNames, scores, rolesFromTokens(session.PlayerNames, input.Roles)),
		Phase:       models.HandPhaseNone,
		Date:        existing.Date,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   s.clock.Now(),
	}

	if err := s.handRepo.SaveHand(ctx, &handRepo.SaveHandInput{Hand: corrected}); err != nil {
		return nil, err
	}

	return &CorrectHandOutput{Hand: corrected}, nil
}

// CompleteSession closes a session
func (s *service) CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionStatusCompleted {
		return nil, ErrSessionCompleted
	}

	session.Status = models.SessionStatusCompleted
	session.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, err
	}

	return &CompleteSessionOutput{Session: session}, nil
}

// GetSession retrieves a session together with its hands
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	hands, err := s.handRepo.GetHandsBySession(ctx, &handRepo.GetHandsBySessionInput{SessionID: session.ID})
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Session: session, Hands: hands}, nil
}

// ListSessions retrieves all sessions of a user, oldest first
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sessions, err := s.sessionRepo.ListSessionsByOwner(ctx, &sessionRepo.ListSessionsByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	return &ListSessionsOutput{Sessions: sessions}, nil
}

// GetSettlement computes the per-player settlement of one session
func (s *service) GetSettlement(ctx context.Context, input *GetSettlementInput) (*GetSettlementOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	hands, err := s.handRepo.GetHandsBySession(ctx, &handRepo.GetHandsBySessionInput{SessionID: session.ID})
	if err != nil {
		return nil, err
	}

	return &GetSettlementOutput{Settlement: settlement.SettleSession(session, hands)}, nil
}

// GetSessionStats returns a session, its hands and its settlement in one call
func (s *service) GetSessionStats(ctx context.Context, input *GetSessionStatsInput) (*GetSessionStatsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	hands, err := s.handRepo.GetHandsBySession(ctx, &handRepo.GetHandsBySessionInput{SessionID: session.ID})
	if err != nil {
		return nil, err
	}

	return &GetSessionStatsOutput{
		Session:    session,
		Hands:      hands,
		Settlement: settlement.SettleSession(session, hands),
		TotalGames: len(hands),
	}, nil
}

// GetPlayerStats aggregates per-player statistics across all sessions of a user
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sessions, err := s.sessionRepo.ListSessionsByOwner(ctx, &sessionRepo.ListSessionsByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, err
	}

	handsBySession := make(map[string][]*models.Hand, len(sessions))
	output := &GetPlayerStatsOutput{TotalSpieltage: len(sessions)}

	for _, session := range sessions {
		hands, err := s.handRepo.GetHandsBySession(ctx, &handRepo.GetHandsBySessionInput{SessionID: session.ID})
		if err != nil {
			return nil, err
		}
		handsBySession[session.ID] = hands
		output.TotalGames += len(hands)

		switch session.Status {
		case models.SessionStatusActive:
			output.ActiveSpieltage++
		case models.SessionStatusCompleted:
			output.CompletedSpieltage++
		}
	}

	output.Stats = settlement.AggregateStats(sessions, handsBySession)

	return output, nil
}

// getSession loads a session, mapping the repository's not-found error to
// the service sentinel
func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// nextHandNumber returns the highest existing hand number plus one. The two
// rows of a marriage share a number, so the count of records is not usable.
func (s *service) nextHandNumber(ctx context.Context, sessionID string) (int, error) {
	hands, err := s.handRepo.GetHandsBySession(ctx, &handRepo.GetHandsBySessionInput{SessionID: sessionID})
	if err != nil {
		return 0, err
	}

	max := 0
	for _, h := range hands {
		if h.HandNumber > max {
			max = h.HandNumber
		}
	}
	return max + 1, nil
}

// multiplierAt reconstructs the Bock multiplier a hand was scored at by
// replaying the streak state machine over the session's hands in order.
// Search rows never advance the state; the game row of their hand number does.
func (s *service) multiplierAt(ctx context.Context, session *models.Session, handID string) (int, error) {
	hands, err := s.handRepo.GetHandsBySession(ctx, &handRepo.GetHandsBySessionInput{SessionID: session.ID})
	if err != nil {
		return 0, err
	}

	tableSize := len(session.PlayerNames)
	state := models.BockState{}

	for _, h := range hands {
		if h.ID == handID {
			return scoring.BockMultiplier(state), nil
		}
		if h.Phase != models.HandPhaseSearch {
			state = scoring.AdvanceBock(state, state.Active > 0, h.BockTrigger, tableSize)
		}
	}

	return 0, ErrHandNotFound
}

// buildPlayers fills a hand's player map for the whole roster: scored
// players get their deltas, everyone else (including a sitting-out dealer)
// gets zero
func buildPlayers(roster []string, scores map[string]int, roles map[string][]models.Role) map[string]models.PlayerScore {
	players := make(map[string]models.PlayerScore, len(roster))
	for _, name := range roster {
		players[name] = models.PlayerScore{
			Roles:  roles[name],
			Points: scores[name],
		}
	}
	return players
}

// rolesFromTokens converts the submitted role tokens into persisted role tags
func rolesFromTokens(roster []string, tokens map[string]scoring.RoleToken) map[string][]models.Role {
	roles := make(map[string][]models.Role, len(roster))
	for _, name := range roster {
		if tags := tokens[name].Roles(); len(tags) > 0 {
			roles[name] = tags
		}
	}
	return roles
}
