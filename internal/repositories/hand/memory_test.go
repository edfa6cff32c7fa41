package hand

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dokoclub/dokolator/internal/models"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 11, 7, 19, 0, 0, 0, time.UTC)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) testHand(id string, number int) *models.Hand {
	return &models.Hand{
		ID:         id,
		SessionID:  "test-session-id",
		HandNumber: number,
		Value:      2,
		Players: map[string]models.PlayerScore{
			"Alice":   {Roles: []models.Role{models.RoleGeber}, Points: 0},
			"Bernd":   {Roles: []models.Role{models.RoleRe}, Points: 2},
			"Claudia": {Roles: []models.Role{models.RoleRe}, Points: 2},
			"Dirk":    {Points: -2},
			"Emil":    {Points: -2},
		},
		Date:      s.testNow,
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *MemoryRepositoryTestSuite) TestSaveAndGetHand() {
	hand := s.testHand("hand-1", 1)

	err := s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: hand})
	s.Require().NoError(err)

	got, err := s.repo.GetHand(s.ctx, &GetHandInput{HandID: "hand-1"})
	s.Require().NoError(err)
	s.Equal(hand, got)
}

func (s *MemoryRepositoryTestSuite) TestGetHandNotFound() {
	_, err := s.repo.GetHand(s.ctx, &GetHandInput{HandID: "missing"})
	s.ErrorIs(err, ErrHandNotFound)
}

func (s *MemoryRepositoryTestSuite) TestGetHandsBySessionOrdered() {
	s.Require().NoError(s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: s.testHand("hand-1", 1)}))
	s.Require().NoError(s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: s.testHand("hand-2", 2)}))
	s.Require().NoError(s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: s.testHand("hand-3", 3)}))

	hands, err := s.repo.GetHandsBySession(s.ctx, &GetHandsBySessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Require().Len(hands, 3)
	s.Equal("hand-1", hands[0].ID)
	s.Equal("hand-3", hands[2].ID)
}

func (s *MemoryRepositoryTestSuite) TestSaveHandsKeepsMarriagePairOrder() {
	s.Require().NoError(s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: s.testHand("hand-1", 1)}))

	search := s.testHand("hand-2a", 2)
	search.Phase = models.HandPhaseSearch
	game := s.testHand("hand-2b", 2)
	game.Phase = models.HandPhaseWithPartner

	err := s.repo.SaveHands(s.ctx, &SaveHandsInput{Hands: []*models.Hand{search, game}})
	s.Require().NoError(err)

	hands, err := s.repo.GetHandsBySession(s.ctx, &GetHandsBySessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Require().Len(hands, 3)

	// The two marriage rows share a number and keep submission order.
	s.Equal("hand-2a", hands[1].ID)
	s.Equal(models.HandPhaseSearch, hands[1].Phase)
	s.Equal("hand-2b", hands[2].ID)
	s.Equal(hands[1].HandNumber, hands[2].HandNumber)
}

func (s *MemoryRepositoryTestSuite) TestSaveHandReplacesInPlace() {
	s.Require().NoError(s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: s.testHand("hand-1", 1)}))
	s.Require().NoError(s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: s.testHand("hand-2", 2)}))

	corrected := s.testHand("hand-1", 1)
	corrected.Value = 4
	s.Require().NoError(s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: corrected}))

	hands, err := s.repo.GetHandsBySession(s.ctx, &GetHandsBySessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Require().Len(hands, 2)
	s.Equal("hand-1", hands[0].ID)
	s.Equal(4, hands[0].Value)
}

func (s *MemoryRepositoryTestSuite) TestStoredHandIsDetached() {
	hand := s.testHand("hand-1", 1)
	s.Require().NoError(s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: hand}))

	// Mutating the caller's map must not leak into the store.
	hand.Players["Bernd"] = models.PlayerScore{Points: 99}

	got, err := s.repo.GetHand(s.ctx, &GetHandInput{HandID: "hand-1"})
	s.Require().NoError(err)
	s.Equal(2, got.Players["Bernd"].Points)
}

func (s *MemoryRepositoryTestSuite) TestSaveHandValidation() {
	s.Error(s.repo.SaveHand(s.ctx, nil))
	s.Error(s.repo.SaveHand(s.ctx, &SaveHandInput{}))
	s.Error(s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: &models.Hand{SessionID: "x"}}))
	s.Error(s.repo.SaveHand(s.ctx, &SaveHandInput{Hand: &models.Hand{ID: "x"}}))
	s.Error(s.repo.SaveHands(s.ctx, &SaveHandsInput{}))
	s.Error(s.repo.SaveHands(s.ctx, &SaveHandsInput{Hands: []*models.Hand{nil}}))
}
