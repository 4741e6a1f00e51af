package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
)

type ItineraryRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo ItineraryRepository
	user *db_models.User
}

func (s *ItineraryRepositoryTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.repo = NewItineraryRepository(s.db)
	s.user = createTestUser(s.T(), s.db, "traveler")
}

func (s *ItineraryRepositoryTestSuite) insert(content string) *db_models.Itinerary {
	itinerary := &db_models.Itinerary{UserID: s.user.ID, Content: []byte(content)}
	require.NoError(s.T(), s.repo.Insert(context.Background(), itinerary))
	return itinerary
}

func (s *ItineraryRepositoryTestSuite) TestListByUserOrderedOldestFirst() {
	ctx := context.Background()

	first := s.insert(`{"itinerary_text":"one"}`)
	second := s.insert(`{"itinerary_text":"two"}`)

	other := createTestUser(s.T(), s.db, "someone-else")
	require.NoError(s.T(), s.repo.Insert(ctx, &db_models.Itinerary{UserID: other.ID, Content: []byte(`{}`)}))

	itineraries, err := s.repo.ListByUser(ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), itineraries, 2)
	assert.Equal(s.T(), first.ID, itineraries[0].ID)
	assert.Equal(s.T(), second.ID, itineraries[1].ID)
}

func (s *ItineraryRepositoryTestSuite) TestLatestByUser() {
	ctx := context.Background()

	s.insert(`{"itinerary_text":"old"}`)
	newest := s.insert(`{"itinerary_text":"new"}`)

	latest, err := s.repo.LatestByUser(ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), latest)
	assert.Equal(s.T(), newest.ID, latest.ID)
}

func (s *ItineraryRepositoryTestSuite) TestLatestByUserEmptyReturnsNil() {
	latest, err := s.repo.LatestByUser(context.Background(), s.user.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), latest)
}

func (s *ItineraryRepositoryTestSuite) TestAppendBudgetLogSetsThenAppends() {
	ctx := context.Background()
	itinerary := s.insert(`{}`)

	found, err := s.repo.AppendBudgetLog(ctx, itinerary.ID, "day 1: 300 CNY")
	require.NoError(s.T(), err)
	assert.True(s.T(), found)

	found, err = s.repo.AppendBudgetLog(ctx, itinerary.ID, "day 2: 450 CNY")
	require.NoError(s.T(), err)
	assert.True(s.T(), found)

	reloaded, err := s.repo.FindByID(ctx, itinerary.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), reloaded)
	require.NotNil(s.T(), reloaded.BudgetLog)
	assert.Equal(s.T(), "day 1: 300 CNY\nday 2: 450 CNY", *reloaded.BudgetLog)
}

func (s *ItineraryRepositoryTestSuite) TestAppendBudgetLogMissingReturnsFalse() {
	found, err := s.repo.AppendBudgetLog(context.Background(), 9999, "orphan entry")
	require.NoError(s.T(), err)
	assert.False(s.T(), found)
}

func (s *ItineraryRepositoryTestSuite) TestDeleteByID() {
	ctx := context.Background()
	itinerary := s.insert(`{}`)

	removed, err := s.repo.DeleteByID(ctx, itinerary.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), removed)

	found, err := s.repo.FindByID(ctx, itinerary.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), found)

	removed, err = s.repo.DeleteByID(ctx, itinerary.ID)
	require.NoError(s.T(), err)
	assert.False(s.T(), removed)
}

func TestItineraryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ItineraryRepositoryTestSuite))
}
