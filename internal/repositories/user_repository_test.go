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

type UserRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo UserRepository
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.repo = NewUserRepository(s.db)
}

func (s *UserRepositoryTestSuite) TestInsertAndFindByUsername() {
	ctx := context.Background()

	user := &db_models.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(s.T(), s.repo.Insert(ctx, user))
	assert.NotZero(s.T(), user.ID)

	found, err := s.repo.FindByUsername(ctx, "alice")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), found)
	assert.Equal(s.T(), user.ID, found.ID)
}

func (s *UserRepositoryTestSuite) TestUsernameIsCaseSensitive() {
	ctx := context.Background()

	require.NoError(s.T(), s.repo.Insert(ctx, &db_models.User{Username: "Alice", PasswordHash: "h"}))

	found, err := s.repo.FindByUsername(ctx, "alice")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), found)
}

func (s *UserRepositoryTestSuite) TestDuplicateUsernameRejected() {
	ctx := context.Background()

	require.NoError(s.T(), s.repo.Insert(ctx, &db_models.User{Username: "bob", PasswordHash: "h"}))
	err := s.repo.Insert(ctx, &db_models.User{Username: "bob", PasswordHash: "h2"})
	assert.ErrorIs(s.T(), err, gorm.ErrDuplicatedKey, "unique index must reject the second insert")

	count, err := s.repo.CountByUsername(ctx, "bob")
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 1, count, "failed insert must not leave a row behind")
}

func (s *UserRepositoryTestSuite) TestFindMissingReturnsNil() {
	found, err := s.repo.FindByUsername(context.Background(), "nobody")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), found)

	found, err = s.repo.FindByID(context.Background(), 999)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), found)
}

func (s *UserRepositoryTestSuite) TestDeleteCascadesToOwnedRows() {
	ctx := context.Background()

	user := createTestUser(s.T(), s.db, "carol")
	itinerary := &db_models.Itinerary{UserID: user.ID, Content: []byte(`{}`)}
	require.NoError(s.T(), s.db.Create(itinerary).Error)
	require.NoError(s.T(), s.db.Create(&db_models.Expense{
		UserID: user.ID, ItineraryID: &itinerary.ID, Item: "hotel", Amount: 80,
	}).Error)

	removed, err := s.repo.DeleteByID(ctx, user.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), removed)

	var itineraryCount, expenseCount int64
	require.NoError(s.T(), s.db.Model(&db_models.Itinerary{}).Count(&itineraryCount).Error)
	require.NoError(s.T(), s.db.Model(&db_models.Expense{}).Count(&expenseCount).Error)
	assert.Zero(s.T(), itineraryCount)
	assert.Zero(s.T(), expenseCount)
}

func (s *UserRepositoryTestSuite) TestDeleteMissingReportsFalse() {
	removed, err := s.repo.DeleteByID(context.Background(), 42)
	require.NoError(s.T(), err)
	assert.False(s.T(), removed)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
