package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	trips   memcache.ActiveTripStore
	service ExpenseServiceInterface
	user    *db_models.User
}

func (s *ExpenseServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.trips = memcache.NewActiveTrips()
	s.service = NewExpenseService(
		repositories.NewExpenseRepository(s.db),
		repositories.NewItineraryRepository(s.db),
		s.trips,
	)
	s.user = createTestUser(s.T(), s.db, "spender")
}

func (s *ExpenseServiceTestSuite) expenseCount() int64 {
	var count int64
	require.NoError(s.T(), s.db.Model(&db_models.Expense{}).Count(&count).Error)
	return count
}

func (s *ExpenseServiceTestSuite) TestAddRejectsBlankItem() {
	err := s.service.Add(context.Background(), s.user.ID, "   ", 10, nil)
	assert.ErrorIs(s.T(), err, utils.ErrEmptyItem)
	assert.Zero(s.T(), s.expenseCount())
}

func (s *ExpenseServiceTestSuite) TestAddRejectsNonPositiveAmount() {
	ctx := context.Background()

	err := s.service.Add(ctx, s.user.ID, "lunch", 0, nil)
	assert.ErrorIs(s.T(), err, utils.ErrInvalidAmount)

	err = s.service.Add(ctx, s.user.ID, "lunch", -5, nil)
	assert.ErrorIs(s.T(), err, utils.ErrInvalidAmount)

	assert.Zero(s.T(), s.expenseCount())
}

func (s *ExpenseServiceTestSuite) TestAddRejectsForeignItinerary() {
	other := createTestUser(s.T(), s.db, "stranger")
	foreign := createTestItinerary(s.T(), s.db, other.ID)

	err := s.service.Add(context.Background(), s.user.ID, "hotel", 200, &foreign.ID)
	assert.ErrorIs(s.T(), err, utils.ErrItineraryNotFound)
	assert.Zero(s.T(), s.expenseCount())
}

func (s *ExpenseServiceTestSuite) TestAddDefaultsToSelectedTrip() {
	ctx := context.Background()
	itinerary := createTestItinerary(s.T(), s.db, s.user.ID)
	s.trips.Set(s.user.ID, itinerary.ID)

	require.NoError(s.T(), s.service.Add(ctx, s.user.ID, "ramen", 58, nil))

	var expense db_models.Expense
	require.NoError(s.T(), s.db.First(&expense).Error)
	require.NotNil(s.T(), expense.ItineraryID)
	assert.Equal(s.T(), itinerary.ID, *expense.ItineraryID)
}

func (s *ExpenseServiceTestSuite) TestAddWithoutSelectionLeavesItineraryUnset() {
	require.NoError(s.T(), s.service.Add(context.Background(), s.user.ID, "souvenir", 35, nil))

	var expense db_models.Expense
	require.NoError(s.T(), s.db.First(&expense).Error)
	assert.Nil(s.T(), expense.ItineraryID)
}

func (s *ExpenseServiceTestSuite) TestListDefaultsToSelectedTrip() {
	ctx := context.Background()
	itinerary := createTestItinerary(s.T(), s.db, s.user.ID)

	require.NoError(s.T(), s.service.Add(ctx, s.user.ID, "tagged", 10, &itinerary.ID))
	require.NoError(s.T(), s.service.Add(ctx, s.user.ID, "untagged", 20, nil))

	s.trips.Set(s.user.ID, itinerary.ID)
	expenses, err := s.service.List(ctx, s.user.ID, nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), expenses, 1)
	assert.Equal(s.T(), "tagged", expenses[0].Item)

	s.trips.Clear(s.user.ID)
	expenses, err = s.service.List(ctx, s.user.ID, nil)
	require.NoError(s.T(), err)
	assert.Len(s.T(), expenses, 2)
}

func (s *ExpenseServiceTestSuite) TestTotalFormatsTwoDecimals() {
	ctx := context.Background()
	require.NoError(s.T(), s.service.Add(ctx, s.user.ID, "breakfast", 12.50, nil))
	require.NoError(s.T(), s.service.Add(ctx, s.user.ID, "bus", 7.00, nil))
	require.NoError(s.T(), s.service.Add(ctx, s.user.ID, "water", 0.50, nil))

	total, err := s.service.Total(ctx, s.user.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "20.00", total)
}

func (s *ExpenseServiceTestSuite) TestTotalEmptyIsZero() {
	total, err := s.service.Total(context.Background(), s.user.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "0.00", total)
}

func (s *ExpenseServiceTestSuite) TestDeleteForeignExpenseIsNotFound() {
	ctx := context.Background()
	other := createTestUser(s.T(), s.db, "stranger")
	expense := &db_models.Expense{UserID: other.ID, Item: "taxi", Amount: 40}
	require.NoError(s.T(), s.db.Create(expense).Error)

	err := s.service.Delete(ctx, s.user.ID, expense.ID)
	assert.ErrorIs(s.T(), err, utils.ErrExpenseNotFound)
	assert.EqualValues(s.T(), 1, s.expenseCount())
}

func (s *ExpenseServiceTestSuite) TestDeleteOwnExpense() {
	ctx := context.Background()
	require.NoError(s.T(), s.service.Add(ctx, s.user.ID, "ticket", 25, nil))

	var expense db_models.Expense
	require.NoError(s.T(), s.db.First(&expense).Error)

	require.NoError(s.T(), s.service.Delete(ctx, s.user.ID, expense.ID))
	assert.Zero(s.T(), s.expenseCount())

	err := s.service.Delete(ctx, s.user.ID, expense.ID)
	assert.ErrorIs(s.T(), err, utils.ErrExpenseNotFound)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
