package services

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

type ExpenseServiceInterface interface {
	Add(ctx context.Context, userID uint, item string, amount float64, itineraryID *uint) error
	List(ctx context.Context, userID uint, itineraryID *uint) ([]response_models.ExpenseResponse, error)
	Total(ctx context.Context, userID uint) (string, error)
	Delete(ctx context.Context, userID, expenseID uint) error
}

type ExpenseService struct {
	expenseRepo   repositories.ExpenseRepository
	itineraryRepo repositories.ItineraryRepository
	trips         memcache.ActiveTripStore
}

func NewExpenseService(
	expenseRepo repositories.ExpenseRepository,
	itineraryRepo repositories.ItineraryRepository,
	trips memcache.ActiveTripStore,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo:   expenseRepo,
		itineraryRepo: itineraryRepo,
		trips:         trips,
	}
}

// Add validates before anything touches the store: a blank item or a
// non-positive amount never reaches persistence. When no itinerary is given
// the session's selected trip, if any, is assigned.
func (s *ExpenseService) Add(ctx context.Context, userID uint, item string, amount float64, itineraryID *uint) error {
	if strings.TrimSpace(item) == "" {
		return utils.ErrEmptyItem
	}
	if amount <= 0 {
		return utils.ErrInvalidAmount
	}

	if itineraryID == nil {
		if selected, ok := s.trips.Get(userID); ok {
			itineraryID = &selected
		}
	}
	if itineraryID != nil {
		if err := s.requireOwnedItinerary(ctx, userID, *itineraryID); err != nil {
			return err
		}
	}

	expense := &db_models.Expense{
		UserID:      userID,
		ItineraryID: itineraryID,
		Item:        item,
		Amount:      amount,
	}
	if err := s.expenseRepo.Insert(ctx, expense); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// List returns the user's expenses newest first. With no explicit filter the
// session's selected trip applies, mirroring the add path.
func (s *ExpenseService) List(ctx context.Context, userID uint, itineraryID *uint) ([]response_models.ExpenseResponse, error) {
	if itineraryID == nil {
		if selected, ok := s.trips.Get(userID); ok {
			itineraryID = &selected
		}
	}

	expenses, err := s.expenseRepo.ListByUser(ctx, userID, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, response_models.ExpenseResponse{
			ID:          e.ID,
			Item:        e.Item,
			Amount:      e.Amount,
			ItineraryID: e.ItineraryID,
			CreatedAt:   e.CreatedAt.Unix(),
		})
	}
	return responses, nil
}

// Total sums every expense of the user, formatted with two fractional digits;
// "0.00" when there are none.
func (s *ExpenseService) Total(ctx context.Context, userID uint) (string, error) {
	total, err := s.expenseRepo.SumAmountByUser(ctx, userID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return fmt.Sprintf("%.2f", total), nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID uint) error {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if expense == nil || expense.UserID != userID {
		return utils.ErrExpenseNotFound
	}

	removed, err := s.expenseRepo.DeleteByID(ctx, expenseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !removed {
		return utils.ErrExpenseNotFound
	}
	return nil
}

func (s *ExpenseService) requireOwnedItinerary(ctx context.Context, userID, itineraryID uint) error {
	itinerary, err := s.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil || itinerary.UserID != userID {
		return utils.ErrItineraryNotFound
	}
	return nil
}
