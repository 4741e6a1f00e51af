package services

import (
	"context"
	"encoding/json"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

type ItineraryServiceInterface interface {
	List(ctx context.Context, userID uint) ([]response_models.ItineraryResponse, error)
	Latest(ctx context.Context, userID uint) (*response_models.ItineraryResponse, error)
	AppendBudgetLog(ctx context.Context, userID, itineraryID uint, text string) error
	Delete(ctx context.Context, userID, itineraryID uint) error
	Select(ctx context.Context, userID, itineraryID uint) error
	ClearSelection(userID uint)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	trips         memcache.ActiveTripStore
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository, trips memcache.ActiveTripStore) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		trips:         trips,
	}
}

func (s *ItineraryService) List(ctx context.Context, userID uint) ([]response_models.ItineraryResponse, error) {
	itineraries, err := s.itineraryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		responses = append(responses, toItineraryResponse(&itineraries[i]))
	}
	return responses, nil
}

func (s *ItineraryService) Latest(ctx context.Context, userID uint) (*response_models.ItineraryResponse, error) {
	itinerary, err := s.itineraryRepo.LatestByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	resp := toItineraryResponse(itinerary)
	return &resp, nil
}

func (s *ItineraryService) AppendBudgetLog(ctx context.Context, userID, itineraryID uint, text string) error {
	if err := s.requireOwned(ctx, userID, itineraryID); err != nil {
		return err
	}

	appended, err := s.itineraryRepo.AppendBudgetLog(ctx, itineraryID, text)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !appended {
		return utils.ErrItineraryNotFound
	}
	return nil
}

func (s *ItineraryService) Delete(ctx context.Context, userID, itineraryID uint) error {
	if err := s.requireOwned(ctx, userID, itineraryID); err != nil {
		return err
	}

	removed, err := s.itineraryRepo.DeleteByID(ctx, itineraryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !removed {
		return utils.ErrItineraryNotFound
	}

	if selected, ok := s.trips.Get(userID); ok && selected == itineraryID {
		s.trips.Clear(userID)
	}
	return nil
}

// Select marks the itinerary as the one the session logs expenses against.
func (s *ItineraryService) Select(ctx context.Context, userID, itineraryID uint) error {
	if err := s.requireOwned(ctx, userID, itineraryID); err != nil {
		return err
	}
	s.trips.Set(userID, itineraryID)
	return nil
}

func (s *ItineraryService) ClearSelection(userID uint) {
	s.trips.Clear(userID)
}

// requireOwned reports a foreign itinerary the same way as a missing one, so
// callers cannot probe other users' rows.
func (s *ItineraryService) requireOwned(ctx context.Context, userID, itineraryID uint) error {
	itinerary, err := s.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil || itinerary.UserID != userID {
		return utils.ErrItineraryNotFound
	}
	return nil
}

func toItineraryResponse(itinerary *db_models.Itinerary) response_models.ItineraryResponse {
	resp := response_models.ItineraryResponse{
		ID:        itinerary.ID,
		CreatedAt: itinerary.CreatedAt.Unix(),
	}
	if itinerary.BudgetLog != nil {
		resp.BudgetLog = *itinerary.BudgetLog
	}

	var plan response_models.TravelPlan
	if err := json.Unmarshal(itinerary.Content, &plan); err != nil {
		// older or hand-written blobs render verbatim
		resp.Raw = string(itinerary.Content)
		return resp
	}
	resp.ItineraryText = plan.ItineraryText
	resp.Coordinates = plan.Coordinates
	return resp
}
