package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	ListByUser(ctx context.Context, userID uint) ([]db_models.Itinerary, error)
	LatestByUser(ctx context.Context, userID uint) (*db_models.Itinerary, error)
	FindByID(ctx context.Context, id uint) (*db_models.Itinerary, error)
	AppendBudgetLog(ctx context.Context, id uint, text string) (bool, error)
	DeleteByID(ctx context.Context, id uint) (bool, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(itinerary).Error
	})
}

func (r *itineraryRepository) ListByUser(ctx context.Context, userID uint) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) LatestByUser(ctx context.Context, userID uint) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&itinerary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) FindByID(ctx context.Context, id uint) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

// AppendBudgetLog concatenates text onto the existing log, newline-separated,
// or sets it when absent. Read and write happen in one transaction so two
// appends cannot lose each other's text. Returns false when no row matches.
func (r *itineraryRepository) AppendBudgetLog(ctx context.Context, id uint, text string) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itinerary db_models.Itinerary
		if err := tx.First(&itinerary, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		log := text
		if itinerary.BudgetLog != nil && *itinerary.BudgetLog != "" {
			log = *itinerary.BudgetLog + "\n" + text
		}
		return tx.Model(&itinerary).Update("budget_log", log).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (r *itineraryRepository) DeleteByID(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Itinerary{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
