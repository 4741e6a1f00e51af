package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wayfarer/internal/models/db_models"
)

type ExpenseRepository interface {
	Insert(ctx context.Context, expense *db_models.Expense) error
	ListByUser(ctx context.Context, userID uint, itineraryID *uint) ([]db_models.Expense, error)
	SumAmountByUser(ctx context.Context, userID uint) (float64, error)
	FindByID(ctx context.Context, id uint) (*db_models.Expense, error)
	DeleteByID(ctx context.Context, id uint) (bool, error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Insert(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(expense).Error
	})
}

// ListByUser returns the user's expenses newest first, optionally narrowed to
// one itinerary. The id tiebreak keeps same-timestamp rows in insertion order.
func (r *expenseRepository) ListByUser(ctx context.Context, userID uint, itineraryID *uint) ([]db_models.Expense, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if itineraryID != nil {
		query = query.Where("itinerary_id = ?", *itineraryID)
	}

	var expenses []db_models.Expense
	err := query.Order("created_at DESC, id DESC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) SumAmountByUser(ctx context.Context, userID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&db_models.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *expenseRepository) FindByID(ctx context.Context, id uint) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) DeleteByID(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Expense{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
