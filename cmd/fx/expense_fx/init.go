package expense_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	mem "wayfarer/pkg/memcache"
)

var Module = fx.Provide(
	provideExpenseService, provideExpenseRepo)

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideExpenseService(
	expenseRepo repositories.ExpenseRepository,
	itineraryRepo repositories.ItineraryRepository,
	trips mem.ActiveTripStore,
) services.ExpenseServiceInterface {
	return services.NewExpenseService(expenseRepo, itineraryRepo, trips)
}
