package main

import (
	"context"

	"github.com/caarlos0/env/v8"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/cmd/fx/account_fx"
	"wayfarer/cmd/fx/controllers_fx"
	"wayfarer/cmd/fx/db_fx"
	"wayfarer/cmd/fx/expense_fx"
	"wayfarer/cmd/fx/itinerary_fx"
	"wayfarer/cmd/fx/memcache_fx"
	"wayfarer/cmd/fx/planner_fx"
	"wayfarer/cmd/fx/speech_fx"
	"wayfarer/internal/api/controllers"
	"wayfarer/internal/config"
	"wayfarer/internal/infra"
	"wayfarer/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	app := fx.New(
		fx.Provide(ProvideConfig),
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		expense_fx.Module,
		planner_fx.Module,
		speech_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideConfig() *config.Config {
	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		logrus.Fatalf("Failed to parse configuration: %v", err)
	}
	return cfg
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logrus.Infof("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					logrus.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("Stopping HTTP server")
			infra.CloseSQLite(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	expenseController *controllers.ExpenseController,
	plannerController *controllers.PlannerController,
	speechController *controllers.SpeechController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, itineraryController, expenseController, plannerController, speechController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	expenseController *controllers.ExpenseController,
	plannerController *controllers.PlannerController,
	speechController *controllers.SpeechController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/logout", middleware.JWTAuthMiddleware(), accountController.Logout)

	itineraries := r.Group("/itineraries", middleware.JWTAuthMiddleware())
	itineraries.POST("/generate", plannerController.Generate)
	itineraries.GET("/list", itineraryController.List)
	itineraries.GET("/latest", itineraryController.Latest)
	itineraries.POST("/append-budget-log", itineraryController.AppendBudgetLog)
	itineraries.POST("/delete", itineraryController.Delete)
	itineraries.POST("/select", itineraryController.Select)
	itineraries.POST("/clear-selection", itineraryController.ClearSelection)

	expenses := r.Group("/expenses", middleware.JWTAuthMiddleware())
	expenses.POST("/add", expenseController.Add)
	expenses.GET("/list", expenseController.List)
	expenses.GET("/total", expenseController.Total)
	expenses.POST("/delete", expenseController.Delete)

	speech := r.Group("/speech", middleware.JWTAuthMiddleware())
	speech.POST("/transcribe", speechController.Transcribe)
}
