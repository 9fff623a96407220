package main // Entry point package

import (
	"log"       // Logging library
	"math/rand" // Seed for the coach responder
	"time"      // Durations for timeouts and cache TTLs

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/fitness-tracker/internal/auth"       // Registration gate
	"github.com/iliyamo/fitness-tracker/internal/config"     // Internal config loader
	"github.com/iliyamo/fitness-tracker/internal/database"   // MySQL connection and migrations
	"github.com/iliyamo/fitness-tracker/internal/handler"    // HTTP handlers
	"github.com/iliyamo/fitness-tracker/internal/middleware" // Request-scoped middleware
	"github.com/iliyamo/fitness-tracker/internal/nutrition"  // External food lookup adapter
	"github.com/iliyamo/fitness-tracker/internal/queue"      // Broker consumer for workout events
	"github.com/iliyamo/fitness-tracker/internal/repository" // DB repositories
	"github.com/iliyamo/fitness-tracker/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// External food lookup with a bounded timeout, fronted by Redis when a
	// server is reachable. A nil Redis client simply disables caching.
	lookup := nutrition.NewCachedClient(
		nutrition.NewClient(cfg.LookupBaseURL, time.Duration(cfg.LookupTimeoutMS)*time.Millisecond),
		config.NewRedisClient(),
		time.Hour,
	)

	users := repository.NewUserRepo(db)
	workouts := repository.NewWorkoutRepo(db)
	meals := repository.NewMealRepo(db)
	progress := repository.NewProgressRepo(db)
	shopping := repository.NewShoppingRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, auth.NewGate(cfg.RegistrationCode))
	workoutHandler := handler.NewWorkoutHandler(workouts, true)
	mealHandler := handler.NewMealHandler(meals, lookup)
	progressHandler := handler.NewProgressHandler(progress)
	shoppingHandler := handler.NewShoppingHandler(shopping)
	nutritionHandler := handler.NewNutritionHandler(lookup)
	coachHandler := handler.NewCoachHandler(nil, rand.New(rand.NewSource(time.Now().UnixNano())))

	e := echo.New()
	e.Use(middleware.RequestID())
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler)
	router.RegisterAPI(e, cfg.JWTSecret,
		authHandler, workoutHandler, mealHandler, progressHandler, shoppingHandler,
		nutritionHandler, coachHandler)

	// Background consumer writing workout completions to logs/workouts.log.
	go func() {
		if err := queue.StartWorkoutConsumer(); err != nil {
			log.Printf("workout consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
