package config

import (
	"NutriSnap-Backend/internal/api/handlers"
	"NutriSnap-Backend/internal/api/routes"
	"NutriSnap-Backend/internal/middleware"
	"NutriSnap-Backend/internal/utils"
	"NutriSnap-Backend/internal/utils/cache"
	"NutriSnap-Backend/internal/utils/metrics"
	"NutriSnap-Backend/internal/utils/storage"
	"NutriSnap-Backend/pkg/jwt"
	"NutriSnap-Backend/pkg/meal"
	"NutriSnap-Backend/pkg/stats"
	"NutriSnap-Backend/pkg/tracker"
	"NutriSnap-Backend/pkg/user"
	"NutriSnap-Backend/pkg/vision"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         10 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate
	metrics.Register()

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	redisCache := cache.NewRedisCache()

	// Repository
	userRepository := user.NewUserRepository(db)
	mealRepository := meal.NewMealRepository(db)
	trackerRepository := tracker.NewTrackerRepository(db)
	statsRepository := stats.NewStatsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	visionService := vision.NewVisionService()
	userService := user.NewUserService(userRepository, jwtService)
	mealService := meal.NewMealService(mealRepository, visionService, s3)
	trackerService := tracker.NewTrackerService(trackerRepository)
	statsService := stats.NewStatsService(statsRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	trackerHandler := handlers.NewTrackerHandler(trackerService, validator)
	statsHandler := handlers.NewStatsHandler(statsService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		MealHandler:    mealHandler,
		TrackerHandler: trackerHandler,
		StatsHandler:   statsHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
		Cache:          redisCache,
	}
	routesConfig.Setup()
	return app, nil
}
