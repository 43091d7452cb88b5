package routes

import (
	"NutriSnap-Backend/internal/api/handlers"
	"NutriSnap-Backend/internal/middleware"
	"NutriSnap-Backend/internal/utils/cache"
	"NutriSnap-Backend/pkg/jwt"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	MealHandler    handlers.MealHandler
	TrackerHandler handlers.TrackerHandler
	StatsHandler   handlers.StatsHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
	Cache          cache.Cache
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.User()
	c.Meals()
	c.Tracker()
	c.Stats()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
	}
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals",
		c.Middleware.AuthMiddleware(c.JWTService),
		middleware.InvalidateCache(c.Cache),
	)

	meals.Post("", c.MealHandler.AddMeal)
	meals.Get("", c.MealHandler.GetMeals)
	meals.Get("/:id", c.MealHandler.GetMealDetails)
	meals.Patch("/:id", c.MealHandler.UpdateMeal)
	meals.Delete("/:id", c.MealHandler.DeleteMeal)

	// photo upload runs the vision analyzer before persisting
	meals.Post("/photo", c.MealHandler.UploadMealPhoto)
}

func (c *Config) Tracker() {
	tracker := c.App.Group("/api/v1/tracker",
		c.Middleware.AuthMiddleware(c.JWTService),
		middleware.InvalidateCache(c.Cache),
	)

	tracker.Post("/weight", c.TrackerHandler.LogWeight)
	tracker.Get("/weight", c.TrackerHandler.GetWeightHistory)
	tracker.Post("/water", c.TrackerHandler.LogWater)
	tracker.Get("/water", c.TrackerHandler.GetWater)
	tracker.Post("/exercise", c.TrackerHandler.LogExercise)
	tracker.Get("/exercise", c.TrackerHandler.GetExercises)
	tracker.Delete("/exercise/:id", c.TrackerHandler.DeleteExercise)
}

func (c *Config) Stats() {
	stats := c.App.Group("/api/v1/stats",
		c.Middleware.AuthMiddleware(c.JWTService),
		middleware.CacheMiddleware(c.Cache, 5*time.Minute),
	)

	stats.Get("/dashboard", c.StatsHandler.GetDashboard)
	stats.Get("/period", c.StatsHandler.GetPeriodStats)
	stats.Get("/weekly-series", c.StatsHandler.GetWeeklySeries)
	stats.Get("/streak", c.StatsHandler.GetStreak)
	stats.Get("/macros", c.StatsHandler.GetMacroDistribution)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
