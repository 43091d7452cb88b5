package main

import (
	"NutriSnap-Backend/cmd/config"
	migration "NutriSnap-Backend/cmd/database/migrate"
	"NutriSnap-Backend/internal/scheduler"
	"NutriSnap-Backend/internal/utils"
	"NutriSnap-Backend/pkg/stats"
	"NutriSnap-Backend/pkg/user"
	"log"
)

func main() {
	utils.LoadConfig()
	utils.InitLogger()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	digest := scheduler.NewScheduler(
		user.NewUserRepository(db),
		stats.NewStatsService(stats.NewStatsRepository(db)),
	)
	if err := digest.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer digest.Stop()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
