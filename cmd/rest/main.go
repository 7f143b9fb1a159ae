package main

import (
	"context"
	"log"

	"sample-be/internal/bootstrap"
	"sample-be/internal/config"
	"sample-be/internal/model"
	"sample-be/internal/pkg/logger"
	"sample-be/internal/server"
	"sample-be/internal/tracer"
	"sample-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if cfg.Database.Driver == database.DriverSqlite {
		// sqlite is used for local runs only; postgres is migrated by cmd/migrate
		if err := gormDB.AutoMigrate(model.All()...); err != nil {
			log.Panicf("Unable to migrate sqlite schema: %v", err)
		}
	}

	// 4. Bootstrap Dependencies (Container)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	container := bootstrap.NewContainer(gormDB, cfg, sysLogger)
	defer container.Close()

	// 5. Start Background Services
	if container.ConsumerService != nil {
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
