package main

import (
	"context"
	"log"
	"os"

	"sample-be/internal/config"
	"sample-be/internal/pkg/logger"
	"sample-be/internal/repository/unitofwork"
	"sample-be/internal/service"
	"sample-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewNopLogger()
	// seeding is not a domain mutation, events are not published
	publisherService := service.NewPublisherService(nil, sysLogger)

	seeder := &demoSeeder{
		uowFactory: uowFactory,
		parents:    service.NewParentEntityService(uowFactory, publisherService, sysLogger),
		children: service.NewChildEntityService(
			uowFactory,
			service.NewLocalIdentityDirectory(uowFactory),
			publisherService,
			sysLogger,
		),
	}

	log.Println("Seeding demo entities...")
	if err := seeder.Seed(context.Background(), demoOwner()); err != nil {
		log.Printf("Error: seeding failed: %v", err)
		os.Exit(1)
	}
	log.Println("Demo seeding completed!")
}

func demoOwner() demoUser {
	id := os.Getenv("SEED_USER_ID")
	if id == "" {
		id = "demo-user"
	}
	login := os.Getenv("SEED_USER_LOGIN")
	if login == "" {
		login = "demo"
	}
	return demoUser{Id: id, Login: login}
}
