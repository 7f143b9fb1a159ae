package bootstrap

import (
	"log"
	"time"

	"sample-be/internal/client"
	"sample-be/internal/config"
	"sample-be/internal/controller"
	"sample-be/internal/pkg/logger"
	"sample-be/internal/pkg/serverutils"
	"sample-be/internal/repository/memory"
	"sample-be/internal/repository/unitofwork"
	"sample-be/internal/service"
	"sample-be/pkg/events"

	pktNats "sample-be/pkg/nats"

	"gorm.io/gorm"
)

const (
	EventBusMemory = "memory"
	EventBusNats   = "nats"
	EventBusNone   = "none"

	identityCacheTTL = 5 * time.Minute
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	ParentEntityController controller.IParentEntityController
	ChildEntityController  controller.IChildEntityController

	// Background Services (nil unless the in-memory bus is selected)
	ConsumerService service.IConsumerService

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	var publisher events.Publisher
	switch cfg.Events.Bus {
	case EventBusNats:
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			break
		}
		publisher = natsPub
		c.closers = append(c.closers, natsPub.Close)
	case EventBusNone:
		log.Printf("[INFO] Event bus disabled")
	default:
		bus := events.NewChannelPublisher(events.NewGoChannel())
		publisher = bus
		c.ConsumerService = service.NewConsumerService(bus, sysLogger)
		c.closers = append(c.closers, func() { _ = bus.Close() })
	}

	// 3. Services
	var identityDirectory service.IIdentityDirectory
	if cfg.Identity.ServiceURL != "" {
		identityClient := client.NewIdentityClient(cfg.Identity.ServiceURL, nil)
		identityDirectory = service.NewRemoteIdentityDirectory(
			identityClient,
			memory.NewUserCacheRepository(identityCacheTTL),
			sysLogger,
		)
		log.Printf("[INFO] Using remote identity directory: %s", cfg.Identity.ServiceURL)
	} else {
		identityDirectory = service.NewLocalIdentityDirectory(uowFactory)
	}

	publisherService := service.NewPublisherService(publisher, sysLogger)
	parentEntityService := service.NewParentEntityService(uowFactory, publisherService, sysLogger)
	childEntityService := service.NewChildEntityService(uowFactory, identityDirectory, publisherService, sysLogger)
	relationshipService := service.NewRelationshipService(uowFactory, publisherService, sysLogger)

	// 4. Controllers
	auth := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret)
	c.ParentEntityController = controller.NewParentEntityController(parentEntityService, relationshipService, auth, cfg.App.Name)
	c.ChildEntityController = controller.NewChildEntityController(childEntityService, auth, cfg.App.Name)

	return c
}

// Close releases the event bus connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
