package bootstrap

import (
	"context"
	"log"

	"schoolhub-be/internal/config"
	"schoolhub-be/internal/controller"
	"schoolhub-be/internal/pkg/logger"
	"schoolhub-be/internal/pkg/mailer"
	"schoolhub-be/internal/repository/adapter"
	"schoolhub-be/internal/repository/memory"
	"schoolhub-be/internal/repository/unitofwork"
	"schoolhub-be/internal/service"
	"schoolhub-be/internal/websocket"
	"schoolhub-be/pkg/events"
	pktNats "schoolhub-be/pkg/nats"
	"schoolhub-be/pkg/navigation"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	MenuController   controller.IMenuController
	AdminController  controller.IAdminController
	SchoolController controller.ISchoolController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 2.5 Infrastructure
	// NATS: optional, the app degrades to single-instance mode without it
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// NATS subscriber: applies menu changes mirrored by other instances
	// (and changes published while this instance was down) to locally
	// connected clients.
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		subject := pktNats.Subject(events.TopicMenuChanged)
		if err := natsSub.Subscribe(subject, "menu-refresh", service.NewMenuRefreshBridge(wsHub)); err != nil {
			log.Printf("[WARN] Failed to subscribe to %s: %v", subject, err)
		}
	}

	// 3. Navigation engine over the GORM stores
	resolver := navigation.NewResolver(
		adapter.NewCatalogStore(uowFactory),
		adapter.NewEntitlementStore(uowFactory),
	)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, events.TopicMenuChanged)
	consumerService := service.NewConsumerService(
		pubSub,
		events.TopicMenuChanged,
		uowFactory,
		wsHub,
		natsPub,
		emailService,
	)

	menuService := service.NewMenuService(resolver)
	catalogService := service.NewCatalogService(uowFactory)
	entitlementService := service.NewEntitlementService(uowFactory, publisherService, sysLogger)
	schoolService := service.NewSchoolService(uowFactory, emailService)
	authService := service.NewAuthService(uowFactory, sessionRepo, natsPub)
	oauthService := service.NewOAuthService(
		uowFactory,
		sessionRepo,
		cfg.OAuth.GoogleClientID,
		cfg.OAuth.GoogleClientSecret,
		cfg.OAuth.GoogleRedirectURL,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AuthController:   controller.NewAuthController(authService, oauthService),
		MenuController:   controller.NewMenuController(menuService),
		AdminController:  controller.NewAdminController(catalogService, schoolService, entitlementService),
		SchoolController: controller.NewSchoolController(entitlementService),

		ConsumerService: consumerService,

		WebSocketHub: wsHub,
	}
}
