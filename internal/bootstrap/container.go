package bootstrap

import (
	"context"
	"log"

	"collegeplan-be/internal/config"
	"collegeplan-be/internal/controller"
	"collegeplan-be/internal/handler"
	"collegeplan-be/internal/pkg/logger"
	"collegeplan-be/internal/pkg/mailer"
	"collegeplan-be/internal/repository/implementation"
	"collegeplan-be/internal/repository/unitofwork"
	"collegeplan-be/internal/service"
	"collegeplan-be/internal/session"
	"collegeplan-be/internal/websocket"
	"collegeplan-be/pkg/llm/factory"

	pktNats "collegeplan-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// profileActivityTopic carries chat-driven profile updates from the chat
// service to the notification consumer.
const profileActivityTopic = "profile_activity"

type Container struct {
	// Controllers
	AuthController           controller.IAuthController
	UserController           controller.IUserController
	CollegeController        controller.ICollegeController
	AdvisorController        controller.IAdvisorController
	SharedController         controller.ISharedController
	ChatController           controller.IChatController
	RecommendationController controller.IRecommendationController
	FeedbackController       controller.IFeedbackController
	UploadController         controller.IUploadController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	// Shared infrastructure the server layer needs
	SessionStore session.Store
	Logger       logger.ILogger
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
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Provider
	llmProvider, err := factory.NewProvider(cfg.Ai.Provider, cfg.Ai.GoogleGemini)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize AI Provider: %v", err)
	}
	log.Printf("[INFO] Using AI Provider: %s", cfg.Ai.Provider)

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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
	}

	// Server-side sessions live in Redis so they survive restarts.
	sessionStore := session.NewRedisStore(rdb)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(profileActivityTopic, pubSub)

	authService := service.NewAuthService(uowFactory, sessionStore, natsPub, sysLogger)
	userService := service.NewUserService(uowFactory, llmProvider)
	collegeService := service.NewCollegeService(uowFactory)
	advisorService := service.NewAdvisorService(uowFactory, emailService, natsPub, cfg.App.ClientURL, sysLogger)
	recommendationService := service.NewRecommendationService(uowFactory, llmProvider)
	chatService := service.NewChatService(
		uowFactory,
		llmProvider,
		advisorService,
		publisherService,
		sysLogger,
		cfg.App.UploadDir,
	)
	uploadService := service.NewUploadService(cfg.App.UploadDir)

	// 5. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	if natsSub != nil {
		go notifService.Start()
	}

	consumerService := service.NewConsumerService(pubSub, profileActivityTopic, notifRepo, wsHub)

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, sessionStore, cfg.App.SessionCookieName, wsLogger)

	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:           controller.NewAuthController(authService, cfg.App.SessionCookieName, cfg.App.Environment),
		UserController:           controller.NewUserController(userService),
		CollegeController:        controller.NewCollegeController(collegeService),
		AdvisorController:        controller.NewAdvisorController(advisorService),
		SharedController:         controller.NewSharedController(advisorService),
		ChatController:           controller.NewChatController(chatService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		FeedbackController:       controller.NewFeedbackController(chatService),
		UploadController:         controller.NewUploadController(uploadService),

		ConsumerService: consumerService,

		SessionStore: sessionStore,
		Logger:       sysLogger,
	}
}
