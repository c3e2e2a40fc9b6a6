package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"margadarsaka-be/internal/config"
	"margadarsaka-be/internal/controller"
	"margadarsaka-be/internal/pkg/logger"
	"margadarsaka-be/internal/pkg/mailer"
	"margadarsaka-be/internal/pkg/serverutils"
	"margadarsaka-be/internal/repository/memory"
	"margadarsaka-be/internal/repository/unitofwork"
	"margadarsaka-be/internal/service"
	"margadarsaka-be/pkg/llm/factory"
	"margadarsaka-be/pkg/rating"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	AssessmentController controller.IAssessmentController
	AdvisorController    controller.IAdvisorController
	RoadmapController    controller.IRoadmapController
	RatingController     controller.IRatingController

	// Guards token-protected route groups. Built once from the resolved
	// secret so signing and verification can never disagree.
	JwtMiddleware fiber.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
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

	// 3. LLM Provider
	llmProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory answer collection
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	authService := service.NewAuthService(
		uowFactory,
		cfg.Keys.GoogleClientID,
		cfg.Keys.GoogleClientSecret,
		cfg.App.BaseURL+"/api/auth/v1/google/callback",
		cfg.Keys.JwtSecret,
		sysLogger,
	)
	assessmentService := service.NewAssessmentService(uowFactory, llmProvider, sessionRepo, pubSub, sysLogger)
	advisorService := service.NewAdvisorService(uowFactory, llmProvider, pubSub, sysLogger)
	roadmapService := service.NewRoadmapService(llmProvider, emailService, pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		AssessmentController: controller.NewAssessmentController(assessmentService),
		AdvisorController:    controller.NewAdvisorController(advisorService),
		RoadmapController:    controller.NewRoadmapController(roadmapService),
		RatingController:     controller.NewRatingController(rating.NewRenderer(cfg.App.RatingRenderer)),

		JwtMiddleware: serverutils.NewJwtMiddleware(cfg.Keys.JwtSecret),

		ConsumerService: consumerService,
	}
}
