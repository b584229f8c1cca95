package config

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"nourishnet/internal/api/handlers"
	"nourishnet/internal/api/routes"
	"nourishnet/internal/events"
	"nourishnet/internal/middleware"
	"nourishnet/internal/utils"
	"nourishnet/internal/utils/genai"
	"nourishnet/internal/utils/storage"
	"nourishnet/pkg/achievement"
	"nourishnet/pkg/chat"
	"nourishnet/pkg/claim"
	"nourishnet/pkg/community"
	"nourishnet/pkg/delivery"
	"nourishnet/pkg/food"
	"nourishnet/pkg/jwt"
	"nourishnet/pkg/report"
	"nourishnet/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

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
	descriptions := genai.NewDescriptionGenerator()

	var presence delivery.PresenceTracker = delivery.NopPresence{}
	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		presence = delivery.NewRedisPresence(redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: utils.GetConfig("REDIS_PASSWORD"),
		}))
	}

	var producer events.Producer = events.NopProducer{}
	if brokers := utils.GetConfig("KAFKA_BROKERS"); brokers != "" {
		producer = events.NewKafkaProducer(
			strings.Split(brokers, ","),
			utils.GetConfig("KAFKA_TOPIC"),
		)
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	claimRepository := claim.NewClaimRepository(db)
	deliveryRepository := delivery.NewDeliveryRepository(db)
	chatRepository := chat.NewChatRepository(db)
	achievementRepository := achievement.NewAchievementRepository(db)
	communityRepository := community.NewCommunityRepository(db)
	reportRepository := report.NewReportRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	achievementService := achievement.NewAchievementService(achievementRepository)
	userService := user.NewUserService(userRepository, jwtService, s3)
	foodService := food.NewFoodService(foodRepository, achievementService, s3, descriptions)
	claimService := claim.NewClaimService(claimRepository, foodRepository, achievementService, producer)
	deliveryService := delivery.NewDeliveryService(deliveryRepository, userRepository, presence, s3)
	chatService := chat.NewChatService(chatRepository)
	communityService := community.NewCommunityService(communityRepository, s3)
	reportService := report.NewReportService(reportRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, validator)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService, validator)
	chatHandler := handlers.NewChatHandler(chatService, validator)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	communityHandler := handlers.NewCommunityHandler(communityService, validator)
	reportHandler := handlers.NewReportHandler(reportService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		FoodHandler:        foodHandler,
		ClaimHandler:       claimHandler,
		DeliveryHandler:    deliveryHandler,
		ChatHandler:        chatHandler,
		AchievementHandler: achievementHandler,
		CommunityHandler:   communityHandler,
		ReportHandler:      reportHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
