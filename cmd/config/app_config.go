package config

import (
	"os"
	"time"

	"foodcycle-backend/internal/api/handlers"
	"foodcycle-backend/internal/api/routes"
	"foodcycle-backend/internal/middleware"
	"foodcycle-backend/internal/utils"
	"foodcycle-backend/internal/utils/storage"
	"foodcycle-backend/pkg/distribution"
	"foodcycle-backend/pkg/food"
	"foodcycle-backend/pkg/jwt"
	"foodcycle-backend/pkg/notification"
	"foodcycle-backend/pkg/recipient"
	"foodcycle-backend/pkg/user"
	"foodcycle-backend/pkg/waste"

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
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	wasteRepository := waste.NewWasteRepository(db)
	recipientRepository := recipient.NewRecipientRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	distributionRepository := distribution.NewDistributionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, s3)
	wasteService := waste.NewWasteService(wasteRepository, foodRepository)
	recipientService := recipient.NewRecipientService(recipientRepository)
	notificationService := notification.NewNotificationService(notificationRepository)
	distributionService := distribution.NewDistributionService(
		distributionRepository,
		wasteRepository,
		recipientRepository,
		notificationRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	wasteHandler := handlers.NewWasteHandler(wasteService, validator)
	recipientHandler := handlers.NewRecipientHandler(recipientService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	distributionHandler := handlers.NewDistributionHandler(distributionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FoodHandler:         foodHandler,
		WasteHandler:        wasteHandler,
		DistributionHandler: distributionHandler,
		RecipientHandler:    recipientHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
