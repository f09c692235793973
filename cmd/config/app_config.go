package config

import (
	"os"
	"time"

	"Care-Crumbs/internal/api/handlers"
	"Care-Crumbs/internal/api/routes"
	"Care-Crumbs/internal/middleware"
	"Care-Crumbs/internal/utils"
	"Care-Crumbs/internal/utils/sms"
	"Care-Crumbs/internal/utils/storage"
	"Care-Crumbs/pkg/cart"
	"Care-Crumbs/pkg/donation"
	"Care-Crumbs/pkg/food"
	"Care-Crumbs/pkg/jwt"
	"Care-Crumbs/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, food.FoodService, error) {
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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	smsSender := sms.NewSnsSender()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	cartRepository := cart.NewCartRepository(db)
	donationRepository := donation.NewDonationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3, smsSender)
	foodService := food.NewFoodService(foodRepository, s3)
	cartService := cart.NewCartService(cartRepository, foodRepository)
	donationService := donation.NewDonationService(
		donationRepository,
		cartRepository,
		foodRepository,
		userRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		FoodHandler:     foodHandler,
		CartHandler:     cartHandler,
		DonationHandler: donationHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, foodService, nil
}
