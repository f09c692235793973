package routes

import (
	"Care-Crumbs/internal/api/handlers"
	"Care-Crumbs/internal/middleware"
	"Care-Crumbs/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	FoodHandler     handlers.FoodHandler
	CartHandler     handlers.CartHandler
	DonationHandler handlers.DonationHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Cart()
	c.Donations()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetInventory)
	foodItems.Get("/available", c.FoodHandler.GetAvailableFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	foodItems.Post("/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.JWTService))

	cart.Post("", c.CartHandler.AddToCart)
	cart.Get("", c.CartHandler.GetCartItems)
	cart.Put("/:id", c.CartHandler.UpdateCartItem)
	cart.Delete("/clear", c.CartHandler.ClearCart)
	cart.Delete("/:id", c.CartHandler.RemoveFromCart)
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))

	donations.Post("", c.DonationHandler.DonateCart)
	donations.Post("/single", c.DonationHandler.DonateSingleItem)
	donations.Get("", c.DonationHandler.GetDonatedFood)
	donations.Get("/report", c.DonationHandler.DownloadDonationReport)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
