package routes

import (
	"foodcycle-backend/internal/api/handlers"
	"foodcycle-backend/internal/middleware"
	"foodcycle-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	WasteHandler        handlers.WasteHandler
	DistributionHandler handlers.DistributionHandler
	RecipientHandler    handlers.RecipientHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.WastedFoods()
	c.Distributions()
	c.Recipients()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Post("/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) WastedFoods() {
	wastedFoods := c.App.Group("/api/v1/wasted-foods", c.Middleware.AuthMiddleware(c.JWTService))
	wastedFoods.Get("/undistributed", c.WasteHandler.GetUndistributedWastedFoods)

	wastedFoods.Post("", c.WasteHandler.AddWastedFood)
	wastedFoods.Get("", c.WasteHandler.GetWastedFoods)
	wastedFoods.Get("/:id", c.WasteHandler.GetWastedFoodDetails)
}

func (c *Config) Distributions() {
	distributions := c.App.Group("/api/v1/distributions", c.Middleware.AuthMiddleware(c.JWTService))

	distributions.Post("", c.DistributionHandler.CreateDistribution)
	distributions.Get("", c.DistributionHandler.GetDistributions)
	distributions.Patch("/:id/status", c.DistributionHandler.UpdateDistributionStatus)
}

func (c *Config) Recipients() {
	recipients := c.App.Group("/api/v1/recipients", c.Middleware.AuthMiddleware(c.JWTService))
	recipients.Get("", c.RecipientHandler.GetRecipients)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))

	notifications.Get("/unread", c.NotificationHandler.GetUnreadNotifications)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
