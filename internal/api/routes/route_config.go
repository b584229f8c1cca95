package routes

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nourishnet/domain"
	"nourishnet/internal/api/handlers"
	"nourishnet/internal/middleware"
	"nourishnet/pkg/jwt"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	FoodHandler        handlers.FoodHandler
	ClaimHandler       handlers.ClaimHandler
	DeliveryHandler    handlers.DeliveryHandler
	ChatHandler        handlers.ChatHandler
	AchievementHandler handlers.AchievementHandler
	CommunityHandler   handlers.CommunityHandler
	ReportHandler      handlers.ReportHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Claims()
	c.Delivery()
	c.Chats()
	c.Achievements()
	c.Community()
	c.Reports()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Get("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetProfile)
		user.Post("/:id/follow", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ToggleFollow)
	}

	admin := c.App.Group("/api/v1/admin/users",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin))
	{
		admin.Get("", c.UserHandler.GetUsers)
		admin.Patch("/:id/role", c.UserHandler.UpdateUserRole)
		admin.Delete("/:id", c.UserHandler.RemoveUser)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))

	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/nearby", c.FoodHandler.GetNearbyFoodItems)
	foodItems.Post("/generate-description", c.FoodHandler.GenerateDescription)
	foodItems.Get("/users/:id", c.FoodHandler.GetUserFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Get("/:id/claims", c.ClaimHandler.GetItemClaims)
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/v1/claims", c.Middleware.AuthMiddleware(c.JWTService))

	claims.Post("", c.ClaimHandler.CreateClaim)
	claims.Get("/mine", c.ClaimHandler.GetMyClaims)
	claims.Get("/incoming", c.ClaimHandler.GetIncomingClaims)
	claims.Get("/:id", c.ClaimHandler.GetClaimDetails)
	claims.Patch("/:id/status", c.ClaimHandler.UpdateClaimStatus)
}

func (c *Config) Delivery() {
	partner := c.App.Group("/api/v1/delivery",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleDeliveryPartner))
	{
		partner.Get("/jobs", c.DeliveryHandler.GetAvailableJobs)
		partner.Get("/jobs/mine", c.DeliveryHandler.GetPartnerJobs)
		partner.Post("/jobs/:id/accept", c.DeliveryHandler.AcceptJob)
		partner.Post("/verification", c.DeliveryHandler.SubmitVerification)
		partner.Patch("/availability", c.DeliveryHandler.SetAvailability)
	}

	admin := c.App.Group("/api/v1/admin/delivery",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin))
	{
		admin.Patch("/:id/verification", c.DeliveryHandler.ReviewVerification)
	}
}

func (c *Config) Chats() {
	chats := c.App.Group("/api/v1/chats", c.Middleware.AuthMiddleware(c.JWTService))

	chats.Post("/requests", c.ChatHandler.SendChatRequest)
	chats.Get("/requests", c.ChatHandler.GetChatRequests)
	chats.Post("/requests/:id/answer", c.ChatHandler.AnswerChatRequest)
	chats.Get("/conversations", c.ChatHandler.GetConversations)
	chats.Get("/conversations/:id/messages", c.ChatHandler.GetMessages)
	chats.Post("/conversations/:id/messages", c.ChatHandler.SendMessage)
}

func (c *Config) Achievements() {
	achievements := c.App.Group("/api/v1/achievements", c.Middleware.AuthMiddleware(c.JWTService))

	achievements.Get("", c.AchievementHandler.GetAchievements)
	achievements.Get("/users/:id", c.AchievementHandler.GetUserAchievements)
}

func (c *Config) Community() {
	community := c.App.Group("/api/v1/community", c.Middleware.AuthMiddleware(c.JWTService))

	community.Post("/posts", c.CommunityHandler.AddPost)
	community.Get("/posts", c.CommunityHandler.GetPosts)
	community.Post("/posts/:id/like", c.CommunityHandler.LikePost)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))
	reports.Post("", c.ReportHandler.CreateReport)

	admin := c.App.Group("/api/v1/admin/reports",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin))
	{
		admin.Get("", c.ReportHandler.GetReports)
		admin.Patch("/:id/resolve", c.ReportHandler.ResolveReport)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
