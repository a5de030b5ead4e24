// Package http wires the gin engine: middleware ordering, route groups
// and the public/authenticated/operator split.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/infrastructure/ratelimit"
	"github.com/casaplex/casaplex/internal/interfaces/http/handlers"
	"github.com/casaplex/casaplex/internal/interfaces/http/middleware"
	"github.com/casaplex/casaplex/internal/shared/authorization"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// RouterConfig carries everything the router needs. Handlers are
// constructed by the caller so the router stays a pure wiring layer.
type RouterConfig struct {
	Logger         logger.Interface
	AllowedOrigins []string
	RateLimiter    ratelimit.RateLimiter

	AuthMiddleware *middleware.AuthMiddleware

	AuthHandler         *handlers.AuthHandler
	AgentHandler        *handlers.AgentHandler
	ListingHandler      *handlers.ListingHandler
	CityHandler         *handlers.CityHandler
	ArticleHandler      *handlers.ArticleHandler
	CategoryHandler     *handlers.CategoryHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	ContactHandler      *handlers.ContactHandler
	SiteHandler         *handlers.SiteHandler
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	handlers.RegisterValidations()

	router := gin.New()
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	registerPublicRoutes(api, cfg)
	registerAuthRoutes(api, cfg)
	registerAgentRoutes(api, cfg)
	registerOperatorRoutes(api, cfg)

	return router
}

// registerPublicRoutes covers everything a visitor can reach without a
// token. Listing and article detail pages take OptionalAuth so owners
// and operators can open their own unpublished content by link.
func registerPublicRoutes(api *gin.RouterGroup, cfg RouterConfig) {
	api.GET("/listings", cfg.ListingHandler.Search)
	api.GET("/listings/latest", cfg.ListingHandler.Latest)
	api.GET("/listings/bounds", cfg.ListingHandler.Bounds)
	api.GET("/listings/:sid", cfg.AuthMiddleware.OptionalAuth(), cfg.ListingHandler.Get)

	api.GET("/articles", cfg.ArticleHandler.Search)
	api.GET("/articles/latest", cfg.ArticleHandler.Latest)
	api.GET("/articles/:sid", cfg.AuthMiddleware.OptionalAuth(), cfg.ArticleHandler.Get)

	api.GET("/agents", cfg.AgentHandler.ListDirectory)
	api.GET("/agents/:sid", cfg.AgentHandler.GetProfile)
	api.GET("/agents/:sid/listings", cfg.ListingHandler.ListByAgent)
	api.GET("/agents/:sid/articles", cfg.ArticleHandler.ListByAuthor)

	api.GET("/plans", cfg.SubscriptionHandler.ListPlans)
	api.GET("/cities", cfg.CityHandler.List)
	api.GET("/categories", cfg.CategoryHandler.List)
	api.GET("/settings", cfg.SiteHandler.GetSettings)
	api.GET("/faqs", cfg.SiteHandler.ListFAQs)

	api.POST("/contact",
		middleware.RateLimit(cfg.RateLimiter, ratelimit.ContactConfig(), "contact", cfg.Logger),
		cfg.ContactHandler.Submit)
}

func registerAuthRoutes(api *gin.RouterGroup, cfg RouterConfig) {
	auth := api.Group("/auth")
	auth.POST("/register", cfg.AuthHandler.Register)
	auth.POST("/login",
		middleware.RateLimit(cfg.RateLimiter, ratelimit.LoginConfig(), "login", cfg.Logger),
		cfg.AuthHandler.Login)
	auth.POST("/refresh", cfg.AuthHandler.Refresh)

	verified := auth.Group("", cfg.AuthMiddleware.RequireAuth())
	verified.POST("/verify-email", cfg.AuthHandler.VerifyEmail)
	verified.POST("/resend-verification",
		middleware.RateLimit(cfg.RateLimiter, ratelimit.VerificationConfig(), "verification", cfg.Logger),
		cfg.AuthHandler.ResendVerification)
}

// registerAgentRoutes is the authenticated surface: profile management
// and the agent's own content workspace.
func registerAgentRoutes(api *gin.RouterGroup, cfg RouterConfig) {
	me := api.Group("", cfg.AuthMiddleware.RequireAuth())

	me.GET("/me", cfg.AgentHandler.GetOwnProfile)
	me.PUT("/me", cfg.AgentHandler.UpdateProfile)
	me.PUT("/me/password", cfg.AgentHandler.ChangePassword)
	me.DELETE("/me", cfg.AgentHandler.DeleteAccount)

	me.GET("/me/listings", cfg.ListingHandler.ListOwn)
	me.GET("/me/listings/counts", cfg.ListingHandler.Counts)
	me.POST("/listings", cfg.ListingHandler.Create)
	me.PUT("/listings/:sid", cfg.ListingHandler.Update)
	me.DELETE("/listings/:sid", cfg.ListingHandler.Delete)
	me.POST("/listings/:sid/submit", cfg.ListingHandler.Submit)

	me.GET("/me/articles", cfg.ArticleHandler.ListOwn)
	me.GET("/me/articles/counts", cfg.ArticleHandler.Counts)
	me.POST("/articles", cfg.ArticleHandler.Create)
	me.PUT("/articles/:sid", cfg.ArticleHandler.Update)
	me.DELETE("/articles/:sid", cfg.ArticleHandler.Delete)
	me.POST("/articles/:sid/submit", cfg.ArticleHandler.Submit)

	me.GET("/me/subscription", cfg.SubscriptionHandler.GetCurrent)
	me.POST("/subscriptions", cfg.SubscriptionHandler.Purchase)
}

func registerOperatorRoutes(api *gin.RouterGroup, cfg RouterConfig) {
	ops := api.Group("/admin", cfg.AuthMiddleware.RequireAuth(), authorization.RequireOperator())

	ops.GET("/listings/review", cfg.ListingHandler.ListForReview)
	ops.POST("/listings/:sid/approve", cfg.ListingHandler.Approve)
	ops.POST("/listings/:sid/reject", cfg.ListingHandler.Reject)

	ops.GET("/articles/review", cfg.ArticleHandler.ListForReview)
	ops.POST("/articles/:sid/approve", cfg.ArticleHandler.Approve)
	ops.POST("/articles/:sid/reject", cfg.ArticleHandler.Reject)

	ops.POST("/cities", cfg.CityHandler.Create)
	ops.PUT("/cities/:id", cfg.CityHandler.Rename)
	ops.DELETE("/cities/:id", cfg.CityHandler.Delete)

	ops.POST("/categories", cfg.CategoryHandler.Create)
	ops.PUT("/categories/:id", cfg.CategoryHandler.Rename)
	ops.DELETE("/categories/:id", cfg.CategoryHandler.Delete)

	ops.POST("/plans", cfg.SubscriptionHandler.CreatePlan)
	ops.PUT("/plans/:sid", cfg.SubscriptionHandler.UpdatePlan)
	ops.DELETE("/plans/:sid", cfg.SubscriptionHandler.DeletePlan)

	ops.GET("/agents", cfg.AgentHandler.ListAdmin)
	ops.POST("/agents/:sid/promote", cfg.AgentHandler.Promote)
	ops.POST("/agents/:sid/deactivate", cfg.AgentHandler.Deactivate)

	ops.GET("/contact-messages", cfg.ContactHandler.List)
	ops.POST("/contact-messages/:id/reviewed", cfg.ContactHandler.MarkReviewed)
	ops.DELETE("/contact-messages/:id", cfg.ContactHandler.Delete)

	ops.PUT("/settings", cfg.SiteHandler.UpdateSettings)
	ops.POST("/faqs", cfg.SiteHandler.CreateFAQ)
	ops.PUT("/faqs/:id", cfg.SiteHandler.UpdateFAQ)
	ops.DELETE("/faqs/:id", cfg.SiteHandler.DeleteFAQ)
}
