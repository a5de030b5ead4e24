package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Public catalog page sizes (fixed per entity kind)
	ListingPageSize = 6
	ArticlePageSize = 6
	AgentPageSize   = 6

	// Context keys
	ContextKeyAgentID   = "agent_id"
	ContextKeyAgentRole = "agent_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableAgents            = "agents"
	TableCities            = "cities"
	TableListings          = "listings"
	TableArticles          = "articles"
	TableCategories        = "categories"
	TableArticleCategories = "article_categories"
	TablePlans             = "plans"
	TableSubscriptions     = "subscriptions"
	TableSiteSettings      = "site_settings"
	TableContactMessages   = "contact_messages"
	TableFAQs              = "faqs"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgSubscriptionNeeded  = "An active subscription is required"
)
