// Package server boots the HTTP API: config, logger, database, Redis,
// then the full dependency graph down to the gin router.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	agentusecases "github.com/casaplex/casaplex/internal/application/agent/usecases"
	articleusecases "github.com/casaplex/casaplex/internal/application/article/usecases"
	contactusecases "github.com/casaplex/casaplex/internal/application/contact/usecases"
	faqusecases "github.com/casaplex/casaplex/internal/application/faq/usecases"
	listingusecases "github.com/casaplex/casaplex/internal/application/listing/usecases"
	settingservices "github.com/casaplex/casaplex/internal/application/setting/services"
	settingusecases "github.com/casaplex/casaplex/internal/application/setting/usecases"
	subscriptionservices "github.com/casaplex/casaplex/internal/application/subscription/services"
	subscriptionusecases "github.com/casaplex/casaplex/internal/application/subscription/usecases"
	"github.com/casaplex/casaplex/internal/infrastructure/auth"
	"github.com/casaplex/casaplex/internal/infrastructure/config"
	"github.com/casaplex/casaplex/internal/infrastructure/database"
	"github.com/casaplex/casaplex/internal/infrastructure/email"
	"github.com/casaplex/casaplex/internal/infrastructure/migration"
	"github.com/casaplex/casaplex/internal/infrastructure/persistence/seeds"
	"github.com/casaplex/casaplex/internal/infrastructure/ratelimit"
	"github.com/casaplex/casaplex/internal/infrastructure/repository"
	httpRouter "github.com/casaplex/casaplex/internal/interfaces/http"
	"github.com/casaplex/casaplex/internal/interfaces/http/handlers"
	"github.com/casaplex/casaplex/internal/interfaces/http/middleware"
	"github.com/casaplex/casaplex/internal/shared/biztime"
	"github.com/casaplex/casaplex/internal/shared/db"
	"github.com/casaplex/casaplex/internal/shared/logger"
	markdownsvc "github.com/casaplex/casaplex/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
	runSeeds    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Casaplex HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&runSeeds, "seed", false, "Load catalog seed data on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ginMode := mapEnvToGinMode(env)
	if err := logger.Init(&cfg.Logger, ginMode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.SetMode(ginMode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		return err
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production")
		}
		if err := migration.NewManager(env).Migrate(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed")
	}

	if runSeeds {
		if err := seeds.Run(database.Get()); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		log.Infow("seed data loaded")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	rateLimiter := ratelimit.NewRedisRateLimiter(redisClient)

	gormDB := database.Get()
	txManager := db.NewTransactionManager(gormDB)

	agentRepo := repository.NewAgentRepository(gormDB, log)
	listingRepo := repository.NewListingRepository(gormDB, log)
	cityRepo := repository.NewCityRepository(gormDB, log)
	articleRepo := repository.NewArticleRepository(gormDB, log)
	categoryRepo := repository.NewCategoryRepository(gormDB, log)
	planRepo := repository.NewPlanRepository(gormDB, log)
	subscriptionRepo := repository.NewSubscriptionRepository(gormDB, log)
	contactRepo := repository.NewContactRepository(gormDB, log)
	faqRepo := repository.NewFAQRepository(gormDB, log)
	settingRepo := repository.NewSiteSettingRepository(gormDB, log)

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	codeGenerator := auth.NewVerificationCodeGenerator(cfg.Auth.Verification.CodeLength)
	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:            cfg.Email.SMTPHost,
		Port:            cfg.Email.SMTPPort,
		Username:        cfg.Email.SMTPUser,
		Password:        cfg.Email.SMTPPassword,
		FromAddress:     cfg.Email.FromAddress,
		FromName:        cfg.Email.FromName,
		OperatorAddress: cfg.Email.OperatorAddress,
	})
	markdownService := markdownsvc.NewService()

	entitlementService := subscriptionservices.NewEntitlementService(subscriptionRepo, txManager, log)
	settingsProvider := settingservices.NewCachedProvider(settingRepo, log)
	if err := settingsProvider.Refresh(context.Background()); err != nil {
		log.Warnw("initial settings load failed, serving defaults", "error", err)
	}

	authHandler := handlers.NewAuthHandler(
		agentusecases.NewRegisterAgentUseCase(agentRepo, passwordHasher, jwtService, codeGenerator, emailService, log),
		agentusecases.NewLoginUseCase(agentRepo, passwordHasher, jwtService, log),
		agentusecases.NewRefreshTokenUseCase(agentRepo, jwtService, jwtService),
		agentusecases.NewVerifyEmailUseCase(agentRepo, log),
		agentusecases.NewResendVerificationUseCase(agentRepo, codeGenerator, emailService, log),
	)

	agentHandler := handlers.NewAgentHandler(
		agentusecases.NewListAgentsUseCase(agentRepo),
		agentusecases.NewGetAgentProfileUseCase(agentRepo),
		agentusecases.NewGetOwnProfileUseCase(agentRepo),
		agentusecases.NewUpdateProfileUseCase(agentRepo, codeGenerator, emailService, log),
		agentusecases.NewChangePasswordUseCase(agentRepo, passwordHasher, log),
		agentusecases.NewDeleteAccountUseCase(agentRepo, listingRepo, articleRepo, subscriptionRepo, txManager, log),
		agentusecases.NewListAgentsAdminUseCase(agentRepo),
		agentusecases.NewPromoteAgentUseCase(agentRepo, log),
		agentusecases.NewDeactivateAgentUseCase(agentRepo, log),
	)

	listingHandler := handlers.NewListingHandler(
		listingusecases.NewSearchListingsUseCase(listingRepo, cityRepo),
		listingusecases.NewLatestListingsUseCase(listingRepo, cityRepo),
		listingusecases.NewGetSearchBoundsUseCase(listingRepo),
		listingusecases.NewListingsByAgentUseCase(listingRepo, cityRepo, agentRepo),
		listingusecases.NewGetListingUseCase(listingRepo, cityRepo, agentRepo),
		listingusecases.NewCreateListingUseCase(listingRepo, cityRepo, agentRepo, entitlementService, txManager, emailService, log),
		listingusecases.NewUpdateListingUseCase(listingRepo, cityRepo, agentRepo, emailService, log),
		listingusecases.NewDeleteListingUseCase(listingRepo, log),
		listingusecases.NewSubmitListingUseCase(listingRepo, agentRepo, emailService, log),
		listingusecases.NewListOwnListingsUseCase(listingRepo, cityRepo),
		listingusecases.NewGetListingCountsUseCase(listingRepo),
		listingusecases.NewListListingsForReviewUseCase(listingRepo, cityRepo),
		listingusecases.NewApproveListingUseCase(listingRepo, log),
		listingusecases.NewRejectListingUseCase(listingRepo, log),
	)

	cityHandler := handlers.NewCityHandler(
		listingusecases.NewListCitiesUseCase(cityRepo),
		listingusecases.NewCreateCityUseCase(cityRepo, log),
		listingusecases.NewRenameCityUseCase(cityRepo, log),
		listingusecases.NewDeleteCityUseCase(cityRepo, log),
	)

	articleHandler := handlers.NewArticleHandler(
		articleusecases.NewSearchArticlesUseCase(articleRepo, categoryRepo),
		articleusecases.NewLatestArticlesUseCase(articleRepo, categoryRepo),
		articleusecases.NewArticlesByAuthorUseCase(articleRepo, categoryRepo, agentRepo),
		articleusecases.NewGetArticleUseCase(articleRepo, categoryRepo, agentRepo),
		articleusecases.NewCreateArticleUseCase(articleRepo, categoryRepo, agentRepo, markdownService, emailService, log),
		articleusecases.NewUpdateArticleUseCase(articleRepo, categoryRepo, agentRepo, markdownService, emailService, log),
		articleusecases.NewDeleteArticleUseCase(articleRepo, log),
		articleusecases.NewSubmitArticleUseCase(articleRepo, categoryRepo, agentRepo, emailService, log),
		articleusecases.NewListOwnArticlesUseCase(articleRepo, categoryRepo),
		articleusecases.NewGetArticleCountsUseCase(articleRepo),
		articleusecases.NewListArticlesForReviewUseCase(articleRepo, categoryRepo),
		articleusecases.NewApproveArticleUseCase(articleRepo, log),
		articleusecases.NewRejectArticleUseCase(articleRepo, log),
	)

	categoryHandler := handlers.NewCategoryHandler(
		articleusecases.NewListCategoriesUseCase(categoryRepo),
		articleusecases.NewCreateCategoryUseCase(categoryRepo, log),
		articleusecases.NewRenameCategoryUseCase(categoryRepo, log),
		articleusecases.NewDeleteCategoryUseCase(categoryRepo, log),
	)

	subscriptionHandler := handlers.NewSubscriptionHandler(
		subscriptionusecases.NewListPlansUseCase(planRepo),
		subscriptionusecases.NewPurchaseSubscriptionUseCase(planRepo, subscriptionRepo, log),
		subscriptionusecases.NewGetCurrentSubscriptionUseCase(subscriptionRepo, log),
		subscriptionusecases.NewCreatePlanUseCase(planRepo, log),
		subscriptionusecases.NewUpdatePlanUseCase(planRepo, log),
		subscriptionusecases.NewDeletePlanUseCase(planRepo, log),
	)

	contactHandler := handlers.NewContactHandler(
		contactusecases.NewSubmitContactUseCase(contactRepo, emailService, log),
		contactusecases.NewListContactMessagesUseCase(contactRepo),
		contactusecases.NewMarkContactReviewedUseCase(contactRepo, log),
		contactusecases.NewDeleteContactMessageUseCase(contactRepo, log),
	)

	siteHandler := handlers.NewSiteHandler(
		settingusecases.NewGetSiteSettingsUseCase(settingsProvider),
		settingusecases.NewUpdateSiteSettingsUseCase(settingRepo, settingsProvider, log),
		faqusecases.NewListFAQsUseCase(faqRepo),
		faqusecases.NewSaveFAQUseCase(faqRepo, log),
		faqusecases.NewDeleteFAQUseCase(faqRepo, log),
	)

	router := httpRouter.NewRouter(httpRouter.RouterConfig{
		Logger:         log,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimiter:    rateLimiter,
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService, agentRepo, log),

		AuthHandler:         authHandler,
		AgentHandler:        agentHandler,
		ListingHandler:      listingHandler,
		CityHandler:         cityHandler,
		ArticleHandler:      articleHandler,
		CategoryHandler:     categoryHandler,
		SubscriptionHandler: subscriptionHandler,
		ContactHandler:      contactHandler,
		SiteHandler:         siteHandler,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr(), "mode", ginMode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
