// File: orderly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderly/config"
	"orderly/database"
	providerRepo "orderly/database/repository/provider"
	userRepoPkg "orderly/database/repository/user"
	"orderly/handlers"
	"orderly/middleware"
	"orderly/routes"
	"orderly/services/email"
	"orderly/services/onboarding"
	"orderly/services/payments"
	"orderly/services/provider"
	"orderly/services/quota"
	"orderly/services/sms"
	"orderly/services/storage"
	"orderly/services/user"
	"orderly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitQuotaCache()

	// Vendor clients are constructed once here and shared read-only.
	stripe.Key = config.AppConfig.StripeKey
	stripeAccounts := payments.NewStripeAccounts(
		config.AppConfig.StripeRefreshURL,
		config.AppConfig.StripeReturnURL,
	)

	verifier, err := sms.NewTwilioVerifier(
		config.AppConfig.TwilioAccountSID,
		config.AppConfig.TwilioAuthToken,
		config.AppConfig.TwilioVerifyServiceSID,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize SMS verifier: %v", err)
	}

	photoStore, err := storage.NewCloudinaryStore(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize photo storage: %v", err)
	}

	mailer, err := email.NewResendMailer(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.ResendFromEmail,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize mailer: %v", err)
	}

	limiter := quota.NewRedisLimiter(utils.GetQuotaCacheClient(), quota.Limits{
		Window: time.Duration(config.AppConfig.QuotaWindowMinutes) * time.Minute,
		PerKind: map[string]int{
			quota.ActionPhoneLookup: config.AppConfig.QuotaPhoneLookups,
			quota.ActionCodeSend:    config.AppConfig.QuotaCodeSends,
			quota.ActionCodeCheck:   config.AppConfig.QuotaCodeChecks,
		},
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	providerService := &provider.DefaultProviderService{
		Repo:   provRepo,
		Mailer: mailer,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	onboardingService := onboarding.NewDefaultOnboardingService(
		provRepo, verifier, stripeAccounts, photoStore, mailer, limiter,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Onboarding: handlers.NewOnboardingHandler(onboardingService),
		Provider:   handlers.NewProviderHandler(providerService),
		User:       handlers.NewUserHandler(userService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, routes.Repos{
		Provider: provRepo,
		User:     userRepo,
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
