package routes

import (
	"net/http"
	"time"

	providerRepo "orderly/database/repository/provider"
	userRepo "orderly/database/repository/user"
	"orderly/handlers"
	"orderly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Repos carries the repositories the auth middleware needs.
type Repos struct {
	Provider providerRepo.ProviderRepository
	User     userRepo.UserRepository
}

// RegisterProviderRoutes registers provider account endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle, repos Repos) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.Provider.RegisterProviderHandler)
		api.POST("/login", hb.Provider.AuthenticateProviderHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware(repos.Provider))
		protected.GET("/me", hb.Provider.GetProviderHandler)
		protected.DELETE("/revoke", hb.Provider.RevokeProviderTokenHandler)
		protected.DELETE("/delete", hb.Provider.DeleteProviderHandler)
	}
}

// RegisterOnboardingRoutes registers the onboarding step pipeline. Every
// step requires an authenticated provider.
func RegisterOnboardingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, repos Repos) {
	api := r.Group("/api/onboarding")
	api.Use(middleware.JWTAuthProviderMiddleware(repos.Provider))
	{
		api.GET("/progress", hb.Onboarding.ProgressHandler)

		api.POST("/phone/lookup", hb.Onboarding.LookupPhoneHandler)
		api.POST("/phone/start", hb.Onboarding.StartPhoneVerificationHandler)
		api.POST("/phone/check", hb.Onboarding.CheckPhoneVerificationHandler)

		api.PUT("/categories", hb.Onboarding.SaveCategoriesHandler)
		api.PUT("/rate", hb.Onboarding.SaveHourlyRateHandler)
		api.PUT("/photos", hb.Onboarding.SaveWorkPhotosHandler)

		api.POST("/payout", hb.Onboarding.SetupPayoutAccountHandler)
		api.GET("/payout/status", hb.Onboarding.PayoutAccountStatusHandler)

		api.POST("/trust-safety", hb.Onboarding.CompleteTrustSafetyHandler)
	}
}

// RegisterUserRoutes registers client account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, repos Repos) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(repos.User))
		protected.GET("/me", hb.User.GetUserHandler)
		protected.DELETE("/delete", hb.User.DeleteUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Orderly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, repos Repos) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProviderRoutes(r, hb, repos)
	RegisterOnboardingRoutes(r, hb, repos)
	RegisterUserRoutes(r, hb, repos)
	RegisterHealthRoute(r)
}
