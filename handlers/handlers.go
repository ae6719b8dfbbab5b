package handlers

import (
	"errors"
	"net/http"

	"orderly/services/onboarding"
	"orderly/services/provider"
	"orderly/services/user"
	"orderly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle collects the handler entry points for route registration.
type HandlerBundle struct {
	Onboarding *OnboardingHandler
	Provider   *ProviderHandler
	User       *UserHandler
}

// writeServiceError maps a service error onto the envelope and HTTP status.
// Unrecognized errors are logged in full and surfaced as a generic Unknown.
func writeServiceError(c *gin.Context, err error) {
	var verr *onboarding.ValidationError
	var rerr *onboarding.RateLimitedError

	switch {
	case errors.Is(err, onboarding.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, utils.Failure(utils.CodeAuthenticationRequired, "Authentication required"))
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, utils.Failure(utils.CodeValidationFailed, verr.Error()))
	case errors.As(err, &rerr):
		result := utils.Failure(utils.CodeRateLimited, "Too many attempts. Please try again later.")
		result.Error.RetryAfterSeconds = rerr.RetryAfterSeconds()
		c.JSON(http.StatusTooManyRequests, result)
	case errors.Is(err, onboarding.ErrNotFound), errors.Is(err, provider.ErrNotFound), errors.Is(err, user.ErrNotFound):
		c.JSON(http.StatusNotFound, utils.Failure(utils.CodeNotFound, "Account not found"))
	case errors.Is(err, onboarding.ErrExternalService):
		c.JSON(http.StatusServiceUnavailable, utils.Failure(utils.CodeExternalService, onboarding.ErrExternalService.Error()))
	case errors.Is(err, provider.ErrEmailTaken), errors.Is(err, user.ErrEmailTaken):
		c.JSON(http.StatusConflict, utils.Failure(utils.CodeValidationFailed, err.Error()))
	case errors.Is(err, provider.ErrInvalidCredentials), errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, utils.Failure(utils.CodeAuthenticationRequired, err.Error()))
	default:
		utils.GetLogger().Error("unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.Failure(utils.CodeUnknown, "Something went wrong. Please try again."))
	}
}

// writeBindError surfaces a malformed request body as a validation failure.
func writeBindError(c *gin.Context, err error) {
	utils.GetLogger().Debug("request bind failed", zap.Error(err))
	c.JSON(http.StatusBadRequest, utils.Failure(utils.CodeValidationFailed, "Invalid request body"))
}
