package handlers

import (
	"net/http"

	"orderly/middleware"
	"orderly/services/onboarding"
	"orderly/utils"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler exposes the onboarding step pipeline over HTTP. Each
// handler resolves the caller, delegates to the service and writes the
// envelope.
type OnboardingHandler struct {
	Service onboarding.Service
}

// NewOnboardingHandler builds the handler around the pipeline service.
func NewOnboardingHandler(svc onboarding.Service) *OnboardingHandler {
	return &OnboardingHandler{Service: svc}
}

// LookupPhoneHandler handles POST /onboarding/phone/lookup.
func (h *OnboardingHandler) LookupPhoneHandler(c *gin.Context) {
	var in onboarding.PhoneInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}
	result, err := h.Service.LookupPhone(c.Request.Context(), middleware.CallerProviderID(c), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(result))
}

// StartPhoneVerificationHandler handles POST /onboarding/phone/start.
func (h *OnboardingHandler) StartPhoneVerificationHandler(c *gin.Context) {
	var in onboarding.PhoneInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.Service.StartPhoneVerification(c.Request.Context(), middleware.CallerProviderID(c), in); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"sent": true}))
}

// CheckPhoneVerificationHandler handles POST /onboarding/phone/check.
func (h *OnboardingHandler) CheckPhoneVerificationHandler(c *gin.Context) {
	var in onboarding.CodeCheckInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.Service.CheckPhoneVerification(c.Request.Context(), middleware.CallerProviderID(c), in); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"phoneVerified": true}))
}

// SaveCategoriesHandler handles PUT /onboarding/categories.
func (h *OnboardingHandler) SaveCategoriesHandler(c *gin.Context) {
	var in onboarding.CategoriesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.Service.SaveCategories(c.Request.Context(), middleware.CallerProviderID(c), in); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"categories": in.Categories}))
}

// SaveHourlyRateHandler handles PUT /onboarding/rate.
func (h *OnboardingHandler) SaveHourlyRateHandler(c *gin.Context) {
	var in onboarding.HourlyRateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.Service.SaveHourlyRate(c.Request.Context(), middleware.CallerProviderID(c), in); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"hourlyRate": in.HourlyRate}))
}

// SaveWorkPhotosHandler handles PUT /onboarding/photos. Photos arrive as a
// multipart form under the "photos" field.
func (h *OnboardingHandler) SaveWorkPhotosHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		writeBindError(c, err)
		return
	}
	files := form.File["photos"]

	photos := make([]onboarding.WorkPhoto, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			writeBindError(c, err)
			return
		}
		defer f.Close()
		photos = append(photos, onboarding.WorkPhoto{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Reader:      f,
		})
	}

	urls, err := h.Service.SaveWorkPhotos(c.Request.Context(), middleware.CallerProviderID(c), photos)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"workPhotoURLs": urls}))
}

// SetupPayoutAccountHandler handles POST /onboarding/payout.
func (h *OnboardingHandler) SetupPayoutAccountHandler(c *gin.Context) {
	result, err := h.Service.SetupPayoutAccount(c.Request.Context(), middleware.CallerProviderID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(result))
}

// PayoutAccountStatusHandler handles GET /onboarding/payout/status.
func (h *OnboardingHandler) PayoutAccountStatusHandler(c *gin.Context) {
	status, err := h.Service.PayoutAccountStatus(c.Request.Context(), middleware.CallerProviderID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(status))
}

// CompleteTrustSafetyHandler handles POST /onboarding/trust-safety.
func (h *OnboardingHandler) CompleteTrustSafetyHandler(c *gin.Context) {
	var in onboarding.TrustSafetyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.Service.CompleteTrustSafety(c.Request.Context(), middleware.CallerProviderID(c), in); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"onboardingComplete": true}))
}

// ProgressHandler handles GET /onboarding/progress.
func (h *OnboardingHandler) ProgressHandler(c *gin.Context) {
	steps, err := h.Service.Progress(c.Request.Context(), middleware.CallerProviderID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Success(gin.H{"steps": steps}))
}
