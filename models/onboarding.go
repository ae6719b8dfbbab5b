package models

// Onboarding step identifiers, in pipeline order.
const (
	StepPhoneVerification = "phone-verification"
	StepCategories        = "categories"
	StepHourlyRate        = "hourly-rate"
	StepWorkPhotos        = "work-photos"
	StepPayoutAccount     = "payout-account"
	StepTrustSafety       = "trust-safety"
)

// StepOrder is the fixed, total order of the onboarding pipeline.
var StepOrder = []string{
	StepPhoneVerification,
	StepCategories,
	StepHourlyRate,
	StepWorkPhotos,
	StepPayoutAccount,
	StepTrustSafety,
}

// StepNames maps step IDs to their display names.
var StepNames = map[string]string{
	StepPhoneVerification: "Verify your phone",
	StepCategories:        "Choose your services",
	StepHourlyRate:        "Set your hourly rate",
	StepWorkPhotos:        "Show your work",
	StepPayoutAccount:     "Set up payouts",
	StepTrustSafety:       "Trust & safety",
}

// Step statuses. At most one step is "current" at a time.
const (
	StepStatusComplete = "complete"
	StepStatusCurrent  = "current"
	StepStatusUpcoming = "upcoming"
)

// OnboardingStep is the step descriptor rendered to callers.
type OnboardingStep struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Validation bounds for the individual steps.
const (
	MinHourlyRate = 25.0
	MaxHourlyRate = 250.0

	MinWorkPhotos     = 3
	MaxWorkPhotos     = 8
	MaxWorkPhotoBytes = 10 << 20

	MinCategories = 1
	MaxCategories = 5
)

// AllowedPhotoMIMETypes lists the accepted work-photo content types.
var AllowedPhotoMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ServiceCategories is the catalog of home-organizing services a provider
// may offer. Category selections are validated against this set.
var ServiceCategories = []string{
	"closets",
	"kitchens-pantries",
	"garages-basements",
	"home-offices",
	"paperwork-filing",
	"moving-prep",
	"unpacking",
	"kids-spaces",
	"downsizing",
	"digital-declutter",
}

// IsServiceCategory reports whether id names a catalog category.
func IsServiceCategory(id string) bool {
	for _, c := range ServiceCategories {
		if c == id {
			return true
		}
	}
	return false
}

// StepIndex returns the position of a step in the pipeline, or -1 if the
// ID is not a known step.
func StepIndex(id string) int {
	for i, s := range StepOrder {
		if s == id {
			return i
		}
	}
	return -1
}
