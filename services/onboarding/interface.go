package onboarding

import (
	"context"
	"io"

	providerRepo "orderly/database/repository/provider"
	"orderly/models"
	"orderly/services/email"
	"orderly/services/payments"
	"orderly/services/quota"
	"orderly/services/sms"
	"orderly/services/storage"

	"github.com/go-playground/validator/v10"
)

// WorkPhoto is one uploaded file in the work-photos step.
type WorkPhoto struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// PhoneLookupResult reports the line type of a looked-up number.
type PhoneLookupResult struct {
	PhoneNumber string `json:"phoneNumber"`
	LineType    string `json:"lineType"`
}

// PayoutSetupResult carries the connected account and its hosted
// onboarding link.
type PayoutSetupResult struct {
	AccountID     string `json:"accountId"`
	OnboardingURL string `json:"onboardingUrl"`
}

// Service is the onboarding step pipeline. Every method follows the same
// four-stage contract: authenticate, validate, execute exactly one store
// write or vendor call, normalize. Failures are terminal per attempt;
// nothing is retried automatically.
type Service interface {
	LookupPhone(ctx context.Context, providerID string, in PhoneInput) (*PhoneLookupResult, error)
	StartPhoneVerification(ctx context.Context, providerID string, in PhoneInput) error
	CheckPhoneVerification(ctx context.Context, providerID string, in CodeCheckInput) error
	SaveCategories(ctx context.Context, providerID string, in CategoriesInput) error
	SaveHourlyRate(ctx context.Context, providerID string, in HourlyRateInput) error
	SaveWorkPhotos(ctx context.Context, providerID string, photos []WorkPhoto) ([]string, error)
	SetupPayoutAccount(ctx context.Context, providerID string) (*PayoutSetupResult, error)
	PayoutAccountStatus(ctx context.Context, providerID string) (*payments.AccountStatus, error)
	CompleteTrustSafety(ctx context.Context, providerID string, in TrustSafetyInput) error
	Progress(ctx context.Context, providerID string) ([]models.OnboardingStep, error)
}

// DefaultOnboardingService implements Service against the provider
// repository and the vendor adapters. All collaborators are constructed
// once at startup and shared read-only across requests.
type DefaultOnboardingService struct {
	Repo     providerRepo.ProviderRepository
	SMS      sms.Verifier
	Payments payments.Accounts
	Photos   storage.PhotoStore
	Mailer   email.Mailer
	Quota    quota.Limiter

	validate *validator.Validate
}

// NewDefaultOnboardingService wires the pipeline with its collaborators.
func NewDefaultOnboardingService(
	repo providerRepo.ProviderRepository,
	verifier sms.Verifier,
	accounts payments.Accounts,
	photos storage.PhotoStore,
	mailer email.Mailer,
	limiter quota.Limiter,
) *DefaultOnboardingService {
	return &DefaultOnboardingService{
		Repo:     repo,
		SMS:      verifier,
		Payments: accounts,
		Photos:   photos,
		Mailer:   mailer,
		Quota:    limiter,
		validate: newValidate(),
	}
}
