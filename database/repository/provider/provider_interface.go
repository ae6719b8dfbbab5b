package providerRepo

import (
	"orderly/models"
)

// ProviderRepository defines the persistence surface for providers. Every
// Save* method is a single idempotent upsert keyed by provider ID: last
// write wins, and re-running a step overwrites the prior value rather than
// appending to it.
type ProviderRepository interface {
	Create(provider *models.Provider) error
	GetByID(id string) (*models.Provider, error)
	GetByEmail(email string) (*models.Provider, error)
	Delete(id string) error
	UpdateTokenHash(id, tokenHash string) error

	SaveVerifiedPhone(id, phone string, state models.OnboardingState) error
	SaveCategories(id string, categories []string, state models.OnboardingState) error
	SaveHourlyRate(id string, rate float64, state models.OnboardingState) error
	SaveWorkPhotos(id string, urls []string, state models.OnboardingState) error
	SavePayoutAccount(id, stripeAccountID string) error
	ClearPayoutAccount(id string) error
	UpdatePayoutStatus(id string, chargesEnabled, payoutsEnabled bool, state models.OnboardingState) error
	SaveTrustSafety(id string, ts models.TrustSafety, state models.OnboardingState) error
}
