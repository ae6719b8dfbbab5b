package providerRepo

import (
	"time"

	"orderly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Each Save* method below is the single store write its onboarding step
// performs: one $set keyed by provider ID, carrying both the step's field
// and the advanced onboarding state.

func (r *MongoProviderRepo) SaveVerifiedPhone(id, phone string, state models.OnboardingState) error {
	return r.updateSet(id, bson.M{
		"profile.phoneNumber":   phone,
		"profile.phoneVerified": true,
		"onboarding":            state,
	})
}

func (r *MongoProviderRepo) SaveCategories(id string, categories []string, state models.OnboardingState) error {
	return r.updateSet(id, bson.M{
		"categories": categories,
		"onboarding": state,
	})
}

func (r *MongoProviderRepo) SaveHourlyRate(id string, rate float64, state models.OnboardingState) error {
	return r.updateSet(id, bson.M{
		"hourlyRate": rate,
		"onboarding": state,
	})
}

// SaveWorkPhotos replaces the provider's photo set wholesale; prior URLs are
// dropped, not appended to.
func (r *MongoProviderRepo) SaveWorkPhotos(id string, urls []string, state models.OnboardingState) error {
	return r.updateSet(id, bson.M{
		"workPhotoURLs": urls,
		"onboarding":    state,
	})
}

func (r *MongoProviderRepo) SavePayoutAccount(id, stripeAccountID string) error {
	return r.updateSet(id, bson.M{
		"payout.stripeAccountID": stripeAccountID,
		"payout.lastUpdated":     time.Now(),
	})
}

func (r *MongoProviderRepo) ClearPayoutAccount(id string) error {
	return r.updateSet(id, bson.M{
		"payout.stripeAccountID": "",
		"payout.chargesEnabled":  false,
		"payout.payoutsEnabled":  false,
		"payout.lastUpdated":     time.Now(),
	})
}

func (r *MongoProviderRepo) UpdatePayoutStatus(id string, chargesEnabled, payoutsEnabled bool, state models.OnboardingState) error {
	return r.updateSet(id, bson.M{
		"payout.chargesEnabled": chargesEnabled,
		"payout.payoutsEnabled": payoutsEnabled,
		"payout.lastUpdated":    time.Now(),
		"onboarding":            state,
	})
}

func (r *MongoProviderRepo) SaveTrustSafety(id string, ts models.TrustSafety, state models.OnboardingState) error {
	return r.updateSet(id, bson.M{
		"trustSafety": ts,
		"onboarding":  state,
	})
}
