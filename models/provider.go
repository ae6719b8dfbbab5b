package models

import (
	"time"
)

// Profile carries the provider-facing identity fields.
type Profile struct {
	ProviderName  string `bson:"providerName" json:"providerName,omitempty"`
	Email         string `bson:"email" json:"email,omitempty"`
	PhoneNumber   string `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	PhoneVerified bool   `bson:"phoneVerified" json:"phoneVerified"`
	ProfileImage  string `bson:"profileImage" json:"profileImage,omitempty"`
	City          string `bson:"city" json:"city,omitempty"`
}

type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}

// PayoutDetails holds the Stripe Connect linkage for the provider.
type PayoutDetails struct {
	StripeAccountID string    `bson:"stripeAccountID,omitempty" json:"stripeAccountID,omitempty"`
	ChargesEnabled  bool      `bson:"chargesEnabled" json:"chargesEnabled"`
	PayoutsEnabled  bool      `bson:"payoutsEnabled" json:"payoutsEnabled"`
	LastUpdated     time.Time `bson:"lastUpdated" json:"lastUpdated,omitzero"`
}

// TrustSafety records the provider's trust & safety acknowledgements.
type TrustSafety struct {
	LegalName              string    `bson:"legalName" json:"legalName,omitempty"`
	BackgroundCheckConsent bool      `bson:"backgroundCheckConsent" json:"backgroundCheckConsent"`
	GuidelinesAccepted     bool      `bson:"guidelinesAccepted" json:"guidelinesAccepted"`
	ConsentedAt            time.Time `bson:"consentedAt" json:"consentedAt,omitzero"`
}

// OnboardingState is the persisted progress of a provider through the
// onboarding pipeline. CurrentStep names the step the provider must complete
// next; CompletedSteps accumulates in pipeline order.
type OnboardingState struct {
	CurrentStep    string    `bson:"currentStep" json:"currentStep"`
	CompletedSteps []string  `bson:"completedSteps" json:"completedSteps,omitempty"`
	Complete       bool      `bson:"complete" json:"complete"`
	CompletedAt    time.Time `bson:"completedAt,omitempty" json:"completedAt,omitzero"`
}

type Provider struct {
	ID            string          `bson:"id" json:"id,omitempty"`
	Profile       Profile         `bson:"profile" json:"profile"`
	Security      Security        `bson:"security" json:"security,omitzero"`
	Onboarding    OnboardingState `bson:"onboarding" json:"onboarding"`
	Categories    []string        `bson:"categories" json:"categories,omitempty"`
	HourlyRate    float64         `bson:"hourlyRate" json:"hourlyRate,omitempty"`
	WorkPhotoURLs []string        `bson:"workPhotoURLs" json:"workPhotoURLs,omitempty"`
	Payout        PayoutDetails   `bson:"payout" json:"payout,omitzero"`
	TrustSafety   TrustSafety     `bson:"trustSafety" json:"trustSafety,omitzero"`
	Rating        float64         `bson:"rating" json:"rating,omitempty"`
	CompletedJobs int             `bson:"completedJobs" json:"completedJobs,omitempty"`
	CreatedAt     time.Time       `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt     time.Time       `bson:"updatedAt" json:"updatedAt,omitzero"`
}
