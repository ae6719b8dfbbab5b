package onboarding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	providerRepo "orderly/database/repository/provider"
	"orderly/models"
	"orderly/services/payments"
	"orderly/services/quota"
)

// fakeRepo is an in-memory ProviderRepository holding a single provider.
type fakeRepo struct {
	prov *models.Provider

	saveErr        error // returned by every Save* when set
	phoneSaves     int
	rateSaves      int
	categorySaves  int
	photoSaves     int
	payoutSaves    int
	payoutClears   int
	trustSaves     int
	payoutStatuses int
}

func newFakeRepo(state models.OnboardingState) *fakeRepo {
	return &fakeRepo{prov: &models.Provider{
		ID: "prov-1",
		Profile: models.Profile{
			ProviderName: "Tidy Casa",
			Email:        "tidy@example.com",
		},
		Onboarding: state,
	}}
}

func (r *fakeRepo) Create(p *models.Provider) error { r.prov = p; return nil }

func (r *fakeRepo) GetByID(id string) (*models.Provider, error) {
	if r.prov == nil || r.prov.ID != id {
		return nil, providerRepo.ErrNotFound
	}
	cp := *r.prov
	return &cp, nil
}

func (r *fakeRepo) GetByEmail(email string) (*models.Provider, error) {
	if r.prov == nil || r.prov.Profile.Email != email {
		return nil, providerRepo.ErrNotFound
	}
	cp := *r.prov
	return &cp, nil
}

func (r *fakeRepo) Delete(id string) error                { r.prov = nil; return nil }
func (r *fakeRepo) UpdateTokenHash(id, hash string) error { return nil }

func (r *fakeRepo) SaveVerifiedPhone(id, phone string, state models.OnboardingState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.phoneSaves++
	r.prov.Profile.PhoneNumber = phone
	r.prov.Profile.PhoneVerified = true
	r.prov.Onboarding = state
	return nil
}

func (r *fakeRepo) SaveCategories(id string, categories []string, state models.OnboardingState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.categorySaves++
	r.prov.Categories = categories
	r.prov.Onboarding = state
	return nil
}

func (r *fakeRepo) SaveHourlyRate(id string, rate float64, state models.OnboardingState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.rateSaves++
	r.prov.HourlyRate = rate
	r.prov.Onboarding = state
	return nil
}

func (r *fakeRepo) SaveWorkPhotos(id string, urls []string, state models.OnboardingState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.photoSaves++
	r.prov.WorkPhotoURLs = urls
	r.prov.Onboarding = state
	return nil
}

func (r *fakeRepo) SavePayoutAccount(id, accountID string) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.payoutSaves++
	r.prov.Payout.StripeAccountID = accountID
	return nil
}

func (r *fakeRepo) ClearPayoutAccount(id string) error {
	r.payoutClears++
	r.prov.Payout = models.PayoutDetails{}
	return nil
}

func (r *fakeRepo) UpdatePayoutStatus(id string, charges, payouts bool, state models.OnboardingState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.payoutStatuses++
	r.prov.Payout.ChargesEnabled = charges
	r.prov.Payout.PayoutsEnabled = payouts
	r.prov.Onboarding = state
	return nil
}

func (r *fakeRepo) SaveTrustSafety(id string, ts models.TrustSafety, state models.OnboardingState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.trustSaves++
	r.prov.TrustSafety = ts
	r.prov.Onboarding = state
	return nil
}

// fakeVerifier scripts the SMS vendor.
type fakeVerifier struct {
	lineType string
	approved bool
	fail     bool

	lookups int
	sends   int
	checks  int
}

func (v *fakeVerifier) SendCode(ctx context.Context, number string) error {
	v.sends++
	if v.fail {
		return errors.New("twilio: boom")
	}
	return nil
}

func (v *fakeVerifier) CheckCode(ctx context.Context, code, number string) (bool, error) {
	v.checks++
	if v.fail {
		return false, errors.New("twilio: boom")
	}
	return v.approved, nil
}

func (v *fakeVerifier) LookupLineType(ctx context.Context, number string) (string, error) {
	v.lookups++
	if v.fail {
		return "", errors.New("twilio: boom")
	}
	return v.lineType, nil
}

// fakeAccounts scripts the payment vendor.
type fakeAccounts struct {
	createErr   error
	linkErr     error
	retrieveErr error
	deleteErr   error
	status      payments.AccountStatus

	creates   int
	links     int
	retrieves int
	deletes   int
}

func (a *fakeAccounts) CreateAccount(ctx context.Context, email string) (string, error) {
	a.creates++
	if a.createErr != nil {
		return "", a.createErr
	}
	return "acct_test", nil
}

func (a *fakeAccounts) CreateAccountLink(ctx context.Context, accountID string) (string, error) {
	a.links++
	if a.linkErr != nil {
		return "", a.linkErr
	}
	return "https://connect.example.com/setup/" + accountID, nil
}

func (a *fakeAccounts) RetrieveAccount(ctx context.Context, accountID string) (*payments.AccountStatus, error) {
	a.retrieves++
	if a.retrieveErr != nil {
		return nil, a.retrieveErr
	}
	st := a.status
	st.AccountID = accountID
	return &st, nil
}

func (a *fakeAccounts) DeleteAccount(ctx context.Context, accountID string) error {
	a.deletes++
	return a.deleteErr
}

// fakePhotos numbers uploaded photos deterministically.
type fakePhotos struct {
	uploads int
	fail    bool
}

func (p *fakePhotos) UploadWorkPhoto(ctx context.Context, file io.Reader, providerID string) (string, error) {
	p.uploads++
	if p.fail {
		return "", errors.New("cloudinary: boom")
	}
	return fmt.Sprintf("https://photos.example.com/%s/%d.jpg", providerID, p.uploads), nil
}

func (p *fakePhotos) DeletePhoto(ctx context.Context, publicID string) error { return nil }

// fakeMailer records sends.
type fakeMailer struct {
	sent []string
	fail bool
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, html string) error {
	if m.fail {
		return errors.New("resend: boom")
	}
	m.sent = append(m.sent, to)
	return nil
}

// quota limiters for tests.
type allowAllQuota struct{ calls int }

func (q *allowAllQuota) Allow(ctx context.Context, actionKind, callerID string) (quota.Decision, error) {
	q.calls++
	return quota.Decision{Allowed: true, Remaining: 1}, nil
}

type denyAllQuota struct{}

func (denyAllQuota) Allow(ctx context.Context, actionKind, callerID string) (quota.Decision, error) {
	return quota.Decision{Allowed: false, RetryAfter: 90 * time.Second}, nil
}

func newTestService(repo *fakeRepo, verifier *fakeVerifier, accounts *fakeAccounts, photos *fakePhotos, mailer *fakeMailer, limiter quota.Limiter) *DefaultOnboardingService {
	if limiter == nil {
		limiter = &allowAllQuota{}
	}
	return NewDefaultOnboardingService(repo, verifier, accounts, photos, mailer, limiter)
}

func stateAt(stepID string) models.OnboardingState {
	idx := models.StepIndex(stepID)
	st := models.OnboardingState{CurrentStep: stepID}
	st.CompletedSteps = append(st.CompletedSteps, models.StepOrder[:idx]...)
	return st
}
