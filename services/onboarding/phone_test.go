package onboarding

import (
	"context"
	"testing"

	"orderly/models"
	"orderly/services/sms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "+15551234567"

func TestLookupPhone(t *testing.T) {
	repo := newFakeRepo(NewState())
	verifier := &fakeVerifier{lineType: "mobile"}
	svc := newTestService(repo, verifier, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, nil)

	result, err := svc.LookupPhone(context.Background(), "prov-1", PhoneInput{PhoneNumber: testPhone})
	require.NoError(t, err)
	assert.Equal(t, testPhone, result.PhoneNumber)
	assert.Equal(t, "mobile", result.LineType)
	assert.Equal(t, 1, verifier.lookups)
}

func TestLookupPhoneRejectsVoIP(t *testing.T) {
	repo := newFakeRepo(NewState())
	verifier := &fakeVerifier{lineType: sms.LineTypeVoIP}
	svc := newTestService(repo, verifier, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, nil)

	_, err := svc.LookupPhone(context.Background(), "prov-1", PhoneInput{PhoneNumber: testPhone})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "VoIP")
}

func TestPhoneStepsRequireAuthentication(t *testing.T) {
	repo := newFakeRepo(NewState())
	verifier := &fakeVerifier{lineType: "mobile", approved: true}
	quota := &allowAllQuota{}
	svc := newTestService(repo, verifier, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, quota)

	_, err := svc.LookupPhone(context.Background(), "", PhoneInput{PhoneNumber: testPhone})
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	err = svc.StartPhoneVerification(context.Background(), "", PhoneInput{PhoneNumber: testPhone})
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	err = svc.CheckPhoneVerification(context.Background(), "", CodeCheckInput{PhoneNumber: testPhone, Code: "123456"})
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	// Anonymous callers never consume quota or reach the vendor.
	assert.Zero(t, quota.calls)
	assert.Zero(t, verifier.lookups+verifier.sends+verifier.checks)
}

func TestPhoneStepsRateLimited(t *testing.T) {
	repo := newFakeRepo(NewState())
	verifier := &fakeVerifier{lineType: "mobile", approved: true}
	svc := newTestService(repo, verifier, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, denyAllQuota{})

	_, err := svc.LookupPhone(context.Background(), "prov-1", PhoneInput{PhoneNumber: testPhone})
	var rle *RateLimitedError
	require.ErrorAs(t, err, &rle)
	assert.Positive(t, rle.RetryAfterSeconds())

	err = svc.StartPhoneVerification(context.Background(), "prov-1", PhoneInput{PhoneNumber: testPhone})
	require.ErrorAs(t, err, &rle)

	err = svc.CheckPhoneVerification(context.Background(), "prov-1", CodeCheckInput{PhoneNumber: testPhone, Code: "123456"})
	require.ErrorAs(t, err, &rle)

	// An exhausted quota means the vendor is never called.
	assert.Zero(t, verifier.lookups+verifier.sends+verifier.checks)
	assert.Zero(t, repo.phoneSaves)
}

func TestStartPhoneVerification(t *testing.T) {
	repo := newFakeRepo(NewState())
	verifier := &fakeVerifier{}
	svc := newTestService(repo, verifier, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, nil)

	err := svc.StartPhoneVerification(context.Background(), "prov-1", PhoneInput{PhoneNumber: testPhone})
	require.NoError(t, err)
	assert.Equal(t, 1, verifier.sends)
	// Sending a code does not advance the pipeline.
	assert.Equal(t, models.StepPhoneVerification, repo.prov.Onboarding.CurrentStep)
}

func TestCheckPhoneVerificationApproved(t *testing.T) {
	repo := newFakeRepo(NewState())
	verifier := &fakeVerifier{approved: true}
	svc := newTestService(repo, verifier, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, nil)

	err := svc.CheckPhoneVerification(context.Background(), "prov-1", CodeCheckInput{PhoneNumber: testPhone, Code: "123456"})
	require.NoError(t, err)

	assert.Equal(t, testPhone, repo.prov.Profile.PhoneNumber)
	assert.True(t, repo.prov.Profile.PhoneVerified)
	assert.Equal(t, models.StepCategories, repo.prov.Onboarding.CurrentStep)
	assert.Equal(t, []string{models.StepPhoneVerification}, repo.prov.Onboarding.CompletedSteps)
	assert.Equal(t, 1, repo.phoneSaves)
}

func TestCheckPhoneVerificationWrongCode(t *testing.T) {
	repo := newFakeRepo(NewState())
	verifier := &fakeVerifier{approved: false}
	svc := newTestService(repo, verifier, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, nil)

	err := svc.CheckPhoneVerification(context.Background(), "prov-1", CodeCheckInput{PhoneNumber: testPhone, Code: "000000"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// A rejected code must not persist anything or advance the pipeline.
	assert.Zero(t, repo.phoneSaves)
	assert.Equal(t, models.StepPhoneVerification, repo.prov.Onboarding.CurrentStep)
}

func TestPhoneVendorFailureIsGeneric(t *testing.T) {
	repo := newFakeRepo(NewState())
	verifier := &fakeVerifier{fail: true}
	svc := newTestService(repo, verifier, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, nil)

	_, err := svc.LookupPhone(context.Background(), "prov-1", PhoneInput{PhoneNumber: testPhone})
	assert.ErrorIs(t, err, ErrExternalService)
	// The raw vendor error text must not leak to the caller.
	assert.NotContains(t, err.Error(), "twilio")

	err = svc.StartPhoneVerification(context.Background(), "prov-1", PhoneInput{PhoneNumber: testPhone})
	assert.ErrorIs(t, err, ErrExternalService)

	err = svc.CheckPhoneVerification(context.Background(), "prov-1", CodeCheckInput{PhoneNumber: testPhone, Code: "123456"})
	assert.ErrorIs(t, err, ErrExternalService)
	assert.Zero(t, repo.phoneSaves)
}

func TestCheckPhoneVerificationIsRerunnable(t *testing.T) {
	// Phone step already completed; re-running it again succeeds and leaves
	// the pipeline where it was.
	st := stateAt(models.StepCategories)
	repo := newFakeRepo(st)
	verifier := &fakeVerifier{approved: true}
	svc := newTestService(repo, verifier, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, nil)

	err := svc.CheckPhoneVerification(context.Background(), "prov-1", CodeCheckInput{PhoneNumber: "+15559876543", Code: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "+15559876543", repo.prov.Profile.PhoneNumber)
	assert.Equal(t, models.StepCategories, repo.prov.Onboarding.CurrentStep)
}
