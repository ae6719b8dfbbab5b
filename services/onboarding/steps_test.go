package onboarding

import (
	"context"
	"strings"
	"testing"

	"orderly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPhotos(n int) []WorkPhoto {
	photos := make([]WorkPhoto, 0, n)
	for i := 0; i < n; i++ {
		photos = append(photos, WorkPhoto{
			Filename:    "before-after.jpg",
			ContentType: "image/jpeg",
			Size:        2048,
			Reader:      strings.NewReader("jpeg bytes"),
		})
	}
	return photos
}

func TestSaveCategories(t *testing.T) {
	repo := newFakeRepo(stateAt(models.StepCategories))
	svc := newTestService(repo, &fakeVerifier{}, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, nil)

	err := svc.SaveCategories(context.Background(), "prov-1", CategoriesInput{
		Categories: []string{"closets", "garages-basements"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"closets", "garages-basements"}, repo.prov.Categories)
	assert.Equal(t, models.StepHourlyRate, repo.prov.Onboarding.CurrentStep)
	assert.Equal(t, 1, repo.categorySaves)
}

func TestSaveCategoriesRejectsUnknown(t *testing.T) {
	repo := newFakeRepo(stateAt(models.StepCategories))
	svc := newTestService(repo, &fakeVerifier{}, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, nil)

	err := svc.SaveCategories(context.Background(), "prov-1", CategoriesInput{
		Categories: []string{"closets", "chimney-sweeping"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, repo.categorySaves)
}

func TestSaveWorkPhotos(t *testing.T) {
	repo := newFakeRepo(stateAt(models.StepWorkPhotos))
	store := &fakePhotos{}
	svc := newTestService(repo, &fakeVerifier{}, &fakeAccounts{}, store, &fakeMailer{}, nil)

	urls, err := svc.SaveWorkPhotos(context.Background(), "prov-1", testPhotos(4))
	require.NoError(t, err)
	require.Len(t, urls, 4)
	assert.Equal(t, 4, store.uploads)
	assert.Equal(t, urls, repo.prov.WorkPhotoURLs)
	assert.Equal(t, models.StepPayoutAccount, repo.prov.Onboarding.CurrentStep)
}

func TestSaveWorkPhotosReplacesPriorSet(t *testing.T) {
	repo := newFakeRepo(stateAt(models.StepWorkPhotos))
	store := &fakePhotos{}
	svc := newTestService(repo, &fakeVerifier{}, &fakeAccounts{}, store, &fakeMailer{}, nil)

	first, err := svc.SaveWorkPhotos(context.Background(), "prov-1", testPhotos(5))
	require.NoError(t, err)
	require.Len(t, first, 5)

	second, err := svc.SaveWorkPhotos(context.Background(), "prov-1", testPhotos(3))
	require.NoError(t, err)
	require.Len(t, second, 3)

	// Re-running the step overwrites; the old URLs are gone.
	assert.Equal(t, second, repo.prov.WorkPhotoURLs)
	for _, url := range first {
		assert.NotContains(t, repo.prov.WorkPhotoURLs, url)
	}
}

func TestSaveWorkPhotosUploadFailure(t *testing.T) {
	repo := newFakeRepo(stateAt(models.StepWorkPhotos))
	store := &fakePhotos{fail: true}
	svc := newTestService(repo, &fakeVerifier{}, &fakeAccounts{}, store, &fakeMailer{}, nil)

	_, err := svc.SaveWorkPhotos(context.Background(), "prov-1", testPhotos(3))
	assert.ErrorIs(t, err, ErrExternalService)
	assert.NotContains(t, err.Error(), "cloudinary")
	assert.Zero(t, repo.photoSaves)
}

func TestCompleteTrustSafetyFinishesOnboarding(t *testing.T) {
	repo := newFakeRepo(stateAt(models.StepTrustSafety))
	mailer := &fakeMailer{}
	svc := newTestService(repo, &fakeVerifier{}, &fakeAccounts{}, &fakePhotos{}, mailer, nil)

	err := svc.CompleteTrustSafety(context.Background(), "prov-1", TrustSafetyInput{
		LegalName:              "Jordan Ruiz",
		BackgroundCheckConsent: true,
		GuidelinesAccepted:     true,
	})
	require.NoError(t, err)

	assert.True(t, repo.prov.Onboarding.Complete)
	assert.False(t, repo.prov.Onboarding.CompletedAt.IsZero())
	assert.Equal(t, "Jordan Ruiz", repo.prov.TrustSafety.LegalName)
	assert.True(t, repo.prov.TrustSafety.BackgroundCheckConsent)
	assert.False(t, repo.prov.TrustSafety.ConsentedAt.IsZero())

	// Completion triggers the notification email.
	assert.Equal(t, []string{"tidy@example.com"}, mailer.sent)
}

func TestCompleteTrustSafetyRequiresConsents(t *testing.T) {
	cases := []struct {
		name string
		in   TrustSafetyInput
	}{
		{"missing background consent", TrustSafetyInput{LegalName: "Jordan Ruiz", GuidelinesAccepted: true}},
		{"missing guidelines", TrustSafetyInput{LegalName: "Jordan Ruiz", BackgroundCheckConsent: true}},
		{"missing legal name", TrustSafetyInput{BackgroundCheckConsent: true, GuidelinesAccepted: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo(stateAt(models.StepTrustSafety))
			svc := newTestService(repo, &fakeVerifier{}, &fakeAccounts{}, &fakePhotos{}, &fakeMailer{}, nil)

			err := svc.CompleteTrustSafety(context.Background(), "prov-1", tc.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Zero(t, repo.trustSaves)
		})
	}
}

func TestCompleteTrustSafetyEmailFailureIsBestEffort(t *testing.T) {
	repo := newFakeRepo(stateAt(models.StepTrustSafety))
	mailer := &fakeMailer{fail: true}
	svc := newTestService(repo, &fakeVerifier{}, &fakeAccounts{}, &fakePhotos{}, mailer, nil)

	err := svc.CompleteTrustSafety(context.Background(), "prov-1", TrustSafetyInput{
		LegalName:              "Jordan Ruiz",
		BackgroundCheckConsent: true,
		GuidelinesAccepted:     true,
	})
	// The step itself still succeeds.
	require.NoError(t, err)
	assert.True(t, repo.prov.Onboarding.Complete)
}
