package onboarding

import (
	"context"
	"time"

	"orderly/models"
	"orderly/utils"

	"go.uber.org/zap"
)

// SaveCategories persists the provider's selected service categories.
func (s *DefaultOnboardingService) SaveCategories(ctx context.Context, providerID string, in CategoriesInput) error {
	if providerID == "" {
		return ErrAuthenticationRequired
	}
	if verr := s.check(in); verr != nil {
		return verr
	}
	if verr := validateCategories(in.Categories); verr != nil {
		return verr
	}
	prov, err := s.getProvider(providerID)
	if err != nil {
		return err
	}
	if verr := guardStep(prov.Onboarding, models.StepCategories); verr != nil {
		return verr
	}

	state := advance(prov.Onboarding, models.StepCategories)
	if err := s.Repo.SaveCategories(providerID, in.Categories, state); err != nil {
		utils.GetLogger().Error("onboarding: failed to save categories",
			zap.String("providerID", providerID), zap.Error(err))
		return ErrExternalService
	}
	return nil
}

// SaveHourlyRate persists the provider's hourly rate. Validation happens
// before any store write; a stored rate always equals the submitted input.
func (s *DefaultOnboardingService) SaveHourlyRate(ctx context.Context, providerID string, in HourlyRateInput) error {
	if providerID == "" {
		return ErrAuthenticationRequired
	}
	if verr := validateHourlyRate(in.HourlyRate); verr != nil {
		return verr
	}
	prov, err := s.getProvider(providerID)
	if err != nil {
		return err
	}
	if verr := guardStep(prov.Onboarding, models.StepHourlyRate); verr != nil {
		return verr
	}

	state := advance(prov.Onboarding, models.StepHourlyRate)
	if err := s.Repo.SaveHourlyRate(providerID, in.HourlyRate, state); err != nil {
		utils.GetLogger().Error("onboarding: failed to save hourly rate",
			zap.String("providerID", providerID), zap.Error(err))
		return ErrExternalService
	}
	return nil
}

// SaveWorkPhotos uploads the submitted photos and replaces the provider's
// stored photo set with exactly the uploaded URLs. Re-running the step
// overwrites the prior set; nothing is appended.
func (s *DefaultOnboardingService) SaveWorkPhotos(ctx context.Context, providerID string, photos []WorkPhoto) ([]string, error) {
	if providerID == "" {
		return nil, ErrAuthenticationRequired
	}
	if verr := validateWorkPhotos(photos); verr != nil {
		return nil, verr
	}
	prov, err := s.getProvider(providerID)
	if err != nil {
		return nil, err
	}
	if verr := guardStep(prov.Onboarding, models.StepWorkPhotos); verr != nil {
		return nil, verr
	}

	urls := make([]string, 0, len(photos))
	for _, p := range photos {
		url, err := s.Photos.UploadWorkPhoto(ctx, p.Reader, providerID)
		if err != nil {
			return nil, vendorFailure("upload-work-photo", providerID, err)
		}
		urls = append(urls, url)
	}

	state := advance(prov.Onboarding, models.StepWorkPhotos)
	if err := s.Repo.SaveWorkPhotos(providerID, urls, state); err != nil {
		utils.GetLogger().Error("onboarding: failed to save work photos",
			zap.String("providerID", providerID), zap.Error(err))
		return nil, ErrExternalService
	}
	return urls, nil
}

// CompleteTrustSafety records the provider's legal name and consents,
// finishing onboarding. The completion email is best-effort; a send failure
// is logged and never fails the step.
func (s *DefaultOnboardingService) CompleteTrustSafety(ctx context.Context, providerID string, in TrustSafetyInput) error {
	if providerID == "" {
		return ErrAuthenticationRequired
	}
	if verr := s.check(in); verr != nil {
		return verr
	}
	if !in.BackgroundCheckConsent {
		return validationf("background check consent is required")
	}
	if !in.GuidelinesAccepted {
		return validationf("community guidelines must be accepted")
	}
	prov, err := s.getProvider(providerID)
	if err != nil {
		return err
	}
	if verr := guardStep(prov.Onboarding, models.StepTrustSafety); verr != nil {
		return verr
	}

	ts := models.TrustSafety{
		LegalName:              in.LegalName,
		BackgroundCheckConsent: in.BackgroundCheckConsent,
		GuidelinesAccepted:     in.GuidelinesAccepted,
		ConsentedAt:            time.Now(),
	}
	state := advance(prov.Onboarding, models.StepTrustSafety)
	if err := s.Repo.SaveTrustSafety(providerID, ts, state); err != nil {
		utils.GetLogger().Error("onboarding: failed to save trust & safety",
			zap.String("providerID", providerID), zap.Error(err))
		return ErrExternalService
	}

	if state.Complete && s.Mailer != nil {
		subject := "You're live on Orderly"
		html := onboardingCompleteEmail(prov.Profile.ProviderName)
		if err := s.Mailer.Send(ctx, prov.Profile.Email, subject, html); err != nil {
			utils.GetLogger().Warn("onboarding: completion email failed",
				zap.String("providerID", providerID), zap.Error(err))
		}
	}
	return nil
}
