package onboarding

import (
	"context"
	"errors"
	"fmt"

	providerRepo "orderly/database/repository/provider"
	"orderly/models"
	"orderly/utils"

	"go.uber.org/zap"
)

// getProvider fetches the caller's provider record, translating a missing
// record into the taxonomy.
func (s *DefaultOnboardingService) getProvider(providerID string) (*models.Provider, error) {
	prov, err := s.Repo.GetByID(providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		utils.GetLogger().Error("onboarding: failed to load provider",
			zap.String("providerID", providerID), zap.Error(err))
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	return prov, nil
}

// guardStep rejects out-of-order step execution. Completed steps may be
// re-run; the step after the current one may not be reached by skipping.
func guardStep(state models.OnboardingState, stepID string) *ValidationError {
	if stepAllowed(state, stepID) {
		return nil
	}
	return validationf("complete the %q step first", state.CurrentStep)
}

// checkQuota consults the attempt quota before a vendor call. Exhausted
// quotas surface as RateLimitedError and the vendor is never called.
func (s *DefaultOnboardingService) checkQuota(ctx context.Context, actionKind, providerID string) error {
	decision, err := s.Quota.Allow(ctx, actionKind, providerID)
	if err != nil {
		utils.GetLogger().Error("onboarding: quota check failed",
			zap.String("action", actionKind), zap.String("providerID", providerID), zap.Error(err))
		return ErrExternalService
	}
	if !decision.Allowed {
		return &RateLimitedError{RetryAfter: decision.RetryAfter}
	}
	return nil
}

// vendorFailure logs the raw vendor error server-side and returns the
// generic surface. Vendor error text never reaches the caller.
func vendorFailure(op string, providerID string, err error) error {
	utils.GetLogger().Error("onboarding: vendor call failed",
		zap.String("op", op), zap.String("providerID", providerID), zap.Error(err))
	return ErrExternalService
}
