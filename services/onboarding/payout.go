package onboarding

import (
	"context"

	"orderly/models"
	"orderly/services/payments"
	"orderly/utils"

	"go.uber.org/zap"
)

// SetupPayoutAccount creates the provider's connected payout account (if
// absent) and returns a hosted onboarding link. If the account was just
// created and either the save or the link fails, a single compensating
// delete of the new account is attempted; the caller gets the generic
// failure regardless of whether that delete succeeds.
func (s *DefaultOnboardingService) SetupPayoutAccount(ctx context.Context, providerID string) (*PayoutSetupResult, error) {
	if providerID == "" {
		return nil, ErrAuthenticationRequired
	}
	prov, err := s.getProvider(providerID)
	if err != nil {
		return nil, err
	}
	if verr := guardStep(prov.Onboarding, models.StepPayoutAccount); verr != nil {
		return nil, verr
	}

	accountID := prov.Payout.StripeAccountID
	created := false
	if accountID == "" {
		accountID, err = s.Payments.CreateAccount(ctx, prov.Profile.Email)
		if err != nil {
			return nil, vendorFailure("create-payout-account", providerID, err)
		}
		created = true

		if err := s.Repo.SavePayoutAccount(providerID, accountID); err != nil {
			utils.GetLogger().Error("onboarding: failed to save payout account",
				zap.String("providerID", providerID), zap.String("accountID", accountID), zap.Error(err))
			s.deleteOrphanAccount(ctx, providerID, accountID)
			return nil, ErrExternalService
		}
	}

	link, err := s.Payments.CreateAccountLink(ctx, accountID)
	if err != nil {
		if created {
			s.deleteOrphanAccount(ctx, providerID, accountID)
			if cerr := s.Repo.ClearPayoutAccount(providerID); cerr != nil {
				utils.GetLogger().Error("onboarding: failed to clear orphan payout account",
					zap.String("providerID", providerID), zap.Error(cerr))
			}
		}
		return nil, vendorFailure("create-account-link", providerID, err)
	}

	return &PayoutSetupResult{AccountID: accountID, OnboardingURL: link}, nil
}

// deleteOrphanAccount attempts the compensating delete of a freshly created
// account. Its outcome is logged only; the step already failed.
func (s *DefaultOnboardingService) deleteOrphanAccount(ctx context.Context, providerID, accountID string) {
	if err := s.Payments.DeleteAccount(ctx, accountID); err != nil {
		utils.GetLogger().Error("onboarding: compensating account delete failed",
			zap.String("providerID", providerID), zap.String("accountID", accountID), zap.Error(err))
		return
	}
	utils.GetLogger().Info("onboarding: compensating account delete succeeded",
		zap.String("providerID", providerID), zap.String("accountID", accountID))
}

// PayoutAccountStatus retrieves the connected account's state. Once the
// vendor reports charges enabled and details submitted, the payout step is
// marked complete.
func (s *DefaultOnboardingService) PayoutAccountStatus(ctx context.Context, providerID string) (*payments.AccountStatus, error) {
	if providerID == "" {
		return nil, ErrAuthenticationRequired
	}
	prov, err := s.getProvider(providerID)
	if err != nil {
		return nil, err
	}
	if prov.Payout.StripeAccountID == "" {
		return nil, validationf("payout account has not been set up yet")
	}

	status, err := s.Payments.RetrieveAccount(ctx, prov.Payout.StripeAccountID)
	if err != nil {
		return nil, vendorFailure("retrieve-payout-account", providerID, err)
	}

	ready := status.ChargesEnabled && status.DetailsSubmitted
	state := prov.Onboarding
	if ready && stepAllowed(state, models.StepPayoutAccount) {
		state = advance(state, models.StepPayoutAccount)
	}
	if err := s.Repo.UpdatePayoutStatus(providerID, status.ChargesEnabled, status.PayoutsEnabled, state); err != nil {
		utils.GetLogger().Error("onboarding: failed to update payout status",
			zap.String("providerID", providerID), zap.Error(err))
		return nil, ErrExternalService
	}
	return status, nil
}
