package onboarding

import (
	"context"

	"orderly/models"
	"orderly/services/quota"
	"orderly/services/sms"
	"orderly/utils"

	"go.uber.org/zap"
)

// LookupPhone checks the line type of the number before a code is sent.
// VoIP numbers are rejected; verification codes would be deliverable but
// the trust signal is too weak for a marketplace provider.
func (s *DefaultOnboardingService) LookupPhone(ctx context.Context, providerID string, in PhoneInput) (*PhoneLookupResult, error) {
	if providerID == "" {
		return nil, ErrAuthenticationRequired
	}
	if verr := s.check(in); verr != nil {
		return nil, verr
	}
	prov, err := s.getProvider(providerID)
	if err != nil {
		return nil, err
	}
	if verr := guardStep(prov.Onboarding, models.StepPhoneVerification); verr != nil {
		return nil, verr
	}
	if err := s.checkQuota(ctx, quota.ActionPhoneLookup, providerID); err != nil {
		return nil, err
	}

	lineType, err := s.SMS.LookupLineType(ctx, in.PhoneNumber)
	if err != nil {
		return nil, vendorFailure("lookup-line-type", providerID, err)
	}
	if lineType == sms.LineTypeVoIP {
		return nil, validationf("VoIP numbers are not accepted, please use a mobile or landline number")
	}
	return &PhoneLookupResult{PhoneNumber: in.PhoneNumber, LineType: lineType}, nil
}

// StartPhoneVerification sends a verification code to the number.
func (s *DefaultOnboardingService) StartPhoneVerification(ctx context.Context, providerID string, in PhoneInput) error {
	if providerID == "" {
		return ErrAuthenticationRequired
	}
	if verr := s.check(in); verr != nil {
		return verr
	}
	prov, err := s.getProvider(providerID)
	if err != nil {
		return err
	}
	if verr := guardStep(prov.Onboarding, models.StepPhoneVerification); verr != nil {
		return verr
	}
	if err := s.checkQuota(ctx, quota.ActionCodeSend, providerID); err != nil {
		return err
	}

	if err := s.SMS.SendCode(ctx, in.PhoneNumber); err != nil {
		return vendorFailure("send-code", providerID, err)
	}
	utils.GetLogger().Info("onboarding: verification code sent",
		zap.String("providerID", providerID))
	return nil
}

// CheckPhoneVerification verifies the submitted code; on approval the
// verified phone is persisted and the pipeline advances past the phone step.
func (s *DefaultOnboardingService) CheckPhoneVerification(ctx context.Context, providerID string, in CodeCheckInput) error {
	if providerID == "" {
		return ErrAuthenticationRequired
	}
	if verr := s.check(in); verr != nil {
		return verr
	}
	prov, err := s.getProvider(providerID)
	if err != nil {
		return err
	}
	if verr := guardStep(prov.Onboarding, models.StepPhoneVerification); verr != nil {
		return verr
	}
	if err := s.checkQuota(ctx, quota.ActionCodeCheck, providerID); err != nil {
		return err
	}

	approved, err := s.SMS.CheckCode(ctx, in.Code, in.PhoneNumber)
	if err != nil {
		return vendorFailure("check-code", providerID, err)
	}
	if !approved {
		return validationf("incorrect or expired verification code")
	}

	state := advance(prov.Onboarding, models.StepPhoneVerification)
	if err := s.Repo.SaveVerifiedPhone(providerID, in.PhoneNumber, state); err != nil {
		utils.GetLogger().Error("onboarding: failed to save verified phone",
			zap.String("providerID", providerID), zap.Error(err))
		return ErrExternalService
	}
	return nil
}
