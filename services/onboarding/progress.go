package onboarding

import (
	"context"
	"time"

	"orderly/models"
)

// NewState is the onboarding state of a freshly registered provider.
func NewState() models.OnboardingState {
	return models.OnboardingState{CurrentStep: models.StepOrder[0]}
}

// stepAllowed reports whether the provider may execute the given step:
// the current step and already-completed steps (idempotent re-runs) are
// allowed, skipping ahead is not.
func stepAllowed(state models.OnboardingState, stepID string) bool {
	if state.CurrentStep == stepID {
		return true
	}
	for _, done := range state.CompletedSteps {
		if done == stepID {
			return true
		}
	}
	return false
}

// advance returns the state after completing the given step. Completed
// steps are kept in pipeline order; the current step becomes the first
// step not yet completed. Completing the last step marks onboarding done.
func advance(state models.OnboardingState, stepID string) models.OnboardingState {
	done := make(map[string]bool, len(state.CompletedSteps)+1)
	for _, s := range state.CompletedSteps {
		done[s] = true
	}
	done[stepID] = true

	next := models.OnboardingState{}
	for _, s := range models.StepOrder {
		if done[s] {
			next.CompletedSteps = append(next.CompletedSteps, s)
		} else if next.CurrentStep == "" {
			next.CurrentStep = s
		}
	}
	if next.CurrentStep == "" {
		next.Complete = true
		next.CompletedAt = time.Now()
	}
	return next
}

// describeSteps renders the ordered step descriptors from the persisted
// state. At most one step carries the "current" status.
func describeSteps(state models.OnboardingState) []models.OnboardingStep {
	done := make(map[string]bool, len(state.CompletedSteps))
	for _, s := range state.CompletedSteps {
		done[s] = true
	}

	steps := make([]models.OnboardingStep, 0, len(models.StepOrder))
	for _, id := range models.StepOrder {
		status := models.StepStatusUpcoming
		switch {
		case done[id]:
			status = models.StepStatusComplete
		case id == state.CurrentStep:
			status = models.StepStatusCurrent
		}
		steps = append(steps, models.OnboardingStep{
			ID:     id,
			Name:   models.StepNames[id],
			Status: status,
		})
	}
	return steps
}

// Progress returns the provider's ordered onboarding steps with statuses.
func (s *DefaultOnboardingService) Progress(ctx context.Context, providerID string) ([]models.OnboardingStep, error) {
	if providerID == "" {
		return nil, ErrAuthenticationRequired
	}
	prov, err := s.getProvider(providerID)
	if err != nil {
		return nil, err
	}
	return describeSteps(prov.Onboarding), nil
}
