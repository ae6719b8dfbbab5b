package onboarding

import "fmt"

// onboardingCompleteEmail renders the HTML body sent when a provider
// finishes the pipeline.
func onboardingCompleteEmail(providerName string) string {
	if providerName == "" {
		providerName = "there"
	}
	return fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
			<h2 style="color: #333;">Welcome aboard, %s!</h2>
			<p>Your Orderly provider profile is complete. Clients in your area can now find and book you.</p>
			<p style="color: #888; font-size: 14px; margin-top: 16px;">
				You can update your rate, categories and photos any time from your dashboard.
			</p>
		</div>
	`, providerName)
}
