package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	lookups "github.com/twilio/twilio-go/rest/lookups/v2"
	verify "github.com/twilio/twilio-go/rest/verify/v2"
)

// TwilioVerifier implements Verifier on Twilio Verify V2 and Lookups V2.
type TwilioVerifier struct {
	client     *twilio.RestClient
	serviceSID string
}

// NewTwilioVerifier builds a verifier from Twilio credentials and the Verify
// service SID.
func NewTwilioVerifier(accountSID, authToken, serviceSID string) (*TwilioVerifier, error) {
	if accountSID == "" || authToken == "" || serviceSID == "" {
		return nil, fmt.Errorf("twilio credentials not set in configuration")
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioVerifier{client: client, serviceSID: serviceSID}, nil
}

func (v *TwilioVerifier) SendCode(ctx context.Context, e164Number string) error {
	params := &verify.CreateVerificationParams{}
	params.SetTo(e164Number)
	params.SetChannel("sms")

	if _, err := v.client.VerifyV2.CreateVerification(v.serviceSID, params); err != nil {
		return fmt.Errorf("twilio: failed to send verification code: %w", err)
	}
	return nil
}

func (v *TwilioVerifier) CheckCode(ctx context.Context, code, e164Number string) (bool, error) {
	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(e164Number)
	params.SetCode(code)

	check, err := v.client.VerifyV2.CreateVerificationCheck(v.serviceSID, params)
	if err != nil {
		return false, fmt.Errorf("twilio: failed to check verification code: %w", err)
	}
	return check.Status != nil && *check.Status == "approved", nil
}

func (v *TwilioVerifier) LookupLineType(ctx context.Context, e164Number string) (string, error) {
	params := &lookups.FetchPhoneNumberParams{}
	params.SetFields("line_type_intelligence")

	resp, err := v.client.LookupsV2.FetchPhoneNumber(e164Number, params)
	if err != nil {
		return "", fmt.Errorf("twilio: failed to look up phone number: %w", err)
	}
	if resp.LineTypeIntelligence == nil {
		return "", nil
	}
	if intel, ok := (*resp.LineTypeIntelligence).(map[string]interface{}); ok {
		if t, ok := intel["type"].(string); ok {
			return t, nil
		}
	}
	return "", nil
}
