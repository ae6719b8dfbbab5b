package sms

import "context"

// Line types reported by the lookup vendor.
const (
	LineTypeMobile   = "mobile"
	LineTypeLandline = "landline"
	LineTypeVoIP     = "nonFixedVoip"
)

// Verifier is the SMS verification vendor: code delivery, code checking and
// line-type lookup. Implementations are constructed once at startup and are
// safe for concurrent use.
type Verifier interface {
	// SendCode dispatches a verification code to the given E.164 number.
	SendCode(ctx context.Context, e164Number string) error
	// CheckCode reports whether the code matches the pending verification
	// for the given number.
	CheckCode(ctx context.Context, code, e164Number string) (bool, error)
	// LookupLineType returns the carrier line type for the given number.
	LookupLineType(ctx context.Context, e164Number string) (string, error)
}
