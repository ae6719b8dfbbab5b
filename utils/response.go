package utils

// Result is the envelope returned by every onboarding and account action.
// Exactly one of Data or Error is populated; callers branch on Success
// before touching either.
type Result struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *ResultError `json:"error,omitempty"`
}

// ResultError carries a machine-readable code and a user-facing message.
// The message is always generic; vendor error detail stays in server logs.
type ResultError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	// RetryAfterSeconds is set only on RATE_LIMITED results.
	RetryAfterSeconds int `json:"retryAfterSeconds,omitempty"`
}

// Error codes shared across actions.
const (
	CodeAuthenticationRequired = "AUTHENTICATION_REQUIRED"
	CodeValidationFailed       = "VALIDATION_FAILED"
	CodeRateLimited            = "RATE_LIMITED"
	CodeExternalService        = "EXTERNAL_SERVICE_UNAVAILABLE"
	CodeNotFound               = "NOT_FOUND"
	CodeUnknown                = "UNKNOWN"
)

// Success builds the success variant of the envelope.
func Success(data any) Result {
	return Result{Success: true, Data: data}
}

// Failure builds the error variant of the envelope.
func Failure(code, message string) Result {
	return Result{Success: false, Error: &ResultError{Code: code, Message: message}}
}
