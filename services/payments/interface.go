package payments

import "context"

// AccountStatus summarizes the state of a connected payout account.
type AccountStatus struct {
	AccountID        string `json:"accountId"`
	ChargesEnabled   bool   `json:"chargesEnabled"`
	PayoutsEnabled   bool   `json:"payoutsEnabled"`
	DetailsSubmitted bool   `json:"detailsSubmitted"`
}

// Accounts is the payment-account vendor: connected account lifecycle plus
// hosted onboarding links. Implementations are constructed once at startup
// and are safe for concurrent use.
type Accounts interface {
	// CreateAccount provisions a new connected account for the given email
	// and returns its ID.
	CreateAccount(ctx context.Context, email string) (string, error)
	// CreateAccountLink returns a hosted onboarding URL for the account.
	CreateAccountLink(ctx context.Context, accountID string) (string, error)
	// RetrieveAccount fetches the account's current status.
	RetrieveAccount(ctx context.Context, accountID string) (*AccountStatus, error)
	// DeleteAccount removes a connected account. Used only as the
	// compensating action when a save-after-create fails.
	DeleteAccount(ctx context.Context, accountID string) error
}
