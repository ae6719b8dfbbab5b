package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/account"
	"github.com/stripe/stripe-go/v76/accountlink"
)

// StripeAccounts implements Accounts on Stripe Connect Express. The global
// stripe.Key is set once in main from config.
type StripeAccounts struct {
	refreshURL string
	returnURL  string
}

// NewStripeAccounts builds the Stripe adapter with the hosted-onboarding
// redirect URLs.
func NewStripeAccounts(refreshURL, returnURL string) *StripeAccounts {
	return &StripeAccounts{refreshURL: refreshURL, returnURL: returnURL}
}

func (s *StripeAccounts) CreateAccount(ctx context.Context, email string) (string, error) {
	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	params.Context = ctx

	acct, err := account.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create account: %w", err)
	}
	return acct.ID, nil
}

func (s *StripeAccounts) CreateAccountLink(ctx context.Context, accountID string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(s.refreshURL),
		ReturnURL:  stripe.String(s.returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := accountlink.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create account link: %w", err)
	}
	return link.URL, nil
}

func (s *StripeAccounts) RetrieveAccount(ctx context.Context, accountID string) (*AccountStatus, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := account.GetByID(accountID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to retrieve account %s: %w", accountID, err)
	}
	return &AccountStatus{
		AccountID:        acct.ID,
		ChargesEnabled:   acct.ChargesEnabled,
		PayoutsEnabled:   acct.PayoutsEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
	}, nil
}

func (s *StripeAccounts) DeleteAccount(ctx context.Context, accountID string) error {
	params := &stripe.AccountParams{}
	params.Context = ctx

	if _, err := account.Del(accountID, params); err != nil {
		return fmt.Errorf("stripe: failed to delete account %s: %w", accountID, err)
	}
	return nil
}
