package provider

import (
	"context"

	providerRepo "orderly/database/repository/provider"
	"orderly/models"
	"orderly/services/email"
)

// AuthResult carries the signed-in provider and their session token.
type AuthResult struct {
	Provider *models.Provider `json:"provider"`
	Token    string           `json:"token"`
}

// ProviderService manages provider accounts: registration, sessions and
// basic record access. Onboarding step execution lives in the onboarding
// service.
type ProviderService interface {
	RegisterProvider(ctx context.Context, in RegistrationInput) (*AuthResult, error)
	AuthenticateProvider(ctx context.Context, email, password string) (*AuthResult, error)
	GetProviderByID(ctx context.Context, id string) (*models.Provider, error)
	RevokeProviderToken(ctx context.Context, id string) error
	DeleteProvider(ctx context.Context, id string) error
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo   providerRepo.ProviderRepository
	Mailer email.Mailer
}

// RegistrationInput is the provider signup payload.
type RegistrationInput struct {
	ProviderName string `json:"providerName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	City         string `json:"city"`
}
