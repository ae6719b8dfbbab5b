package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	providerRepo "orderly/database/repository/provider"
	"orderly/models"
	"orderly/services/onboarding"
	"orderly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// VerifyPasswordComplexity enforces the minimum password rules.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

// RegisterProvider creates a new provider account with a fresh onboarding
// state and issues a session token.
func (s *DefaultProviderService) RegisterProvider(ctx context.Context, in RegistrationInput) (*AuthResult, error) {
	logger := utils.GetLogger()

	if _, err := s.Repo.GetByEmail(in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, providerRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	if err := VerifyPasswordComplexity(in.Password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	prov := &models.Provider{
		ID: uuid.New().String(),
		Profile: models.Profile{
			ProviderName: in.ProviderName,
			Email:        in.Email,
			City:         in.City,
		},
		Security:   models.Security{PasswordHash: string(hash)},
		Onboarding: onboarding.NewState(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repo.Create(prov); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	token, err := s.issueToken(prov)
	if err != nil {
		return nil, err
	}

	if s.Mailer != nil {
		subject := "Welcome to Orderly"
		html := welcomeEmail(in.ProviderName)
		if err := s.Mailer.Send(ctx, in.Email, subject, html); err != nil {
			logger.Warn("provider: welcome email failed",
				zap.String("providerID", prov.ID), zap.Error(err))
		}
	}

	prov.Security = models.Security{}
	return &AuthResult{Provider: prov, Token: token}, nil
}

// issueToken signs a session JWT, stores its hash and primes the auth cache.
func (s *DefaultProviderService) issueToken(prov *models.Provider) (string, error) {
	token, err := utils.GenerateToken(prov.ID, prov.Profile.Email, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(prov.ID, tokenHash); err != nil {
		return "", fmt.Errorf("failed to store token hash: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + prov.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("provider: failed to prime auth cache",
			zap.String("providerID", prov.ID), zap.Error(err))
	}
	return token, nil
}

func welcomeEmail(providerName string) string {
	if providerName == "" {
		providerName = "there"
	}
	return fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
			<h2 style="color: #333;">Hi %s, welcome to Orderly!</h2>
			<p>Finish your onboarding to start taking organizing jobs: verify your phone,
			pick your services, set your rate, add work photos and connect payouts.</p>
		</div>
	`, providerName)
}
