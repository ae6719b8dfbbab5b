package provider

import (
	"context"
	"errors"
	"fmt"

	providerRepo "orderly/database/repository/provider"
	"orderly/models"
	"orderly/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthenticateProvider checks credentials and issues a fresh session token.
func (s *DefaultProviderService) AuthenticateProvider(ctx context.Context, email, password string) (*AuthResult, error) {
	prov, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(prov.Security.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(prov)
	if err != nil {
		return nil, err
	}

	prov.Security = models.Security{}
	return &AuthResult{Provider: prov, Token: token}, nil
}

// RevokeProviderToken invalidates the provider's current session.
func (s *DefaultProviderService) RevokeProviderToken(ctx context.Context, id string) error {
	if err := s.Repo.UpdateTokenHash(id, ""); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	cacheKey := utils.AuthCachePrefix + id
	_ = utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err()
	return nil
}
