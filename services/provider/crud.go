package provider

import (
	"context"
	"errors"
	"fmt"

	providerRepo "orderly/database/repository/provider"
	"orderly/models"
)

// GetProviderByID fetches a provider record with secrets stripped.
func (s *DefaultProviderService) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	prov, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	prov.Security = models.Security{}
	return prov, nil
}

// DeleteProvider removes the provider account.
func (s *DefaultProviderService) DeleteProvider(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete provider with id %s: %w", id, err)
	}
	return nil
}
