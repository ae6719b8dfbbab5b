package providerRepo

import (
	"fmt"
	"time"

	"orderly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new provider document.
func (r *MongoProviderRepo) Create(provider *models.Provider) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, provider)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

// Delete removes a provider document by its ID.
func (r *MongoProviderRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete provider with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateTokenHash stores the hash of the provider's current session token.
// An empty hash revokes the session.
func (r *MongoProviderRepo) UpdateTokenHash(id, tokenHash string) error {
	return r.updateSet(id, bson.M{"security.tokenHash": tokenHash})
}

// updateSet applies a $set upsert keyed by provider ID. Every step write in
// the onboarding pipeline funnels through here, so writes stay idempotent:
// re-running a step replaces the named fields and nothing else.
func (r *MongoProviderRepo) updateSet(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	filter := bson.M{"id": id}
	update := bson.M{"$set": fields}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
