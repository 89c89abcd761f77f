package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DraftTTL bounds how long an abandoned draft survives. A draft that is
	// finalized or cancelled is deleted explicitly before then.
	DraftTTL = 24 * time.Hour

	draftKeyPrefix = "draft"
)

// ErrDraftNotFound is returned when no draft exists under the given ID.
var ErrDraftNotFound = errors.New("draft not found")

// DraftStore holds in-progress bill drafts server-side in Redis.
// The billing service owns the draft shape; this store moves opaque JSON so
// pkg/cache stays free of domain imports.
type DraftStore struct {
	client *RedisClient
}

// NewDraftStore creates a DraftStore backed by the given RedisClient.
func NewDraftStore(r *RedisClient) *DraftStore {
	return &DraftStore{client: r}
}

// Get returns the stored draft payload. Returns ErrDraftNotFound when the key
// is missing or expired.
func (s *DraftStore) Get(ctx context.Context, draftID string) ([]byte, error) {
	data, err := s.client.Client().Get(ctx, s.key(draftID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("draft get: %w", err)
	}
	return data, nil
}

// Set stores the draft payload, refreshing the TTL on every write so an
// actively edited draft never expires mid-composition.
func (s *DraftStore) Set(ctx context.Context, draftID string, payload []byte) error {
	if err := s.client.Client().Set(ctx, s.key(draftID), payload, DraftTTL).Err(); err != nil {
		return fmt.Errorf("draft set: %w", err)
	}
	return nil
}

// Delete discards a draft. Deleting an absent draft is not an error.
func (s *DraftStore) Delete(ctx context.Context, draftID string) error {
	if err := s.client.Client().Del(ctx, s.key(draftID)).Err(); err != nil {
		return fmt.Errorf("draft delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "draft:{draftID}"
func (s *DraftStore) key(draftID string) string {
	return fmt.Sprintf("%s:%s", draftKeyPrefix, draftID)
}
