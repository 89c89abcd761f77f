package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// PartCacheTTL is the time-to-live for cached parts.
	PartCacheTTL = 24 * time.Hour

	partCacheKeyPrefix = "part"
)

// CachedPart is the denormalized read model stored in Redis.
// The shape mirrors the canonical snake_case Part schema so the API layer can
// serve cached reads without remapping.
type CachedPart struct {
	ID            uuid.UUID       `json:"id"`
	PartNumber    string          `json:"part_number"`
	PartName      string          `json:"part_name"`
	Category      string          `json:"category"`
	Manufacturer  string          `json:"manufacturer,omitempty"`
	Description   string          `json:"description,omitempty"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity int             `json:"stock_quantity"`
	MinStock      int             `json:"min_stock"`
	Unit          string          `json:"unit"`
	Location      string          `json:"location,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PartCache provides read/write operations for part cache entries.
// Key format: "part:{partID}". Values are JSON with a 24-hour TTL.
type PartCache struct {
	client *RedisClient
}

// NewPartCache creates a new PartCache backed by the given RedisClient.
func NewPartCache(r *RedisClient) *PartCache {
	return &PartCache{client: r}
}

// Get retrieves a cached part by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *PartCache) Get(ctx context.Context, partID uuid.UUID) (*CachedPart, error) {
	data, err := c.client.Client().Get(ctx, c.key(partID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var part CachedPart
	if err := json.Unmarshal(data, &part); err != nil {
		return nil, fmt.Errorf("cache decode part: %w", err)
	}
	return &part, nil
}

// Set writes a cached part with a 24-hour TTL.
func (c *PartCache) Set(ctx context.Context, part *CachedPart) error {
	data, err := json.Marshal(part)
	if err != nil {
		return fmt.Errorf("cache encode part: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(part.ID), data, PartCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached part.
func (c *PartCache) Delete(ctx context.Context, partID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(partID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "part:{partID}"
func (c *PartCache) key(partID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", partCacheKeyPrefix, partID)
}
