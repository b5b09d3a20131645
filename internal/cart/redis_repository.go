package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgredis "github.com/martinvega/sneakhub-backend/pkg/redis"
)

// RedisRepository stores cart snapshots in Redis, one key per session. The
// item array and the applied promo live under separate keys so the persisted
// cart layout stays a plain array of line-item records.
type RedisRepository struct {
	client *pkgredis.Client
	ttl    time.Duration
}

// NewRedisRepository builds the repository with the given snapshot TTL.
func NewRedisRepository(client *pkgredis.Client, ttl time.Duration) (*RedisRepository, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisRepository{client: client, ttl: ttl}, nil
}

// Load reads the session's snapshot. A missing key yields (nil, nil); a
// corrupt payload yields an error the service treats as an empty cart.
func (r *RedisRepository) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	raw, err := r.client.Get(ctx, r.client.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, pkgredis.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}

	snapshot := &Snapshot{Items: items}

	promo, err := r.client.Get(ctx, r.client.SessionKey(sessionID))
	if err != nil && !errors.Is(err, pkgredis.ErrKeyNotFound) {
		return nil, fmt.Errorf("load applied promo: %w", err)
	}
	if err == nil {
		snapshot.AppliedPromo = promo
	}

	return snapshot, nil
}

// Save writes the full snapshot, replacing whatever was stored before.
func (r *RedisRepository) Save(ctx context.Context, sessionID string, snapshot Snapshot) error {
	items := snapshot.Items
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}

	if err := r.client.Set(ctx, r.client.CartKey(sessionID), payload, r.ttl); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}

	promoKey := r.client.SessionKey(sessionID)
	if snapshot.AppliedPromo == "" {
		if err := r.client.Del(ctx, promoKey); err != nil {
			return fmt.Errorf("clear applied promo: %w", err)
		}
		return nil
	}
	if err := r.client.Set(ctx, promoKey, snapshot.AppliedPromo, r.ttl); err != nil {
		return fmt.Errorf("save applied promo: %w", err)
	}
	return nil
}
