package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/welhome/properties-api/internal/properties/domain"
)

const (
	propSeqKey     = "prop:seq"   // INCR counter handing out ids
	propIndexKey   = "prop:ids"   // Sorted set of ids, score = id
	propItemPrefix = "prop:item:" // JSON record: prop:item:{id}
)

// RedisRepository keeps properties in Redis. Ids come from an INCR counter
// and the sorted index preserves insertion order.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// EnsureSchema is a no-op; Redis keys are created on first write.
func (r *RedisRepository) EnsureSchema(ctx context.Context) error {
	return nil
}

func (r *RedisRepository) Create(ctx context.Context, in domain.PropertyInput) (*domain.Property, error) {
	if !in.Status.Valid() {
		return nil, statusConstraintError()
	}

	// The id is allocated outside the transaction, so a failed Exec skips
	// a number. Ids only need to be unique.
	id, err := r.client.Incr(ctx, propSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate property id: %w", err)
	}

	p := domain.Property{ID: id}.Apply(in)
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal property: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.itemKey(id), data, 0)
	pipe.ZAdd(ctx, propIndexKey, redis.Z{Score: float64(id), Member: id})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return &p, nil
}

func (r *RedisRepository) List(ctx context.Context) ([]domain.Property, error) {
	ids, err := r.client.ZRange(ctx, propIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list property ids: %w", err)
	}

	out := make([]domain.Property, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = propItemPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			// deleted between ZRANGE and MGET
			continue
		}
		var p domain.Property
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal property: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *RedisRepository) Get(ctx context.Context, id int64) (*domain.Property, error) {
	data, err := r.client.Get(ctx, r.itemKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	var p domain.Property
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal property: %w", err)
	}
	return &p, nil
}

func (r *RedisRepository) Update(ctx context.Context, id int64, in domain.PropertyInput) (*domain.Property, error) {
	if !in.Status.Valid() {
		return nil, statusConstraintError()
	}

	p := domain.Property{ID: id}.Apply(in)
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal property: %w", err)
	}

	// SET XX only overwrites an existing key.
	ok, err := r.client.SetXX(ctx, r.itemKey(id), data, redis.KeepTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &p, nil
}

func (r *RedisRepository) Delete(ctx context.Context, id int64) error {
	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, r.itemKey(id))
	pipe.ZRem(ctx, propIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if del.Val() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) itemKey(id int64) string {
	return propItemPrefix + strconv.FormatInt(id, 10)
}
