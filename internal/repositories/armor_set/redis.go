package armorset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	redisclient "github.com/KirkDiggler/armor-builder/internal/redis"
)

const (
	setKeyPrefix = "armor_set:"
	namesKey     = "armor_sets"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis armor set repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed armor set repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) LoadAll(ctx context.Context, _ LoadAllInput) (*LoadAllOutput, error) {
	names, err := r.client.LRange(ctx, namesKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list armor set names")
	}
	if len(names) == 0 {
		return &LoadAllOutput{Sets: []*armor.Set{}}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = GetKey(name)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get armor sets")
	}

	records := make([]*armor.SetRecord, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// name list and set keys drifted apart, e.g. a key removed by hand
			slog.WarnContext(ctx, "Armor set listed but not stored",
				"name", names[i],
				"key", keys[i])
			continue
		}

		var record armor.SetRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "armor set %s is corrupt", keys[i]).
				WithReason(armor.ReasonInvalidSetRecord).
				WithMeta("key", keys[i])
		}
		records = append(records, &record)
	}

	sets, err := deserializeAll(records)
	if err != nil {
		return nil, err
	}

	return &LoadAllOutput{Sets: sets}, nil
}

func (r *redisRepository) SaveAll(ctx context.Context, input SaveAllInput) (*SaveAllOutput, error) {
	records, err := serializeAll(input.Sets)
	if err != nil {
		return nil, err
	}

	// Drop keys of sets that are no longer in the collection
	previous, err := r.client.LRange(ctx, namesKey, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "failed to list armor set names")
	}

	pipe := r.client.TxPipeline()

	for _, name := range previous {
		pipe.Del(ctx, GetKey(name))
	}
	pipe.Del(ctx, namesKey)

	names := make([]interface{}, 0, len(records))
	for i, record := range records {
		jsonData, err := json.Marshal(record)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal armor set %s", input.Sets[i].Name)
		}
		pipe.Set(ctx, GetKey(input.Sets[i].Name), jsonData, 0)
		names = append(names, input.Sets[i].Name)
	}
	if len(names) > 0 {
		pipe.RPush(ctx, namesKey, names...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to save armor sets")
	}

	slog.DebugContext(ctx, "Saved armor sets to redis", "count", len(records))

	return &SaveAllOutput{Saved: len(records)}, nil
}

// GetKey returns the Redis key for an armor set
// Exposed for testing purposes
func GetKey(name string) string {
	return fmt.Sprintf("%s%s", setKeyPrefix, name)
}
