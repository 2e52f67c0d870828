package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	redisclient "github.com/KirkDiggler/runes-api/internal/redis"
)

const (
	inventoryKeyPrefix = "inventory:session:"

	// Error messages
	errSessionIDEmpty = "session ID cannot be empty"
	errItemNil        = "item cannot be nil"
	errItemIDEmpty    = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository.
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

// NewRedis creates a new Redis-backed inventory repository.
// Each bag is a Redis list of item JSON documents.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) AddItem(ctx context.Context, input AddItemInput) (*AddItemOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item")
	}

	count, err := r.client.RPush(ctx, GetKey(input.SessionID), data).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add item for session %s", input.SessionID)
	}

	return &AddItemOutput{Count: int(count)}, nil
}

func (r *redisRepository) TakeItem(ctx context.Context, input TakeItemInput) (*TakeItemOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	key := GetKey(input.SessionID)
	raw, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read inventory for session %s", input.SessionID)
	}

	for _, doc := range raw {
		var item entities.Item
		if err := json.Unmarshal([]byte(doc), &item); err != nil {
			continue
		}
		if item.ID != input.ItemID {
			continue
		}

		removed, err := r.client.LRem(ctx, key, 1, doc).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to take item %s", input.ItemID)
		}
		if removed == 0 {
			// Someone else took it between the read and the remove
			break
		}
		return &TakeItemOutput{Item: &item}, nil
	}

	return nil, errors.NotFoundf("item %s not in inventory", input.ItemID)
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	raw, err := r.client.LRange(ctx, GetKey(input.SessionID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read inventory for session %s", input.SessionID)
	}

	items := make([]*entities.Item, 0, len(raw))
	for _, doc := range raw {
		var item entities.Item
		if err := json.Unmarshal([]byte(doc), &item); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal item")
		}
		items = append(items, &item)
	}

	return &ListOutput{Items: items}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	if err := r.client.Del(ctx, GetKey(input.SessionID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete inventory for session %s", input.SessionID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a session's inventory
// Exposed for testing purposes
func GetKey(sessionID string) string {
	return fmt.Sprintf("%s%s", inventoryKeyPrefix, sessionID)
}
