package battles

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/runes-api/internal/redis"
)

const (
	// Key pattern: battle:{id}
	recordKeyPrefix    = "battle:"
	sessionIndexPrefix = "battle:session:"
	recentIndexKey     = "battle:recent"
	defaultTTL         = 7 * 24 * time.Hour

	// Error messages
	errRecordNil      = "record cannot be nil"
	errRecordIDEmpty  = "record ID cannot be empty"
	errSessionIDEmpty = "session ID cannot be empty"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a Redis-backed battle repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores a record and indexes it by session and recency
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}
	if input.Record.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	record := *input.Record
	if record.EndedAt.IsZero() {
		record.EndedAt = r.clock.Now()
	}

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record")
	}

	score := float64(record.EndedAt.UnixNano())
	sessionKey := sessionIndexPrefix + record.SessionID

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKeyPrefix+record.ID, data, r.ttl)
	pipe.ZAdd(ctx, sessionKey, redis.Z{Score: score, Member: record.ID})
	pipe.Expire(ctx, sessionKey, r.ttl)
	pipe.ZAdd(ctx, recentIndexKey, redis.Z{Score: score, Member: record.ID})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save record")
	}

	slog.DebugContext(ctx, "Battle record saved",
		"record_id", record.ID,
		"session_id", record.SessionID,
		"outcome", record.Outcome)

	return &SaveOutput{Record: &record}, nil
}

// Get retrieves a record by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	result, err := r.client.Get(ctx, recordKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("battle record %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get record")
	}

	var record Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record")
	}

	return &GetOutput{Record: &record}, nil
}

// ListBySession returns a session's records, newest first
func (r *redisRepository) ListBySession(
	ctx context.Context,
	input ListBySessionInput,
) (*ListBySessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	records, err := r.listByIndex(ctx, sessionIndexPrefix+input.SessionID, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ListBySessionOutput{Records: records}, nil
}

// ListRecent returns the newest records across all sessions
func (r *redisRepository) ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error) {
	records, err := r.listByIndex(ctx, recentIndexKey, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ListRecentOutput{Records: records}, nil
}

// listByIndex loads the records a sorted-set index points to. Index entries
// whose record has expired are pruned.
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string, limit int) ([]*Record, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	ids, err := r.client.ZRevRange(ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index %s", indexKey)
	}
	if len(ids) == 0 {
		return []*Record{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load records")
	}

	records := make([]*Record, 0, len(values))
	var stale []interface{}
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var record Record
		if err := json.Unmarshal([]byte(s), &record); err != nil {
			slog.WarnContext(ctx, "Skipping unreadable battle record",
				"record_id", ids[i],
				"error", err)
			continue
		}
		records = append(records, &record)
	}

	if len(stale) > 0 {
		if err := r.client.ZRem(ctx, indexKey, stale...).Err(); err != nil {
			slog.WarnContext(ctx, "Failed to prune battle index",
				"index_key", indexKey,
				"error", err)
		}
	}

	return records, nil
}
