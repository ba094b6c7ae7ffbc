package gamestate

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-idle/internal/redis"
)

const (
	stateKeyPrefix = "game_state:"
	fieldUpdatedAt = "updated_at"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis game state repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a repository storing each player as one hash, one
// field per component
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func stateKey(playerID string) string {
	return stateKeyPrefix + playerID
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	fields, err := r.client.HGetAll(ctx, stateKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get state for player %s", input.PlayerID)
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("state for player %s not found", input.PlayerID)
	}

	records := make(map[string][]byte, len(fields))
	for name, data := range fields {
		records[name] = []byte(data)
	}

	state, err := decode(input.PlayerID, records)
	if err != nil {
		return nil, err
	}
	if raw, ok := fields[fieldUpdatedAt]; ok {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			state.UpdatedAt = ts
		}
	}

	return &GetOutput{State: state}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := input.State.Validate(); err != nil {
		return nil, err
	}

	records, err := input.State.encode()
	if err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()
	values := make([]any, 0, 2*len(records)+2)
	for _, name := range Components {
		values = append(values, name, records[name])
	}
	values = append(values, fieldUpdatedAt, now.Format(time.RFC3339Nano))

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, stateKey(input.State.PlayerID), values...)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save state for player %s", input.State.PlayerID)
	}

	input.State.UpdatedAt = now
	return &SaveOutput{UpdatedAt: now}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	n, err := r.client.Del(ctx, stateKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete state for player %s", input.PlayerID)
	}
	if n == 0 {
		return nil, errors.NotFoundf("state for player %s not found", input.PlayerID)
	}

	return &DeleteOutput{}, nil
}
