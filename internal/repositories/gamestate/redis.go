package gamestate

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/questforge/adventure-api/internal/entities/adventure"
	"github.com/questforge/adventure-api/internal/errors"
	"github.com/questforge/adventure-api/internal/pkg/clock"
	redisclient "github.com/questforge/adventure-api/internal/redis"
)

const (
	gameStateKeyPrefix = "gamestate:"
	sessionIndexPrefix = "gamestate:session:"
	storyIndexPrefix   = "gamestate:story:"

	// Error messages
	errRecordNil      = "game state record cannot be nil"
	errRecordIDEmpty  = "game state ID cannot be empty"
	errSessionIDEmpty = "session ID cannot be empty"
	errStoryIDEmpty   = "story ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	codec  Codec
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis game state repository.
type RedisConfig struct {
	Client redisclient.Client
	Codec  Codec
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Codec == nil {
		vb.RequiredField("Codec")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed game state repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		codec:  cfg.Codec,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := gameStateKeyPrefix + input.Record.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("game state with ID %s already exists", input.Record.ID)
	}

	rec := *input.Record
	now := r.clock.Now().Unix()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	// The codec heals structurally invalid progress data before encoding.
	data, err := r.codec.Serialize(&rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to serialize game state")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // No TTL for game states
	if rec.SessionID != "" {
		pipe.SAdd(ctx, sessionIndexPrefix+rec.SessionID, rec.ID)
	}
	if rec.StoryID != "" {
		pipe.SAdd(ctx, storyIndexPrefix+rec.StoryID, rec.ID)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create game state")
	}

	return &CreateOutput{Record: &rec}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := gameStateKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("game state with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get game state")
	}

	rec, err := r.codec.Deserialize(result)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode game state %s", input.ID)
	}

	return &GetOutput{Record: rec}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	existingOut, err := r.Get(ctx, GetInput{ID: input.Record.ID})
	if err != nil {
		return nil, err
	}
	existing := existingOut.Record

	rec := *input.Record
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = r.clock.Now().Unix()

	data, err := r.codec.Serialize(&rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to serialize game state")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameStateKeyPrefix+rec.ID, data, 0)

	// Fix indexes if the session or story moved
	if existing.SessionID != rec.SessionID {
		if existing.SessionID != "" {
			pipe.SRem(ctx, sessionIndexPrefix+existing.SessionID, rec.ID)
		}
		if rec.SessionID != "" {
			pipe.SAdd(ctx, sessionIndexPrefix+rec.SessionID, rec.ID)
		}
	}
	if existing.StoryID != rec.StoryID {
		if existing.StoryID != "" {
			pipe.SRem(ctx, storyIndexPrefix+existing.StoryID, rec.ID)
		}
		if rec.StoryID != "" {
			pipe.SAdd(ctx, storyIndexPrefix+rec.StoryID, rec.ID)
		}
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update game state")
	}

	return &UpdateOutput{Record: &rec}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	rec := getOutput.Record

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameStateKeyPrefix+input.ID)
	if rec.SessionID != "" {
		pipe.SRem(ctx, sessionIndexPrefix+rec.SessionID, input.ID)
	}
	if rec.StoryID != "" {
		pipe.SRem(ctx, storyIndexPrefix+rec.StoryID, input.ID)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete game state")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListBySessionID(
	ctx context.Context,
	input ListBySessionIDInput,
) (*ListBySessionIDOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	indexKey := sessionIndexPrefix + input.SessionID
	records, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list game states by session index",
			"session_id", input.SessionID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	slog.DebugContext(ctx, "listed game states by session",
		"session_id", input.SessionID,
		"count", len(records))

	return &ListBySessionIDOutput{Records: records}, nil
}

func (r *redisRepository) ListByStoryID(
	ctx context.Context,
	input ListByStoryIDInput,
) (*ListByStoryIDOutput, error) {
	if input.StoryID == "" {
		return nil, errors.InvalidArgument(errStoryIDEmpty)
	}

	indexKey := storyIndexPrefix + input.StoryID
	records, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list game states by story index",
			"story_id", input.StoryID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	slog.DebugContext(ctx, "listed game states by story",
		"story_id", input.StoryID,
		"count", len(records))

	return &ListByStoryIDOutput{Records: records}, nil
}

func (r *redisRepository) GetBySessionAndStory(
	ctx context.Context,
	input GetBySessionAndStoryInput,
) (*GetBySessionAndStoryOutput, error) {
	vb := errors.NewValidationBuilder()
	if input.SessionID == "" {
		vb.RequiredField("SessionID")
	}
	if input.StoryID == "" {
		vb.RequiredField("StoryID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ids, err := r.client.SInter(ctx,
		sessionIndexPrefix+input.SessionID,
		storyIndexPrefix+input.StoryID,
	).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to intersect session and story indexes")
	}

	var latest *adventure.GameStateRecord
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "game state not found, cleaning up indexes",
					"game_state_id", id)
				r.client.SRem(ctx, sessionIndexPrefix+input.SessionID, id)
				r.client.SRem(ctx, storyIndexPrefix+input.StoryID, id)
				continue
			}
			return nil, err
		}
		if latest == nil || getOutput.Record.UpdatedAt > latest.UpdatedAt {
			latest = getOutput.Record
		}
	}

	if latest == nil {
		return nil, errors.NotFoundf("no game state for session %s and story %s",
			input.SessionID, input.StoryID)
	}

	return &GetBySessionAndStoryOutput{Record: latest}, nil
}

// listByIndex is a helper function to list game states by any index
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*adventure.GameStateRecord, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get game states from index %s", indexKey)
	}

	records := make([]*adventure.GameStateRecord, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// If the record is gone, clean up the index
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "game state not found, cleaning up index",
					"game_state_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get game state %s", id)
		}
		records = append(records, getOutput.Record)
	}

	return records, nil
}
