package obligation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/forfeit/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	obligationKeyPrefix           = "obligation:"
	challengeObligationsKeyPrefix = "challenge_obligations:"
	activeObligationsKey          = "active_obligations"

	// maxUpdateAttempts bounds optimistic retries when a watched key changes
	maxUpdateAttempts = 10
)

var (
	// ErrObligationNotFound is returned when an obligation is not found
	ErrObligationNotFound = errors.New("obligation not found")

	// ErrUpdateConflict is returned when an update keeps losing to concurrent writers
	ErrUpdateConflict = errors.New("obligation update conflict")
)

// Config holds configuration for the Redis obligation repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed obligation repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveObligation persists an obligation to Redis
func (r *redisRepository) SaveObligation(ctx context.Context, input *SaveObligationInput) error {
	if input == nil || input.Obligation == nil {
		return errors.New("input and obligation cannot be nil")
	}

	if input.Obligation.ID == "" {
		return errors.New("obligation ID cannot be empty")
	}

	obligationJSON, err := json.Marshal(input.Obligation)
	if err != nil {
		return fmt.Errorf("failed to marshal obligation: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, obligationKey(input.Obligation.ID), obligationJSON, 0)
		writeIndexes(ctx, pipe, input.Obligation)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save obligation: %w", err)
	}

	return nil
}

// GetObligation retrieves an obligation by ID from Redis
func (r *redisRepository) GetObligation(ctx context.Context, input *GetObligationInput) (*models.Obligation, error) {
	if input == nil || input.ObligationID == "" {
		return nil, errors.New("input and obligation ID cannot be empty")
	}

	obligationJSON, err := r.client.Get(ctx, obligationKey(input.ObligationID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrObligationNotFound
		}
		return nil, fmt.Errorf("failed to get obligation: %w", err)
	}

	var obligation models.Obligation
	if err := json.Unmarshal([]byte(obligationJSON), &obligation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal obligation: %w", err)
	}

	return &obligation, nil
}

// UpdateObligation loads, mutates and stores an obligation under WATCH so a
// concurrent writer forces a retry instead of a lost update
func (r *redisRepository) UpdateObligation(ctx context.Context, input *UpdateObligationInput) (*UpdateObligationOutput, error) {
	if input == nil || input.ObligationID == "" {
		return nil, errors.New("input and obligation ID cannot be empty")
	}

	if input.Update == nil {
		return nil, errors.New("update function cannot be nil")
	}

	key := obligationKey(input.ObligationID)
	var output *UpdateObligationOutput

	txf := func(tx *redis.Tx) error {
		obligationJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrObligationNotFound
			}
			return fmt.Errorf("failed to get obligation: %w", err)
		}

		var obligation models.Obligation
		if err := json.Unmarshal([]byte(obligationJSON), &obligation); err != nil {
			return fmt.Errorf("failed to unmarshal obligation: %w", err)
		}

		changed, err := input.Update(&obligation)
		if err != nil {
			return err
		}

		output = &UpdateObligationOutput{
			Obligation: &obligation,
			Changed:    changed,
		}
		if !changed {
			return nil
		}

		updatedJSON, err := json.Marshal(&obligation)
		if err != nil {
			return fmt.Errorf("failed to marshal obligation: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updatedJSON, 0)
			writeIndexes(ctx, pipe, &obligation)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return output, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrUpdateConflict
}

// DeleteObligation removes an obligation and its index entries from Redis
func (r *redisRepository) DeleteObligation(ctx context.Context, input *DeleteObligationInput) error {
	if input == nil || input.ObligationID == "" {
		return errors.New("input and obligation ID cannot be empty")
	}

	obligation, err := r.GetObligation(ctx, &GetObligationInput{
		ObligationID: input.ObligationID,
	})
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, obligationKey(obligation.ID))
		pipe.SRem(ctx, activeObligationsKey, obligation.ID)
		if obligation.ChallengeID != "" {
			pipe.SRem(ctx, challengeObligationsKey(obligation.ChallengeID), obligation.ID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete obligation: %w", err)
	}

	return nil
}

// ListActiveObligations retrieves all active obligations from Redis
func (r *redisRepository) ListActiveObligations(ctx context.Context, input *ListActiveObligationsInput) (*ListActiveObligationsOutput, error) {
	obligationIDs, err := r.client.SMembers(ctx, activeObligationsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active obligation IDs: %w", err)
	}

	obligations, undecodable, err := r.getObligations(ctx, obligationIDs)
	if err != nil {
		return nil, err
	}

	return &ListActiveObligationsOutput{
		Obligations: obligations,
		Undecodable: undecodable,
	}, nil
}

// ListObligationsForChallenge retrieves every participant obligation of a challenge
func (r *redisRepository) ListObligationsForChallenge(ctx context.Context, input *ListObligationsForChallengeInput) (*ListObligationsForChallengeOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	obligationIDs, err := r.client.SMembers(ctx, challengeObligationsKey(input.ChallengeID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge obligation IDs: %w", err)
	}

	obligations, undecodable, err := r.getObligations(ctx, obligationIDs)
	if err != nil {
		return nil, err
	}
	if len(undecodable) > 0 {
		return nil, fmt.Errorf("failed to unmarshal obligations %v", undecodable)
	}

	return &ListObligationsForChallengeOutput{
		Obligations: obligations,
	}, nil
}

// getObligations fetches records in one pipeline. Records deleted between the
// index read and the fetch are skipped; records that fail to decode are
// reported by ID so one corrupt entry does not hide the rest.
func (r *redisRepository) getObligations(ctx context.Context, obligationIDs []string) ([]*models.Obligation, []string, error) {
	if len(obligationIDs) == 0 {
		return []*models.Obligation{}, nil, nil
	}

	sort.Strings(obligationIDs)

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(obligationIDs))
	for i, obligationID := range obligationIDs {
		commands[i] = pipe.Get(ctx, obligationKey(obligationID))
	}

	// A missing record surfaces as redis.Nil from Exec; it is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, nil, fmt.Errorf("failed to get obligations: %w", err)
	}

	obligations := make([]*models.Obligation, 0, len(obligationIDs))
	var undecodable []string
	for i, cmd := range commands {
		obligationJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, nil, fmt.Errorf("failed to get obligation %s: %w", obligationIDs[i], err)
		}

		var obligation models.Obligation
		if err := json.Unmarshal([]byte(obligationJSON), &obligation); err != nil {
			undecodable = append(undecodable, obligationIDs[i])
			continue
		}

		obligations = append(obligations, &obligation)
	}

	return obligations, undecodable, nil
}

func writeIndexes(ctx context.Context, pipe redis.Pipeliner, obligation *models.Obligation) {
	if obligation.IsActive() {
		pipe.SAdd(ctx, activeObligationsKey, obligation.ID)
	} else {
		pipe.SRem(ctx, activeObligationsKey, obligation.ID)
	}

	if obligation.ChallengeID != "" {
		pipe.SAdd(ctx, challengeObligationsKey(obligation.ChallengeID), obligation.ID)
	}
}

func obligationKey(obligationID string) string {
	return fmt.Sprintf("%s%s", obligationKeyPrefix, obligationID)
}

func challengeObligationsKey(challengeID string) string {
	return fmt.Sprintf("%s%s", challengeObligationsKeyPrefix, challengeID)
}
