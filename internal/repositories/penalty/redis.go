package penalty

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/forfeit/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	penaltyKeyPrefix            = "penalty:"
	obligationPenaltiesPrefix   = "obligation_penalties:"
	userPenaltiesKeyPrefix      = "user_penalties:"
	penaltyPeriodClaimKeyPrefix = "penalty_period:"
)

// createPenaltyScript writes a penalty record, its indexes and, for automatic
// penalties, the period claim in one step.
// KEYS[1] = penalty record key
// KEYS[2] = debtor index, KEYS[3] = creditor index
// KEYS[4] = obligation index, KEYS[5] = period claim
// ARGV[1] = record JSON
// ARGV[2] = index score
// ARGV[3] = penalty ID
// ARGV[4] = penalty key prefix
// ARGV[5] = "1" when the obligation index applies
// ARGV[6] = "1" when the period claim applies
//
// A claim only blocks the slot while the record it points at exists.
var createPenaltyScript = redis.NewScript(`
if ARGV[6] == "1" then
    local owner = redis.call("GET", KEYS[5])
    if owner and redis.call("EXISTS", ARGV[4] .. owner) == 1 then
        return 0
    end
    redis.call("SET", KEYS[5], ARGV[3])
end

redis.call("SET", KEYS[1], ARGV[1])
redis.call("ZADD", KEYS[2], ARGV[2], ARGV[3])
redis.call("ZADD", KEYS[3], ARGV[2], ARGV[3])
if ARGV[5] == "1" then
    redis.call("ZADD", KEYS[4], ARGV[2], ARGV[3])
end

return 1
`)

// Config holds configuration for the Redis penalty repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed penalty repository
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

// PenaltyExists checks the claim of a period slot and the record behind it
func (r *redisRepository) PenaltyExists(ctx context.Context, input *PenaltyExistsInput) (bool, error) {
	if input == nil || input.ObligationID == "" || input.PeriodKey == "" || input.ToUserID == "" {
		return false, errors.New("obligation ID, period key and recipient cannot be empty")
	}

	penaltyID, err := r.client.Get(ctx, claimKey(input.ObligationID, input.PeriodKey, input.ToUserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check penalty: %w", err)
	}

	count, err := r.client.Exists(ctx, penaltyKey(penaltyID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check penalty: %w", err)
	}

	return count > 0, nil
}

// CreatePenalty stores a penalty record and its indexes. Automatic penalties
// also claim their (obligation, period, recipient) slot; the claim and the
// record are written together or not at all.
func (r *redisRepository) CreatePenalty(ctx context.Context, input *CreatePenaltyInput) error {
	if err := validatePenalty(input); err != nil {
		return err
	}

	record := input.Penalty
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal penalty: %w", err)
	}

	keys := []string{
		penaltyKey(record.ID),
		userPenaltiesKey(record.FromUserID, "from"),
		userPenaltiesKey(record.ToUserID, "to"),
		obligationPenaltiesKey(record.ObligationID),
		claimKey(record.ObligationID, record.PeriodKey, record.ToUserID),
	}

	withObligation := "0"
	if record.ObligationID != "" {
		withObligation = "1"
	}
	withClaim := "0"
	if record.Automatic() {
		withClaim = "1"
	}

	written, err := createPenaltyScript.Run(ctx, r.client, keys,
		string(recordJSON),
		record.CreatedAt.Unix(),
		record.ID,
		penaltyKeyPrefix,
		withObligation,
		withClaim,
	).Int()
	if err != nil {
		return fmt.Errorf("failed to create penalty: %w", err)
	}
	if written == 0 {
		return ErrDuplicatePenalty
	}

	return nil
}

// GetPenaltiesForObligationPeriod retrieves the penalties of one period
func (r *redisRepository) GetPenaltiesForObligationPeriod(ctx context.Context, input *GetPenaltiesForObligationPeriodInput) (*GetPenaltiesForObligationPeriodOutput, error) {
	if input == nil || input.ObligationID == "" || input.PeriodKey == "" {
		return nil, errors.New("obligation ID and period key cannot be empty")
	}

	all, err := r.GetPenaltiesForObligation(ctx, &GetPenaltiesForObligationInput{
		ObligationID: input.ObligationID,
	})
	if err != nil {
		return nil, err
	}

	penalties := make([]*models.PenaltyRecord, 0)
	for _, p := range all.Penalties {
		if p.PeriodKey == input.PeriodKey {
			penalties = append(penalties, p)
		}
	}

	return &GetPenaltiesForObligationPeriodOutput{
		Penalties: penalties,
	}, nil
}

// GetPenaltiesForObligation retrieves every penalty of an obligation
func (r *redisRepository) GetPenaltiesForObligation(ctx context.Context, input *GetPenaltiesForObligationInput) (*GetPenaltiesForObligationOutput, error) {
	if input == nil || input.ObligationID == "" {
		return nil, errors.New("input and obligation ID cannot be empty")
	}

	penaltyIDs, err := r.client.ZRange(ctx, obligationPenaltiesKey(input.ObligationID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get penalty IDs for obligation: %w", err)
	}

	penalties, err := r.getPenalties(ctx, penaltyIDs)
	if err != nil {
		return nil, err
	}

	return &GetPenaltiesForObligationOutput{
		Penalties: penalties,
	}, nil
}

// GetPenaltiesForUser retrieves every penalty where the user owes or is owed
func (r *redisRepository) GetPenaltiesForUser(ctx context.Context, input *GetPenaltiesForUserInput) (*GetPenaltiesForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	fromCmd := pipe.ZRange(ctx, userPenaltiesKey(input.UserID, "from"), 0, -1)
	toCmd := pipe.ZRange(ctx, userPenaltiesKey(input.UserID, "to"), 0, -1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get penalty IDs for user: %w", err)
	}

	// A self penalty sits in both sets
	seen := make(map[string]bool)
	var penaltyIDs []string
	for _, id := range append(fromCmd.Val(), toCmd.Val()...) {
		if !seen[id] {
			seen[id] = true
			penaltyIDs = append(penaltyIDs, id)
		}
	}

	penalties, err := r.getPenalties(ctx, penaltyIDs)
	if err != nil {
		return nil, err
	}

	return &GetPenaltiesForUserOutput{
		Penalties: penalties,
	}, nil
}

// DeletePenalty removes a penalty, its index entries and its period claim
func (r *redisRepository) DeletePenalty(ctx context.Context, input *DeletePenaltyInput) error {
	if input == nil || input.PenaltyID == "" {
		return errors.New("input and penalty ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, penaltyKey(input.PenaltyID)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrPenaltyNotFound
		}
		return fmt.Errorf("failed to get penalty: %w", err)
	}

	var record models.PenaltyRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return fmt.Errorf("failed to unmarshal penalty: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, penaltyKey(record.ID))
		if record.ObligationID != "" {
			pipe.ZRem(ctx, obligationPenaltiesKey(record.ObligationID), record.ID)
		}
		pipe.ZRem(ctx, userPenaltiesKey(record.FromUserID, "from"), record.ID)
		pipe.ZRem(ctx, userPenaltiesKey(record.ToUserID, "to"), record.ID)
		if record.Automatic() {
			pipe.Del(ctx, claimKey(record.ObligationID, record.PeriodKey, record.ToUserID))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete penalty: %w", err)
	}

	return nil
}

// getPenalties fetches records in one pipeline, oldest first
func (r *redisRepository) getPenalties(ctx context.Context, penaltyIDs []string) ([]*models.PenaltyRecord, error) {
	if len(penaltyIDs) == 0 {
		return []*models.PenaltyRecord{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(penaltyIDs))
	for i, penaltyID := range penaltyIDs {
		commands[i] = pipe.Get(ctx, penaltyKey(penaltyID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get penalties: %w", err)
	}

	penalties := make([]*models.PenaltyRecord, 0, len(penaltyIDs))
	for i, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Penalty was deleted between getting the IDs and fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get penalty %s: %w", penaltyIDs[i], err)
		}

		var record models.PenaltyRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal penalty %s: %w", penaltyIDs[i], err)
		}

		penalties = append(penalties, &record)
	}

	sortPenalties(penalties)
	return penalties, nil
}

func sortPenalties(penalties []*models.PenaltyRecord) {
	sort.SliceStable(penalties, func(i, j int) bool {
		if !penalties[i].CreatedAt.Equal(penalties[j].CreatedAt) {
			return penalties[i].CreatedAt.Before(penalties[j].CreatedAt)
		}
		return penalties[i].ID < penalties[j].ID
	})
}

func penaltyKey(penaltyID string) string {
	return fmt.Sprintf("%s%s", penaltyKeyPrefix, penaltyID)
}

func obligationPenaltiesKey(obligationID string) string {
	return fmt.Sprintf("%s%s", obligationPenaltiesPrefix, obligationID)
}

func userPenaltiesKey(userID, side string) string {
	return fmt.Sprintf("%s%s:%s", userPenaltiesKeyPrefix, userID, side)
}

func claimKey(obligationID, periodKey, toUserID string) string {
	return fmt.Sprintf("%s%s:%s:%s", penaltyPeriodClaimKeyPrefix, obligationID, periodKey, toUserID)
}
