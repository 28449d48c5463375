package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "token:"

// ErrTokenNotFound is returned when a token is missing or expired
var ErrTokenNotFound = errors.New("token not found")

// Config holds configuration for the Redis token repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed token repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateToken issues a new token with the given TTL
func (r *redisRepository) CreateToken(ctx context.Context, input *CreateTokenInput) (*CreateTokenOutput, error) {
	if input == nil || input.TTL <= 0 {
		return nil, errors.New("input and TTL cannot be empty")
	}

	tok := uuid.New().String()
	key := fmt.Sprintf("%s%s", tokenKeyPrefix, tok)
	if err := r.client.Set(ctx, key, "1", input.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &CreateTokenOutput{Token: tok}, nil
}

// ValidateToken checks that a token exists and has not expired
func (r *redisRepository) ValidateToken(ctx context.Context, input *ValidateTokenInput) error {
	if input == nil || input.Token == "" {
		return errors.New("input and token cannot be empty")
	}

	key := fmt.Sprintf("%s%s", tokenKeyPrefix, input.Token)
	if err := r.client.Get(ctx, key).Err(); err != nil {
		if err == redis.Nil {
			return ErrTokenNotFound
		}
		return fmt.Errorf("failed to look up token: %w", err)
	}

	return nil
}

// DeleteToken revokes a token
func (r *redisRepository) DeleteToken(ctx context.Context, input *DeleteTokenInput) error {
	if input == nil || input.Token == "" {
		return errors.New("input and token cannot be empty")
	}

	key := fmt.Sprintf("%s%s", tokenKeyPrefix, input.Token)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}
