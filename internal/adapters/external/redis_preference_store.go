package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/pkg/errors"
)

const redisPreferencePrefix = "weatherwidget:pref:"

// RedisPreferenceStoreAdapter implements the PreferenceStore port using Redis
type RedisPreferenceStoreAdapter struct {
	client *redis.Client
}

// NewRedisPreferenceStoreAdapter creates a new Redis preference store and verifies the connection
func NewRedisPreferenceStoreAdapter(config *config.RedisConfig) (*RedisPreferenceStoreAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return &RedisPreferenceStoreAdapter{
		client: client,
	}, nil
}

// Get retrieves a preference from Redis
func (r *RedisPreferenceStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("preference key cannot be empty")
	}

	val, err := r.client.Get(ctx, redisPreferencePrefix+key).Result()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return "", errors.NewNotFoundError("preference not found")
		}
		return "", errors.NewStorageError("redis get operation failed", err)
	}

	return val, nil
}

// Set stores a preference in Redis without expiry
func (r *RedisPreferenceStoreAdapter) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	if err := r.client.Set(ctx, redisPreferencePrefix+key, value, 0).Err(); err != nil {
		return errors.NewStorageError("redis set operation failed", err)
	}

	return nil
}

// Close closes the Redis client connection
func (r *RedisPreferenceStoreAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisPreferenceStoreAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("Redis ping failed", err)
	}
	return nil
}
