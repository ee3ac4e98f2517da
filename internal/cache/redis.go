package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"arigatoo-utils/internal/config"
	"arigatoo-utils/internal/logging"
	"arigatoo-utils/pkg/models"
)

// RedisStore is the durable remote cache backend
type RedisStore struct {
	client *redis.Client
	logger logging.Logger
}

// NewRedisStore creates a Redis-backed store from configuration. Returns nil
// when no Redis URL is configured so callers can fall back to memory.
func NewRedisStore(cfg *config.Config) *RedisStore {
	if cfg.Redis.URL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logging.GetGlobalLogger().Warn("Invalid Redis URL, remote cache disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &RedisStore{
		client: redis.NewClient(opts),
		logger: logging.GetGlobalLogger(),
	}
}

// Get fetches a cached analysis result. Any Redis error reads as a miss.
func (s *RedisStore) Get(ctx context.Context, key string) (*models.AnalysisResult, bool) {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("Redis get failed, treating as cache miss", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		s.logger.Warn("Failed to decode cached analysis, treating as cache miss", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	}

	return &result, true
}

// Set stores an analysis result with the given TTL. Failures are logged and
// swallowed.
func (s *RedisStore) Set(ctx context.Context, key string, result *models.AnalysisResult, ttl time.Duration) {
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Error("Failed to encode analysis for caching", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		s.logger.Warn("Redis set failed, analysis not cached", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// IsAvailable pings Redis with a short deadline
func (s *RedisStore) IsAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err() == nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
