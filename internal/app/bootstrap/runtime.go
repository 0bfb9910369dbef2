package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/redis/go-redis/v9"

	"clinicbot/internal/chat"
	appconfig "clinicbot/internal/config"
	"clinicbot/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildHistoryStore wires the chat transcript store when Redis is available.
// Without Redis the chat still works, it just keeps no history.
func BuildHistoryStore(client *redis.Client, cfg *appconfig.Config, logger *logging.Logger) *chat.HistoryStore {
	if client == nil || cfg == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	logger.Info("chat history enabled", "ttl", cfg.HistoryTTL, "max_turns", cfg.HistoryMaxTurns)
	return chat.NewHistoryStore(client, cfg.HistoryTTL, cfg.HistoryMaxTurns)
}
