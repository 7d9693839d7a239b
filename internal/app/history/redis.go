package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/supchaser/genbatch/internal/app/models"
	"github.com/supchaser/genbatch/internal/utils/logger"
	"go.uber.org/zap"
)

const entriesKey = "history:entries"

// RedisStore keeps history entries as JSON in a capped Redis list, newest
// first.
type RedisStore struct {
	client *redis.Client
	limit  int
}

func ConnectRedis(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 2,
		PoolTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func CreateRedisStore(client *redis.Client, limit int) *RedisStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &RedisStore{
		client: client,
		limit:  limit,
	}
}

func (s *RedisStore) Add(ctx context.Context, entry models.HistoryEntry) error {
	const funcName = "RedisStore.Add"

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, entriesKey, data)
	pipe.LTrim(ctx, entriesKey, 0, int64(s.limit-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push history entry: %w", err)
	}

	logger.Debug("history entry stored",
		zap.String("function", funcName),
		zap.String("entry_id", entry.ID),
		zap.String("run_id", entry.RunID),
		zap.Int("index", entry.Index),
	)

	return nil
}

func (s *RedisStore) List(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	const funcName = "RedisStore.List"

	if limit <= 0 || limit > s.limit {
		limit = s.limit
	}

	raw, err := s.client.LRange(ctx, entriesKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read history entries: %w", err)
	}

	entries := make([]models.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			logger.Warn("skipping malformed history entry",
				zap.String("function", funcName),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
