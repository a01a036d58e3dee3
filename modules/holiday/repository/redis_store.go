package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"equimeet/core/logger"
	"equimeet/modules/holiday/entity"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "holiday:"

// RedisStore keeps holiday cache entries in Redis, one JSON value per
// (country, year) key. Entries carry no TTL: stale data must survive
// as fallback for degraded mode.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(countryCode string, year int) string {
	return fmt.Sprintf("%s%s:%d", redisKeyPrefix, countryCode, year)
}

func (r *RedisStore) Get(ctx context.Context, countryCode string, year int) (*entity.CacheEntry, error) {
	data, err := r.client.Get(ctx, redisKey(countryCode, year)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Error("RedisStore:Get", err)
		return nil, err
	}

	var entry entity.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		logger.Error("RedisStore:Get:Unmarshal", err)
		return nil, err
	}
	return &entry, nil
}

func (r *RedisStore) Upsert(ctx context.Context, entry *entity.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		logger.Error("RedisStore:Upsert:Marshal", err)
		return err
	}

	if err := r.client.Set(ctx, redisKey(entry.CountryCode, entry.Year), data, 0).Err(); err != nil {
		logger.Error("RedisStore:Upsert", err)
		return err
	}
	return nil
}

func (r *RedisStore) Keys(ctx context.Context) ([]entity.CacheKey, error) {
	var keys []entity.CacheKey

	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		parts := strings.Split(strings.TrimPrefix(iter.Val(), redisKeyPrefix), ":")
		if len(parts) != 2 {
			continue
		}
		year, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		keys = append(keys, entity.CacheKey{CountryCode: parts[0], Year: year})
	}
	if err := iter.Err(); err != nil {
		logger.Error("RedisStore:Keys", err)
		return nil, err
	}

	return keys, nil
}
