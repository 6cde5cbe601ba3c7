package state

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore — реализация Store поверх Redis для многоэкземплярного
// развертывания. Состояние сериализуется в JSON; TTL задает срок жизни
// записи (0 — без истечения, как у MemoryStore).
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создаёт новый RedisStore.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(userID int64) (UserState, bool) {
	data, err := r.client.Get(context.Background(), r.key(userID)).Bytes()
	if err != nil {
		return UserState{}, false
	}
	var st UserState
	if err := json.Unmarshal(data, &st); err != nil {
		return UserState{}, false
	}
	return st, true
}

func (r *RedisStore) Set(userID int64, st UserState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), r.key(userID), data, r.ttl).Err()
}

func (r *RedisStore) Delete(userID int64) error {
	return r.client.Del(context.Background(), r.key(userID)).Err()
}

func (r *RedisStore) key(userID int64) string {
	return "bot:state:" + strconv.FormatInt(userID, 10)
}
