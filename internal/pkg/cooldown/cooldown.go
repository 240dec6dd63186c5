package cooldown

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "verifycode:cooldown:"

// Store 验证码重发冷却。同一邮箱+用途在冷却期内只允许发一封，
// 通过 SET NX EX 原子判断。
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Acquire 尝试获取发送许可。冷却期内返回 false。
func (s *Store) Acquire(ctx context.Context, email, purpose string) (bool, error) {
	key := keyPrefix + purpose + ":" + email
	return s.rdb.SetNX(ctx, key, 1, s.ttl).Result()
}

// Remaining 查询剩余冷却时间，不在冷却期返回 0。
func (s *Store) Remaining(ctx context.Context, email, purpose string) (time.Duration, error) {
	key := keyPrefix + purpose + ":" + email
	ttl, err := s.rdb.TTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

// Clear 清除冷却，发送失败后释放许可让用户立即重试
func (s *Store) Clear(ctx context.Context, email, purpose string) error {
	key := keyPrefix + purpose + ":" + email
	return s.rdb.Del(ctx, key).Err()
}
