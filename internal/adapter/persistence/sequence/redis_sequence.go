package sequence

import (
	"context"
	"fmt"

	"repairdesk/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces sequence counters inside a shared Redis.
const KeyPrefix = "repairdesk:seq:"

// Incrementer is the part of a go-redis client the sequence needs.
// *redis.Client, *redis.ClusterClient and *redis.Ring all satisfy it.
type Incrementer interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisSequence hands out numbers with INCR. A missing key reads as zero, so
// the first number of every sequence is 1, and INCR is atomic server-side, so
// concurrent callers never share a number.
type RedisSequence struct {
	rdb Incrementer
}

var _ interfaces.ISequenceGenerator = (*RedisSequence)(nil)

func NewRedisSequence(rdb Incrementer) *RedisSequence {
	return &RedisSequence{rdb: rdb}
}

func (s *RedisSequence) Next(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("sequence name is required")
	}
	n, err := s.rdb.Incr(ctx, KeyPrefix+name).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", name, err)
	}
	return n, nil
}
