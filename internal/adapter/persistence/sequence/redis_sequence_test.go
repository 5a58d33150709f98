package sequence

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counters mimics INCR on a map.
type counters struct {
	mu   sync.Mutex
	keys map[string]int64
	err  error
}

func (c *counters) Incr(_ context.Context, key string) *redis.IntCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return redis.NewIntResult(0, c.err)
	}
	if c.keys == nil {
		c.keys = map[string]int64{}
	}
	c.keys[key]++
	return redis.NewIntResult(c.keys[key], nil)
}

func TestRedisSequence_Next(t *testing.T) {
	ctx := context.Background()
	rdb := &counters{}
	seq := NewRedisSequence(rdb)

	for want := int64(1); want <= 3; want++ {
		n, err := seq.Next(ctx, "shop:main:ticket")
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	n, err := seq.Next(ctx, "shop:main:invoice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "sequences are independent")
	assert.Equal(t, int64(3), rdb.keys[KeyPrefix+"shop:main:ticket"])
}

func TestRedisSequence_ConcurrentCallersGetDistinctNumbers(t *testing.T) {
	seq := NewRedisSequence(&counters{})

	const callers = 50
	seen := make(chan int64, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := seq.Next(context.Background(), "shop:main:claim")
			if err == nil {
				seen <- n
			}
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[int64]bool{}
	for n := range seen {
		unique[n] = true
	}
	assert.Len(t, unique, callers)
}

func TestRedisSequence_Errors(t *testing.T) {
	down := errors.New("connection refused")
	seq := NewRedisSequence(&counters{err: down})

	_, err := seq.Next(context.Background(), "shop:main:ticket")
	assert.ErrorIs(t, err, down)

	_, err = NewRedisSequence(&counters{}).Next(context.Background(), "")
	assert.Error(t, err)
}
