package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestUnreachableRedisReturnsErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewWithClient(client, time.Minute)
	defer c.Close()

	ctx := context.Background()

	assert.Error(t, c.Ping(ctx))

	_, found, err := c.Get(ctx, "key")
	assert.Error(t, err)
	assert.False(t, found)

	assert.Error(t, c.Set(ctx, "key", "value"))
}
