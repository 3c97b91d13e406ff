package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ping checks if the store is reachable and responsive.
// It returns an error if the connection fails.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get retrieves the value associated with the given key.
// Returns Nil if the key does not exist.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	result, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", Nil
	}
	return result, err
}

// Set sets the value for the given key with an optional TTL.
// If ttl is 0, the key will not expire.
func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes the given keys and returns the number of keys removed.
func (c *Client) Delete(ctx context.Context, keys ...string) (int64, error) {
	return c.client.Del(ctx, keys...).Result()
}

// TTL returns the remaining time to live of a key.
func (c *Client) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, key).Result()
}

// Incr increments the integer value of a key by one and returns the result.
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

// incrWindowScript atomically increments a counter and attaches a TTL on
// the first increment of the window. The expiry is what resets the window;
// the service never deletes these keys itself.
const incrWindowScript = `
	local current = redis.call("incr", KEYS[1])
	if current == 1 then
		redis.call("expire", KEYS[1], ARGV[1])
	end
	return current
`

// IncrWindow atomically increments the fixed-window counter for key and
// returns the post-increment count. The window length is installed as the
// key's TTL on the first increment, so concurrent callers always observe
// the counter of the same window.
func (c *Client) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	return c.client.Eval(ctx, incrWindowScript, []string{key}, int(window.Seconds())).Int64()
}
