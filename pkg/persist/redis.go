package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/td0m/checklist/pkg/task"
)

var _ task.Persistor = &Redis{}

// Redis keeps the slot in a single string key
type Redis struct {
	client  *redis.Client
	key     string
	Timeout time.Duration
}

// DialRedis connects to the server at url (redis://host:port/db) and pings it
func DialRedis(url, key string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	r := NewRedis(redis.NewClient(opts), key)
	ctx, cancel := r.ctx()
	defer cancel()
	if err := r.client.Ping(ctx).Err(); err != nil {
		r.client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return r, nil
}

func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key, Timeout: DefaultTimeout}
}

func (r *Redis) Save(ts []task.Task) error {
	bs, err := Encode(ts)
	if err != nil {
		return err
	}
	ctx, cancel := r.ctx()
	defer cancel()
	if err := r.client.Set(ctx, r.key, bs, 0).Err(); err != nil {
		return fmt.Errorf("save key %q: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Load() ([]task.Task, error) {
	ctx, cancel := r.ctx()
	defer cancel()
	bs, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("key %q: %w", r.key, task.ErrNoData)
	}
	if err != nil {
		return nil, fmt.Errorf("load key %q: %w", r.key, err)
	}
	return Decode(bs)
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) String() string {
	return "redis:" + r.key
}

func (r *Redis) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.Timeout)
}
