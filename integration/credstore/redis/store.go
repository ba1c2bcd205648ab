package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/shopkit/core/credstore"
)

// ErrConnectionFailed indicates the Redis server could not be reached during
// Connect.
var ErrConnectionFailed = errors.New("failed to connect to redis")

// Config provides environment-based configuration for the Redis-backed
// credential store.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	KeyPrefix      string        `env:"CREDSTORE_REDIS_PREFIX" envDefault:"credstore:"`
}

// entry mirrors the credstore wire shape: value plus recorded scope options.
type entry struct {
	Value   string            `json:"value"`
	Options credstore.Options `json:"options"`
}

// Commands is the subset of Redis commands the store issues. Satisfied by
// *goredis.Client.
type Commands interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Get(ctx context.Context, key string) *goredis.StringCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// Store is a credstore.Store backed by Redis, for deployments where session
// identifiers must be shared across processes. Entries with a MaxAge expire
// via Redis TTL; others live until cleared.
type Store struct {
	client   Commands
	prefix   string
	defaults credstore.Options
}

// compile-time interface checks
var (
	_ credstore.Store = (*Store)(nil)
	_ Commands        = (*goredis.Client)(nil)
)

// New wraps an existing Redis client as a credential store.
func New(client Commands, cfg Config, opts ...credstore.Option) *Store {
	defaults := credstore.Options{}
	for _, opt := range opts {
		opt(&defaults)
	}
	return &Store{client: client, prefix: cfg.KeyPrefix, defaults: defaults}
}

// Connect creates a Redis client from the configured URL and verifies
// connectivity with a ping before returning it.
func Connect(ctx context.Context, cfg Config) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid connection URL: %w", ErrConnectionFailed, err)
	}

	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	return client, nil
}

// Set stores a value under name, honoring MaxAge as a Redis TTL.
func (s *Store) Set(ctx context.Context, name, value string, opts ...credstore.Option) error {
	if name == "" {
		return credstore.ErrEmptyName
	}

	options := s.defaults
	for _, opt := range opts {
		opt(&options)
	}

	data, err := json.Marshal(entry{Value: value, Options: options})
	if err != nil {
		return errors.Join(credstore.ErrPersistFailed, err)
	}

	var ttl time.Duration
	if options.MaxAge > 0 {
		ttl = time.Duration(options.MaxAge) * time.Second
	}

	if err := s.client.Set(ctx, s.prefix+name, data, ttl).Err(); err != nil {
		return errors.Join(credstore.ErrPersistFailed, err)
	}
	return nil
}

// Get returns the stored value or credstore.ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", credstore.ErrEmptyName
	}

	data, err := s.client.Get(ctx, s.prefix+name).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", credstore.ErrNotFound
		}
		return "", errors.Join(credstore.ErrPersistFailed, err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return "", errors.Join(credstore.ErrPersistFailed, err)
	}
	return e.Value, nil
}

// Clear removes the named entry. Clearing an absent entry is a no-op.
func (s *Store) Clear(ctx context.Context, name string) error {
	if name == "" {
		return credstore.ErrEmptyName
	}

	if err := s.client.Del(ctx, s.prefix+name).Err(); err != nil {
		return errors.Join(credstore.ErrPersistFailed, err)
	}
	return nil
}
