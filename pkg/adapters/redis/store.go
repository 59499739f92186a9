// Package redis provides a Redis-backed MachineStore, useful when several
// hosts share a library of automata.
package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/finitolabs/finito/pkg/automaton"
	"github.com/finitolabs/finito/pkg/codec/native"
	"github.com/finitolabs/finito/pkg/ports"
)

// Store implements ports.MachineStore using Redis. Machines are stored as
// native-schema JSON values; an index SET tracks the known names.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored machines.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "finito:machine:",
		ttl:    0, // no expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the machine to Redis.
func (s *Store) Save(ctx context.Context, name string, m *automaton.Machine) error {
	data, err := native.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode machine: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(name), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves and decodes the machine.
func (s *Store) Load(ctx context.Context, name string) (*automaton.Machine, error) {
	val, err := s.client.Get(ctx, s.key(name)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, ports.ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	m, err := native.Unmarshal([]byte(val))
	if err != nil {
		return nil, fmt.Errorf("failed to decode machine %q: %w", name, err)
	}
	return m, nil
}

// Delete removes the machine and its index entry.
func (s *Store) Delete(ctx context.Context, name string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(name))
	pipe.SRem(ctx, s.indexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns stored machine names, pruning index entries whose value has
// expired.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}

	var alive []string
	for _, name := range names {
		exists, err := s.client.Exists(ctx, s.key(name)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check machine %q: %w", name, err)
		}
		if exists == 0 {
			// Lazy cleanup of expired entries.
			_ = s.client.SRem(ctx, s.indexKey(), name).Err()
			continue
		}
		alive = append(alive, name)
	}
	return alive, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

var _ ports.MachineStore = (*Store)(nil)
