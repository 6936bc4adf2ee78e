package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps documents as JSON values under prefix+name.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(name string) string { return s.prefix + name }

func (s *RedisStore) Put(ctx context.Context, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", doc.Name, err)
	}

	if err := s.client.Set(ctx, s.key(doc.Name), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", doc.Name, err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, name string) (Document, error) {
	raw, err := s.client.Get(ctx, s.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Document{}, ErrNotFound
	}

	if err != nil {
		return Document{}, fmt.Errorf("redis get %s: %w", name, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("decode document %s: %w", name, err)
	}

	return doc, nil
}
