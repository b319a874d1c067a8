package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"maps"
	"slices"

	"github.com/redis/go-redis/v9"
)

const DefaultChangeChannel = "session:changes"

// RedisStore keeps session keys in Redis and announces every write on a
// pub/sub channel so other processes sharing the session can re-read it.
type RedisStore struct {
	Client  *redis.Client
	Channel string
}

func NewRedisStore(client *redis.Client, channel string) *RedisStore {
	if channel == "" {
		channel = DefaultChangeChannel
	}
	return &RedisStore{Client: client, Channel: channel}
}

func (s *RedisStore) Load(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	res, err := s.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}
	for i, v := range res {
		if str, ok := v.(string); ok {
			out[keys[i]] = str
		}
	}
	return out, nil
}

func (s *RedisStore) Save(ctx context.Context, values map[string]string) error {
	keys := slices.Sorted(maps.Keys(values))
	pairs := make([]interface{}, 0, len(values)*2)
	for _, key := range keys {
		pairs = append(pairs, key, values[key])
	}

	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.MSet(ctx, pairs...)
		return s.announce(ctx, pipe, keys)
	})
	if err != nil {
		return fmt.Errorf("redis save: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		return s.announce(ctx, pipe, keys)
	})
	if err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

func (s *RedisStore) announce(ctx context.Context, pipe redis.Pipeliner, keys []string) error {
	payload, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	pipe.Publish(ctx, s.Channel, payload)
	return nil
}

// Watch subscribes to the change channel. The subscription is confirmed
// before Watch returns.
func (s *RedisStore) Watch(ctx context.Context) (<-chan []string, error) {
	sub := s.Client.Subscribe(ctx, s.Channel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
	}

	out := make(chan []string, 8)
	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var keys []string
				if err := json.Unmarshal([]byte(msg.Payload), &keys); err != nil {
					log.Printf("Warning: [STORAGE] bad change notification %q: %v", msg.Payload, err)
					continue
				}
				select {
				case out <- keys:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
