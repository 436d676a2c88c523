package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/invoice-layout/internal/domain/repository"
	"github.com/jhoicas/invoice-layout/pkg/config"
)

const defaultKeyPrefix = "invoice-layout:"

var _ repository.CollectionStore = (*RedisCollectionStore)(nil)

// RedisCollectionStore guarda cada colección como un string JSON bajo <prefix><name>.
// Sin TTL: Redis es aquí el almacén primario, no una caché.
type RedisCollectionStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCollectionStore abre la conexión y verifica con PING.
func NewRedisCollectionStore(ctx context.Context, cfg config.RedisConfig) (*RedisCollectionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return NewRedisCollectionStoreWithClient(client, cfg.KeyPrefix), nil
}

// NewRedisCollectionStoreWithClient usa un cliente existente (tests o cliente compartido).
func NewRedisCollectionStoreWithClient(client *redis.Client, keyPrefix string) *RedisCollectionStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisCollectionStore{client: client, keyPrefix: keyPrefix}
}

// Key clave Redis de la colección name.
func (s *RedisCollectionStore) Key(name string) string {
	return s.keyPrefix + name
}

// Load devuelve el JSON de la colección o (nil, nil) si la clave no existe.
func (s *RedisCollectionStore) Load(ctx context.Context, name string) (json.RawMessage, error) {
	b, err := s.client.Get(ctx, s.Key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load collection %s: %w", name, err)
	}
	return json.RawMessage(b), nil
}

// Replace sobrescribe la colección completa.
func (s *RedisCollectionStore) Replace(ctx context.Context, name string, payload json.RawMessage) error {
	if err := s.client.Set(ctx, s.Key(name), []byte(payload), 0).Err(); err != nil {
		return fmt.Errorf("replace collection %s: %w", name, err)
	}
	return nil
}

// Close cierra el cliente Redis.
func (s *RedisCollectionStore) Close() error {
	return s.client.Close()
}
