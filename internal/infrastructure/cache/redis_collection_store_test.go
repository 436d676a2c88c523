package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-layout/internal/infrastructure/cache"
)

func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedisCollectionStore_PrefijoPorDefecto(t *testing.T) {
	s := cache.NewRedisCollectionStoreWithClient(unreachableClient(), "")
	defer s.Close()
	assert.Equal(t, "invoice-layout:customers", s.Key("customers"))

	s2 := cache.NewRedisCollectionStoreWithClient(unreachableClient(), "acme:")
	defer s2.Close()
	assert.Equal(t, "acme:invoices", s2.Key("invoices"))
}

// Sin servidor, los errores se propagan envueltos con el nombre de la colección.
func TestRedisCollectionStore_ServidorInaccesible(t *testing.T) {
	s := cache.NewRedisCollectionStoreWithClient(unreachableClient(), "")
	defer s.Close()
	ctx := context.Background()

	_, err := s.Load(ctx, "products")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "load collection products")
	}
	err = s.Replace(ctx, "products", []byte(`{}`))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "replace collection products")
	}
}
