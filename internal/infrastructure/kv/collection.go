// Package kv implementa los repositorios sobre un CollectionStore:
// cada colección se lee completa una vez y se reescribe completa en cada cambio.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	"github.com/jhoicas/invoice-layout/internal/domain/repository"
)

// Collection caché en memoria de una colección id → T respaldada por un CollectionStore.
// Las lecturas no tocan el almacén; cada escritura serializa el mapa completo y lo
// reemplaza. Si el almacén falla, el estado en memoria no cambia.
type Collection[T any] struct {
	store repository.CollectionStore
	name  string

	mu    sync.RWMutex
	items map[string]T
}

// NewCollection crea la colección vacía; llamar Load antes de usarla.
func NewCollection[T any](store repository.CollectionStore, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name, items: make(map[string]T)}
}

// Load lee la colección del almacén. Una colección inexistente queda vacía.
func (c *Collection[T]) Load(ctx context.Context) error {
	raw, err := c.store.Load(ctx, c.name)
	if err != nil {
		return err
	}
	items := make(map[string]T)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("decode collection %s: %w", c.name, err)
		}
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// Get devuelve el registro id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	return v, ok
}

// Has indica si existe el registro id.
func (c *Collection[T]) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// All copia de los registros, sin orden definido.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		out = append(out, v)
	}
	return out
}

// Len cantidad de registros.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Put inserta o reemplaza id y persiste la colección.
func (c *Collection[T]) Put(ctx context.Context, id string, v T) error {
	return c.mutate(ctx, func(m map[string]T) bool {
		m[id] = v
		return true
	})
}

// PutIfAbsent inserta id solo si no existe; la comprobación y la escritura ocurren
// bajo el mismo lock. Devuelve false (sin escribir) si ya existía.
func (c *Collection[T]) PutIfAbsent(ctx context.Context, id string, v T) (bool, error) {
	inserted := false
	err := c.mutate(ctx, func(m map[string]T) bool {
		if _, ok := m[id]; ok {
			return false
		}
		m[id] = v
		inserted = true
		return true
	})
	return inserted && err == nil, err
}

// Delete elimina id y persiste. Devuelve false si no existía (sin escribir).
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	err := c.mutate(ctx, func(m map[string]T) bool {
		if _, ok := m[id]; !ok {
			return false
		}
		delete(m, id)
		found = true
		return true
	})
	return found, err
}

// mutate aplica fn sobre una copia; si fn informa cambios, persiste y publica la copia.
// El lock de escritura se mantiene durante Replace para serializar las escrituras.
func (c *Collection[T]) mutate(ctx context.Context, fn func(map[string]T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := maps.Clone(c.items)
	if next == nil {
		next = make(map[string]T)
	}
	if !fn(next) {
		return nil
	}
	payload, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.name, err)
	}
	if err := c.store.Replace(ctx, c.name, payload); err != nil {
		return err
	}
	c.items = next
	return nil
}
