package kv

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jhoicas/invoice-layout/internal/domain/repository"
)

var _ repository.CollectionStore = (*MemoryStore)(nil)

// MemoryStore almacén de colecciones en proceso. Se pierde al reiniciar.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemoryStore crea un almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

// Load devuelve una copia del JSON guardado o (nil, nil).
func (s *MemoryStore) Load(_ context.Context, name string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data[name]
	if !ok {
		return nil, nil
	}
	return append(json.RawMessage(nil), p...), nil
}

// Replace guarda una copia de payload.
func (s *MemoryStore) Replace(_ context.Context, name string, payload json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = append(json.RawMessage(nil), payload...)
	return nil
}
