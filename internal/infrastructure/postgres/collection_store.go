package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoice-layout/internal/domain/repository"
)

var _ repository.CollectionStore = (*CollectionStore)(nil)

const collectionsDDL = `
	CREATE TABLE IF NOT EXISTS collections (
		name       TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// CollectionStore guarda cada colección como una fila JSONB en la tabla collections.
type CollectionStore struct {
	q Querier
}

// NewCollectionStore construye el adaptador. Pasar pool o tx (Querier).
func NewCollectionStore(q Querier) *CollectionStore {
	return &CollectionStore{q: q}
}

// EnsureSchema crea la tabla si no existe.
func (s *CollectionStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, collectionsDDL); err != nil {
		return fmt.Errorf("crear tabla collections: %w", err)
	}
	return nil
}

// Load devuelve el JSON de la colección o (nil, nil) si todavía no hay fila.
func (s *CollectionStore) Load(ctx context.Context, name string) (json.RawMessage, error) {
	var payload []byte
	err := s.q.QueryRow(ctx, `SELECT payload FROM collections WHERE name = $1`, name).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load collection %s: %w", name, err)
	}
	return json.RawMessage(payload), nil
}

// Replace sobrescribe la colección completa (upsert).
func (s *CollectionStore) Replace(ctx context.Context, name string, payload json.RawMessage) error {
	query := `
		INSERT INTO collections (name, payload, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, name, string(payload)); err != nil {
		return fmt.Errorf("replace collection %s: %w", name, err)
	}
	return nil
}
