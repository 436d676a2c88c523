// Package storage guarda copias de los PDF exportados (disco local o S3).
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/invoice-layout/internal/application/billing"
	"github.com/jhoicas/invoice-layout/internal/domain"
)

var _ billing.ExportArchive = (*FileSystemArchive)(nil)

// FileSystemArchive escribe cada exportación como archivo dentro de un directorio base.
type FileSystemArchive struct {
	dir string
}

// NewFileSystemArchive crea el directorio base si no existe.
func NewFileSystemArchive(dir string) (*FileSystemArchive, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage: directorio requerido: %w", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &FileSystemArchive{dir: dir}, nil
}

// Dir directorio base.
func (a *FileSystemArchive) Dir() string { return a.dir }

// Save escribe data en <dir>/<filename>. Sobrescribe si ya existe.
func (a *FileSystemArchive) Save(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkFileName(filename); err != nil {
		return err
	}
	path := filepath.Join(a.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("storage: escribir %s: %w", path, err)
	}
	return nil
}

// checkFileName rechaza nombres vacíos, con separadores o con "..".
func checkFileName(name string) error {
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("storage: nombre de archivo inválido %q: %w", name, domain.ErrInvalidInput)
	}
	return nil
}
