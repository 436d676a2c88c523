// seed carga el catálogo inicial de productos en el almacén configurado (STORE_DRIVER).
//
// Uso: go run ./cmd/seed
// Es idempotente: los productos cuyo id ya existe no se tocan.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/invoice-layout/internal/infrastructure/kv"
	"github.com/jhoicas/invoice-layout/pkg/config"
	"github.com/jhoicas/invoice-layout/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	store, closeStore, err := kv.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacén de colecciones")
	}
	defer closeStore()

	products, err := kv.NewProductRepo(ctx, store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar productos")
	}

	created, err := seedProducts(ctx, products, catalog())
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo")
	}
	log.Info().
		Str("driver", cfg.Store.Driver).
		Int("created", created).
		Int("catalog", len(productNames)).
		Msg("catálogo sembrado")
}
