package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-layout/internal/domain/entity"
	"github.com/jhoicas/invoice-layout/internal/infrastructure/kv"
)

func TestCatalog_OrdenadoYConIDs(t *testing.T) {
	products := catalog()

	require.Len(t, products, len(productNames))
	assert.Equal(t, "p-0", products[0].ID)
	assert.Equal(t, "Baby Mustard", products[0].Name)
	assert.Equal(t, "Zucchini Green", products[len(products)-1].Name)
	for _, p := range products {
		assert.True(t, p.Category.IsValid(), p.Name)
		assert.True(t, p.UnitType.IsValid(), p.Name)
		assert.True(t, p.Price.IsZero(), p.Name)
	}
}

func TestCatalog_Heuristicas(t *testing.T) {
	assert.Equal(t, entity.CategoryFruit, categoryOf("Ripe Mango"))
	assert.Equal(t, entity.CategoryFruit, categoryOf("Banana (Regular)"))
	assert.Equal(t, entity.CategoryVegetable, categoryOf("Okra-Indian"))

	assert.Equal(t, entity.UnitBox, unitOf("Garlic-Peeled (5lb Box )"))
	assert.Equal(t, entity.UnitLb, unitOf("Onion-Red 10 lb"))
	assert.Equal(t, entity.UnitPiece, unitOf("Lime"))
}

func TestSeedProducts_Idempotente(t *testing.T) {
	ctx := context.Background()
	repo, err := kv.NewProductRepo(ctx, kv.NewMemoryStore())
	require.NoError(t, err)

	n, err := seedProducts(ctx, repo, catalog())
	require.NoError(t, err)
	assert.Equal(t, len(productNames), n)

	n, err = seedProducts(ctx, repo, catalog())
	require.NoError(t, err)
	assert.Zero(t, n)
}
