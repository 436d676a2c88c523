package main

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/invoice-layout/internal/domain/entity"
	"github.com/jhoicas/invoice-layout/internal/domain/repository"
)

// productNames catálogo de la bodega de productos frescos.
var productNames = []string{
	"Baby Mustard", "Cabbage", "Cauliflower(12 head)", "Chilli (Finger Hot)", "Chilli (Small Thai)",
	"Chinese Okra (Tori)", "Coriander 60 Bunches", "Dosaki", "Dry Coconut (bag)", "Edo (Arvi)",
	"Egg Plant-Big", "Eggplant-Chinese", "Eggplant-Round", "Garlic-5 pack", "Ginger", "Green Mango",
	"Guava Big", "Karela Indian", "Lime", "Long Bean", "Long Squash (Indian)", "Long Squash (regular)",
	"Lychee", "Methi", "Mint", "Muli (Daikon)", "Okra-Indian", "Okra-Regular", "Onion-Red 10 lb",
	"Onion-Red 2 lb", "Onion-Red Pearl", "Onion Yellow 10 lb", "Onion-Yellow 2 lb", "Potato Idaho Red-5lb",
	"Potato Idaho White-5lb", "Potatao White Loose B# 1", "Potato Red Loose B #1", "Spinach Bunch",
	"Tindora", "Tomato (Plum)", "Tomato (Reg)", "Valor-flat", "Valor-long",
	"Banana (Regular)", "Bell Pepper Green", "Carrot 2 Lb", "Carrot Loose 50lbs", "Cucumber - Persian",
	"Cucumber- Regular", "Curry Leave", "Dill", "Drum Stick", "Garlic-Peeled (1lb box )",
	"Garlic-Peeled (5lb Box )", "Guar Bean", "Lemon", "Lettuce", "Mango Leaf", "Onion-Red 25 lb",
	"Onion (Green Fresh)", "Paan Leaf", "Papaya-Ripe", "Parval", "Ripe Mango", "Red Beets",
	"String Bean Green", "Sugarcane", "Sweet Potato-Red", "Turnips", "Zucchini Green",
}

// catalog productos con id p-<i> en orden alfabético (collation en-US), precio 0.
func catalog() []*entity.Product {
	names := append([]string(nil), productNames...)
	collate.New(language.AmericanEnglish).SortStrings(names)

	out := make([]*entity.Product, 0, len(names))
	for i, name := range names {
		out = append(out, &entity.Product{
			ID:       fmt.Sprintf("p-%d", i),
			Name:     name,
			Category: categoryOf(name),
			UnitType: unitOf(name),
		})
	}
	return out
}

func categoryOf(name string) entity.Category {
	n := strings.ToLower(name)
	if strings.Contains(n, "fruit") || strings.Contains(n, "mango") || strings.Contains(n, "banana") {
		return entity.CategoryFruit
	}
	return entity.CategoryVegetable
}

// unitOf "box" gana sobre "lb": "Garlic-Peeled (5lb Box )" se vende por caja.
func unitOf(name string) entity.UnitType {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "box"):
		return entity.UnitBox
	case strings.Contains(n, "lb"):
		return entity.UnitLb
	default:
		return entity.UnitPiece
	}
}

// seedProducts crea los productos que faltan y devuelve cuántos creó.
func seedProducts(ctx context.Context, repo repository.ProductRepository, products []*entity.Product) (int, error) {
	created := 0
	for _, p := range products {
		existing, err := repo.GetByID(ctx, p.ID)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		if err := repo.Create(ctx, p); err != nil {
			return created, fmt.Errorf("crear %s: %w", p.Name, err)
		}
		created++
	}
	return created, nil
}
