package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`  // Vegetable | Fruit | Grocery | Other
	UnitType string          `json:"unit_type"` // Kg | Lb | Box | Bunch | Piece
	Price    decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	UnitType string          `json:"unit_type"`
	Price    decimal.Decimal `json:"price"`
}
