package entity

import "github.com/shopspring/decimal"

// Category clasificación del producto en el catálogo.
type Category string

const (
	CategoryVegetable Category = "Vegetable"
	CategoryFruit     Category = "Fruit"
	CategoryGrocery   Category = "Grocery"
	CategoryOther     Category = "Other"
)

// IsValid indica si la categoría pertenece a la enumeración cerrada.
func (c Category) IsValid() bool {
	switch c {
	case CategoryVegetable, CategoryFruit, CategoryGrocery, CategoryOther:
		return true
	}
	return false
}

// AllCategories devuelve las categorías en orden de presentación.
func AllCategories() []Category {
	return []Category{CategoryVegetable, CategoryFruit, CategoryGrocery, CategoryOther}
}

// UnitType unidad de venta del producto.
type UnitType string

const (
	UnitKg    UnitType = "Kg"
	UnitLb    UnitType = "Lb"
	UnitBox   UnitType = "Box"
	UnitBunch UnitType = "Bunch"
	UnitPiece UnitType = "Piece"
)

// IsValid indica si la unidad pertenece a la enumeración cerrada.
func (u UnitType) IsValid() bool {
	switch u {
	case UnitKg, UnitLb, UnitBox, UnitBunch, UnitPiece:
		return true
	}
	return false
}

// AllUnitTypes devuelve las unidades en orden de presentación.
func AllUnitTypes() []UnitType {
	return []UnitType{UnitKg, UnitLb, UnitBox, UnitBunch, UnitPiece}
}

// Product representa un producto del catálogo.
// Las facturas copian nombre y precio al agregar la línea; no lo referencian en vivo.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	UnitType UnitType        `json:"unit_type"`
	Price    decimal.Decimal `json:"price"` // precio base, no negativo
}
