// Package layout: política de densidad de la factura impresa.
// Traduce la cantidad de líneas a un perfil (A, B, C, D) y el perfil a parámetros
// tipográficos. La tabla de umbrales es la única parte que razona sobre el ajuste a una página.
package layout

import (
	"fmt"
	"strings"

	"github.com/jhoicas/invoice-layout/internal/domain"
)

// DensityProfile perfil de densidad de la tabla de ítems.
type DensityProfile string

const (
	ProfileA DensityProfile = "A" // amplio
	ProfileB DensityProfile = "B" // estándar
	ProfileC DensityProfile = "C" // compacto, dos columnas
	ProfileD DensityProfile = "D" // ultra compacto, dos columnas
)

// ErrUnknownProfile perfil fuera de la enumeración cerrada.
var ErrUnknownProfile = fmt.Errorf("%w: perfil de densidad desconocido", domain.ErrPrecondition)

// Typography parámetros tipográficos de un perfil.
type Typography struct {
	FontSize     float64 `json:"font_size_pt"`  // puntos
	RowHeight    float64 `json:"row_height_px"` // píxeles CSS (1/96 in)
	SplitColumns bool    `json:"split_columns"`
}

// Umbrales inclusivos: hasta N ítems -> perfil.
const (
	maxItemsSpacious = 15
	maxItemsStandard = 30
	maxItemsCompact  = 50
)

var typographyByProfile = map[DensityProfile]Typography{
	ProfileA: {FontSize: 11, RowHeight: 32, SplitColumns: false},
	ProfileB: {FontSize: 9, RowHeight: 22, SplitColumns: false},
	ProfileC: {FontSize: 8.5, RowHeight: 20, SplitColumns: true},
	ProfileD: {FontSize: 7, RowHeight: 16, SplitColumns: true},
}

// AllProfiles devuelve los cuatro perfiles, del más amplio al más denso.
func AllProfiles() []DensityProfile {
	return []DensityProfile{ProfileA, ProfileB, ProfileC, ProfileD}
}

// IsValid indica si el perfil pertenece a la enumeración.
func (p DensityProfile) IsValid() bool {
	_, ok := typographyByProfile[p]
	return ok
}

// String devuelve la letra del perfil.
func (p DensityProfile) String() string { return string(p) }

// ParseDensityProfile interpreta la selección del operador ("a", "C", " d ").
func ParseDensityProfile(s string) (DensityProfile, error) {
	p := DensityProfile(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
	}
	return p, nil
}

// RecommendDensity sugiere el perfil para itemCount líneas impresas.
// 0–15 A, 16–30 B, 31–50 C, 51+ D. Un conteo negativo se trata como 0.
func RecommendDensity(itemCount int) DensityProfile {
	switch {
	case itemCount <= maxItemsSpacious:
		return ProfileA
	case itemCount <= maxItemsStandard:
		return ProfileB
	case itemCount <= maxItemsCompact:
		return ProfileC
	default:
		return ProfileD
	}
}

// ResolveTypography devuelve los parámetros del perfil.
// Un perfil fuera de la enumeración es un error del llamador: no hay valor por defecto.
func ResolveTypography(p DensityProfile) (Typography, error) {
	t, ok := typographyByProfile[p]
	if !ok {
		return Typography{}, fmt.Errorf("%w: %q", ErrUnknownProfile, string(p))
	}
	return t, nil
}

// MustResolveTypography como ResolveTypography pero entra en pánico ante un perfil inválido.
func MustResolveTypography(p DensityProfile) Typography {
	t, err := ResolveTypography(p)
	if err != nil {
		panic(err)
	}
	return t
}
