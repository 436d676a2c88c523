package dto

import "github.com/jhoicas/invoice-layout/internal/domain/layout"

// LayoutRecommendationDTO perfil sugerido para una cantidad de líneas.
type LayoutRecommendationDTO struct {
	ItemCount  int                   `json:"item_count"`
	Profile    layout.DensityProfile `json:"profile"`
	Typography layout.Typography     `json:"typography"`
}

// LayoutProfileDTO un perfil con sus parámetros tipográficos.
type LayoutProfileDTO struct {
	Profile    layout.DensityProfile `json:"profile"`
	Typography layout.Typography     `json:"typography"`
}
