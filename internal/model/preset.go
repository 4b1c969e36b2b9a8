package model

import "github.com/google/uuid"

// CatalogPreset is a named, reusable price catalog. Contractors typically
// keep one per material grade or supplier.
type CatalogPreset struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Prices PriceCatalog `json:"prices"`
}

// NewCatalogPreset creates a preset with a generated ID.
func NewCatalogPreset(name string, prices PriceCatalog) CatalogPreset {
	return CatalogPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Prices: prices,
	}
}
