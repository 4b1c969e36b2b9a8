package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput flags a measurement or price outside its valid range.
// Callers should check with errors.Is before starting a calculation.
var ErrInvalidInput = errors.New("invalid input")

// PriceCatalog holds the unit prices used to cost a renovation job.
// Prices are in currency units per square metre, except Baseboard which is
// per linear metre. LaborRate is a fraction of the material subtotal
// added on top as labor cost.
type PriceCatalog struct {
	WallCovering float64 `json:"wall_covering"` // per m² of net wall area
	Floor        float64 `json:"floor"`         // per m² of floor area
	Baseboard    float64 `json:"baseboard"`     // per m of perimeter
	Disposal     float64 `json:"disposal"`      // per m² of floor area
	LaborRate    float64 `json:"labor_rate"`    // fraction of material subtotal, 0..1
}

// DefaultCatalog returns the stock unit prices applied to a fresh estimate.
func DefaultCatalog() PriceCatalog {
	return PriceCatalog{
		WallCovering: 1200,
		Floor:        8000,
		Baseboard:    900,
		Disposal:     500,
		LaborRate:    0.20,
	}
}

// Validate checks that all unit prices are non-negative and the labor rate
// is a valid fraction. The returned error wraps ErrInvalidInput.
func (p PriceCatalog) Validate() error {
	if p.WallCovering < 0 {
		return fmt.Errorf("%w: wall covering price must not be negative", ErrInvalidInput)
	}
	if p.Floor < 0 {
		return fmt.Errorf("%w: floor price must not be negative", ErrInvalidInput)
	}
	if p.Baseboard < 0 {
		return fmt.Errorf("%w: baseboard price must not be negative", ErrInvalidInput)
	}
	if p.Disposal < 0 {
		return fmt.Errorf("%w: disposal price must not be negative", ErrInvalidInput)
	}
	if p.LaborRate < 0 || p.LaborRate > 1 {
		return fmt.Errorf("%w: labor rate must be between 0 and 1", ErrInvalidInput)
	}
	return nil
}
