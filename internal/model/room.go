package model

import (
	"fmt"
	"math"
)

// RoomMeasurement holds the dimensions of a single room in metres.
// OpeningsArea is the combined area of doors and windows, subtracted
// from the wall surface before costing wall covering.
type RoomMeasurement struct {
	Length       float64 `json:"length"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	OpeningsArea float64 `json:"openings_area"` // m²
}

// FloorArea returns the floor surface in m².
func (r RoomMeasurement) FloorArea() float64 {
	return r.Length * r.Width
}

// BaseboardLength returns the linear run of trim in metres. This is the
// room perimeter; openings are not subtracted.
func (r RoomMeasurement) BaseboardLength() float64 {
	return 2 * (r.Length + r.Width)
}

// GrossWallArea returns the wall surface in m² before subtracting openings.
func (r RoomMeasurement) GrossWallArea() float64 {
	return r.BaseboardLength() * r.Height
}

// NetWallArea returns the wall surface in m² after subtracting openings.
// When the openings exceed the gross wall area the result clamps to zero;
// the clamp is a billing rule, not an error.
func (r RoomMeasurement) NetWallArea() float64 {
	return math.Max(0, r.GrossWallArea()-r.OpeningsArea)
}

// Validate checks that all dimensions are non-negative. The returned error
// wraps ErrInvalidInput.
func (r RoomMeasurement) Validate() error {
	if r.Length < 0 {
		return fmt.Errorf("%w: length must not be negative", ErrInvalidInput)
	}
	if r.Width < 0 {
		return fmt.Errorf("%w: width must not be negative", ErrInvalidInput)
	}
	if r.Height < 0 {
		return fmt.Errorf("%w: height must not be negative", ErrInvalidInput)
	}
	if r.OpeningsArea < 0 {
		return fmt.Errorf("%w: openings area must not be negative", ErrInvalidInput)
	}
	return nil
}
