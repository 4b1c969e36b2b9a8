package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioRoom() RoomMeasurement {
	return RoomMeasurement{Length: 5, Width: 4, Height: 2.5}
}

func scenarioPrices() PriceCatalog {
	return PriceCatalog{
		WallCovering: 1200,
		Floor:        8000,
		Baseboard:    900,
		Disposal:     500,
		LaborRate:    0.2,
	}
}

func TestCreateEstimateScenario(t *testing.T) {
	est := CreateEstimate(scenarioRoom(), scenarioPrices())

	require.Len(t, est.Items, 4)

	// Fixed line item order: wall covering, flooring, baseboard, disposal.
	assert.Equal(t, LabelWallCovering, est.Items[0].Label)
	assert.Equal(t, LabelFlooring, est.Items[1].Label)
	assert.Equal(t, LabelBaseboard, est.Items[2].Label)
	assert.Equal(t, LabelDisposal, est.Items[3].Label)

	assert.Equal(t, 45.0, est.Items[0].Quantity)
	assert.Equal(t, 20.0, est.Items[1].Quantity)
	assert.Equal(t, 18.0, est.Items[2].Quantity)
	assert.Equal(t, 20.0, est.Items[3].Quantity)

	assert.Equal(t, 54000.0, est.Items[0].Subtotal)
	assert.Equal(t, 160000.0, est.Items[1].Subtotal)
	assert.Equal(t, 16200.0, est.Items[2].Subtotal)
	assert.Equal(t, 10000.0, est.Items[3].Subtotal)

	assert.Equal(t, 240200.0, est.MaterialSubtotal)
	assert.InDelta(t, 48040.0, est.LaborCost, 1e-6)
	assert.InDelta(t, 288240.0, est.GrandTotal, 1e-6)
	assert.Equal(t, est.MaterialSubtotal+est.LaborCost, est.GrandTotal)
}

func TestCreateEstimateOpeningsExceedWalls(t *testing.T) {
	room := scenarioRoom()
	room.OpeningsArea = 50 // gross wall area is only 45

	est := CreateEstimate(room, scenarioPrices())

	require.Len(t, est.Items, 4)
	assert.Equal(t, 0.0, est.Items[0].Quantity, "net wall area should clamp to zero")
	assert.Equal(t, 0.0, est.Items[0].Subtotal)

	// Remaining subtotals are unaffected by openings.
	assert.Equal(t, 160000.0, est.Items[1].Subtotal)
	assert.Equal(t, 16200.0, est.Items[2].Subtotal)
	assert.Equal(t, 10000.0, est.Items[3].Subtotal)

	assert.Equal(t, 186200.0, est.MaterialSubtotal)
}

func TestCreateEstimateZeroLaborRate(t *testing.T) {
	prices := scenarioPrices()
	prices.LaborRate = 0

	est := CreateEstimate(scenarioRoom(), prices)

	assert.Equal(t, 0.0, est.LaborCost)
	assert.Equal(t, est.MaterialSubtotal, est.GrandTotal)
}

func TestCreateEstimateDisposalBilledPerFloorArea(t *testing.T) {
	est := CreateEstimate(scenarioRoom(), scenarioPrices())
	disposal := est.Items[3]
	assert.Equal(t, est.Items[1].Quantity, disposal.Quantity, "disposal quantity is the floor area")
	assert.Equal(t, "m²", disposal.Unit)
}

func TestCreateEstimateUnits(t *testing.T) {
	est := CreateEstimate(scenarioRoom(), scenarioPrices())
	assert.Equal(t, "m²", est.Items[0].Unit)
	assert.Equal(t, "m²", est.Items[1].Unit)
	assert.Equal(t, "m", est.Items[2].Unit)
}

func TestCreateEstimateIsPure(t *testing.T) {
	room := scenarioRoom()
	prices := scenarioPrices()

	first := CreateEstimate(room, prices)
	second := CreateEstimate(room, prices)

	assert.Equal(t, first, second, "same inputs must yield identical estimates")
}

func TestCreateEstimateZeroRoom(t *testing.T) {
	est := CreateEstimate(RoomMeasurement{}, scenarioPrices())
	assert.Equal(t, 0.0, est.MaterialSubtotal)
	assert.Equal(t, 0.0, est.LaborCost)
	assert.Equal(t, 0.0, est.GrandTotal)
}
