package model

// Line item labels, in the fixed order they appear on every estimate.
const (
	LabelWallCovering = "Wall covering"
	LabelFlooring     = "Flooring"
	LabelBaseboard    = "Baseboard"
	LabelDisposal     = "Disposal"
)

// LineItem is one billable category of an estimate.
type LineItem struct {
	Label     string  `json:"label"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"` // "m²" or "m"
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"` // Quantity * UnitPrice
}

// Estimate holds the costed result for one room. Items appear in the fixed
// order wall covering, flooring, baseboard, disposal; renderers rely on it.
// An Estimate is never modified after CreateEstimate returns it.
type Estimate struct {
	Items            []LineItem `json:"items"`
	MaterialSubtotal float64    `json:"material_subtotal"`
	LaborRate        float64    `json:"labor_rate"`
	LaborCost        float64    `json:"labor_cost"`
	GrandTotal       float64    `json:"grand_total"`
}

// CreateEstimate costs a room against a price catalog. It is a pure function:
// given inputs that pass Validate it always succeeds and has no side effects.
// Disposal is billed per m² of floor area.
func CreateEstimate(room RoomMeasurement, prices PriceCatalog) Estimate {
	items := []LineItem{
		{Label: LabelWallCovering, Quantity: room.NetWallArea(), Unit: "m²", UnitPrice: prices.WallCovering},
		{Label: LabelFlooring, Quantity: room.FloorArea(), Unit: "m²", UnitPrice: prices.Floor},
		{Label: LabelBaseboard, Quantity: room.BaseboardLength(), Unit: "m", UnitPrice: prices.Baseboard},
		{Label: LabelDisposal, Quantity: room.FloorArea(), Unit: "m²", UnitPrice: prices.Disposal},
	}

	var materialSubtotal float64
	for i := range items {
		items[i].Subtotal = items[i].Quantity * items[i].UnitPrice
		materialSubtotal += items[i].Subtotal
	}

	laborCost := materialSubtotal * prices.LaborRate

	return Estimate{
		Items:            items,
		MaterialSubtotal: materialSubtotal,
		LaborRate:        prices.LaborRate,
		LaborCost:        laborCost,
		GrandTotal:       materialSubtotal + laborCost,
	}
}
