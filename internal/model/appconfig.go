package model

// AppConfig holds application-wide preferences and default pricing.
type AppConfig struct {
	// Default unit prices applied when the app starts
	DefaultWallCovering float64 `json:"default_wall_covering"`
	DefaultFloor        float64 `json:"default_floor"`
	DefaultBaseboard    float64 `json:"default_baseboard"`
	DefaultDisposal     float64 `json:"default_disposal"`
	DefaultLaborRate    float64 `json:"default_labor_rate"`

	// Application preferences
	RecentPriceBooks []string `json:"recent_price_books"`
	Theme            string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultCatalog().
func DefaultAppConfig() AppConfig {
	defaults := DefaultCatalog()
	return AppConfig{
		DefaultWallCovering: defaults.WallCovering,
		DefaultFloor:        defaults.Floor,
		DefaultBaseboard:    defaults.Baseboard,
		DefaultDisposal:     defaults.Disposal,
		DefaultLaborRate:    defaults.LaborRate,
		RecentPriceBooks:    []string{},
		Theme:               "system",
	}
}

// Catalog builds a PriceCatalog value from the saved defaults. The result is
// an independent value; editing it never touches the config.
func (c AppConfig) Catalog() PriceCatalog {
	return PriceCatalog{
		WallCovering: c.DefaultWallCovering,
		Floor:        c.DefaultFloor,
		Baseboard:    c.DefaultBaseboard,
		Disposal:     c.DefaultDisposal,
		LaborRate:    c.DefaultLaborRate,
	}
}

// SetCatalog copies catalog prices into the config defaults.
func (c *AppConfig) SetCatalog(p PriceCatalog) {
	c.DefaultWallCovering = p.WallCovering
	c.DefaultFloor = p.Floor
	c.DefaultBaseboard = p.Baseboard
	c.DefaultDisposal = p.Disposal
	c.DefaultLaborRate = p.LaborRate
}
