package model

import "testing"

func TestDefaultAppConfigMatchesDefaultCatalog(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultCatalog()

	if cfg.DefaultWallCovering != defaults.WallCovering {
		t.Errorf("WallCovering mismatch: config=%f catalog=%f", cfg.DefaultWallCovering, defaults.WallCovering)
	}
	if cfg.DefaultFloor != defaults.Floor {
		t.Errorf("Floor mismatch: config=%f catalog=%f", cfg.DefaultFloor, defaults.Floor)
	}
	if cfg.DefaultLaborRate != defaults.LaborRate {
		t.Errorf("LaborRate mismatch: config=%f catalog=%f", cfg.DefaultLaborRate, defaults.LaborRate)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.RecentPriceBooks == nil {
		t.Error("RecentPriceBooks should not be nil")
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	cfg := DefaultAppConfig()

	p := PriceCatalog{
		WallCovering: 1500,
		Floor:        9000,
		Baseboard:    1100,
		Disposal:     650,
		LaborRate:    0.25,
	}
	cfg.SetCatalog(p)

	if got := cfg.Catalog(); got != p {
		t.Errorf("Catalog() = %+v, want %+v", got, p)
	}
}

func TestCatalogIsIndependentValue(t *testing.T) {
	cfg := DefaultAppConfig()
	c := cfg.Catalog()
	c.WallCovering = 99999

	if cfg.DefaultWallCovering == 99999 {
		t.Error("editing the returned catalog must not modify the config")
	}
}
