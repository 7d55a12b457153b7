package config

import (
	"path/filepath"
	"testing"

	"github.com/tapsave/tapsave/internal/model"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Period() != model.PeriodMonth {
		t.Errorf("Period() = %v, want month", cfg.Period())
	}
	if cfg.ActiveCurrency().Code != "USD" {
		t.Errorf("ActiveCurrency().Code = %s, want USD", cfg.ActiveCurrency().Code)
	}
	if Exists() {
		t.Error("Exists() = true before Save")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultPeriod = "week"
	cfg.Currency.Code = "CLP"
	cfg.Currency.Custom = []Currency{{Name: "Peso chileno", Code: "CLP", Symbol: "CLP$"}}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Period() != model.PeriodWeek {
		t.Errorf("Period() = %v, want week", got.Period())
	}
	if sym := got.ActiveCurrency().Symbol; sym != "CLP$" {
		t.Errorf("ActiveCurrency().Symbol = %q, want CLP$", sym)
	}
}

func TestDBPath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	cfg := DefaultConfig()
	if got, want := cfg.DBPath(), filepath.Join(dataHome, "tapsave", "tapsave.db"); got != want {
		t.Errorf("DBPath() = %s, want %s", got, want)
	}
	cfg.General.DBPath = "/tmp/custom.db"
	if got := cfg.DBPath(); got != "/tmp/custom.db" {
		t.Errorf("DBPath() = %s, want /tmp/custom.db", got)
	}
}

func TestActiveCurrency_UnknownFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Currency.Code = "XYZ"
	if got := cfg.ActiveCurrency(); got != DefaultCurrency {
		t.Errorf("ActiveCurrency() = %+v, want USD", got)
	}
}

func TestFormatAmount(t *testing.T) {
	dop, _ := LookupCurrency("dop", nil)
	eur, _ := LookupCurrency("EUR", nil)

	tests := []struct {
		v    float64
		cur  Currency
		want string
	}{
		{0, DefaultCurrency, "$0.00"},
		{12.5, DefaultCurrency, "$12.50"},
		{1234.5, dop, "RD$1,234.50"},
		{1234567.891, eur, "€1,234,567.89"},
		{-42, DefaultCurrency, "-$42.00"},
		{999.999, DefaultCurrency, "$1,000.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.v, tt.cur); got != tt.want {
			t.Errorf("FormatAmount(%v, %s) = %q, want %q", tt.v, tt.cur.Code, got, tt.want)
		}
	}
}
