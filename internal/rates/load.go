package rates

import (
	"fmt"

	"github.com/innovationlabs/trackify/internal/config"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

var Module = fx.Module("rates",
	fx.Provide(Load),
)

// Load builds the rate table from defaults, optionally overridden by a yaml
// file (RATES_FILE). All amounts are centavos.
func Load(cfg config.Config) (*Table, error) {
	v := viper.New()
	setDefaults(v)

	if cfg.RatesFile != "" {
		v.SetConfigFile(cfg.RatesFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read rates file: %w", err)
		}
	}

	t := &Table{
		hourly: map[string]int64{
			HourlySoldering:    v.GetInt64("hourly.soldering"),
			HourlyPrinterPower: v.GetInt64("hourly.printer_power"),
		},
		filamentSpool: map[FilamentType]int64{
			FilamentPLA: v.GetInt64("filament.pla"),
			FilamentABS: v.GetInt64("filament.abs"),
		},
		perPage: map[pageKey]int64{
			{PaperA4, ColorBlackWhite}:     v.GetInt64("printing.black_white.a4"),
			{PaperA3, ColorBlackWhite}:     v.GetInt64("printing.black_white.a3"),
			{PaperLetter, ColorBlackWhite}: v.GetInt64("printing.black_white.letter"),
			{PaperA4, ColorFull}:           v.GetInt64("printing.color.a4"),
			{PaperA3, ColorFull}:           v.GetInt64("printing.color.a3"),
			{PaperLetter, ColorFull}:       v.GetInt64("printing.color.letter"),
		},
		premiumSurcharge: map[PaperSize]int64{
			PaperA4:     v.GetInt64("printing.premium_paper.a4"),
			PaperA3:     v.GetInt64("printing.premium_paper.a3"),
			PaperLetter: v.GetInt64("printing.premium_paper.letter"),
		},
		bindingFee: v.GetInt64("printing.binding_fee"),
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func setDefaults(v *viper.Viper) {
	// Station rates: power ₱5/h, soldering ₱10/h.
	v.SetDefault("hourly.soldering", 1000)
	v.SetDefault("hourly.printer_power", 500)

	// Filament, per 1kg spool: PLA ₱1200, ABS ₱1350.
	v.SetDefault("filament.pla", 120000)
	v.SetDefault("filament.abs", 135000)

	// Document printing, per page.
	v.SetDefault("printing.black_white.a4", 200)
	v.SetDefault("printing.black_white.a3", 400)
	v.SetDefault("printing.black_white.letter", 200)
	v.SetDefault("printing.color.a4", 500)
	v.SetDefault("printing.color.a3", 1000)
	v.SetDefault("printing.color.letter", 500)
	v.SetDefault("printing.premium_paper.a4", 200)
	v.SetDefault("printing.premium_paper.a3", 300)
	v.SetDefault("printing.premium_paper.letter", 200)

	// Flat per-document binding fee: ₱50.
	v.SetDefault("printing.binding_fee", 5000)
}

func (t *Table) validate() error {
	for kind, rate := range t.hourly {
		if rate < 0 {
			return fmt.Errorf("negative hourly rate for %q", kind)
		}
	}
	for ft, price := range t.filamentSpool {
		if price < 0 {
			return fmt.Errorf("negative filament price for %q", ft)
		}
	}
	for key, rate := range t.perPage {
		if rate < 0 {
			return fmt.Errorf("negative page rate for %s/%s", key.Size, key.Mode)
		}
	}
	for size, rate := range t.premiumSurcharge {
		if rate < 0 {
			return fmt.Errorf("negative premium surcharge for %q", size)
		}
	}
	if t.bindingFee < 0 {
		return fmt.Errorf("negative binding fee")
	}
	return nil
}

// TableForTest builds a table from explicit values; tests only.
func TableForTest(hourly map[string]int64, filament map[FilamentType]int64, perPage map[[2]string]int64, premium map[PaperSize]int64, bindingFee int64) *Table {
	pp := make(map[pageKey]int64, len(perPage))
	for k, rate := range perPage {
		pp[pageKey{PaperSize(k[0]), ColorMode(k[1])}] = rate
	}
	return &Table{
		hourly:           hourly,
		filamentSpool:    filament,
		perPage:          pp,
		premiumSurcharge: premium,
		bindingFee:       bindingFee,
	}
}
