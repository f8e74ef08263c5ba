package rates

import (
	"errors"
	"fmt"
)

// Rate keys for hourly services.
const (
	HourlySoldering    = "soldering"
	HourlyPrinterPower = "3d-printer-power"
)

type FilamentType string

const (
	FilamentPLA FilamentType = "PLA"
	FilamentABS FilamentType = "ABS"
)

type PaperSize string

const (
	PaperA4     PaperSize = "A4"
	PaperA3     PaperSize = "A3"
	PaperLetter PaperSize = "Letter"
)

type ColorMode string

const (
	ColorBlackWhite ColorMode = "black_white"
	ColorFull       ColorMode = "color"
)

type PaperType string

const (
	PaperStandard PaperType = "standard"
	PaperPremium  PaperType = "premium"
)

// ErrRateNotConfigured indicates a lookup for a kind/parameter combination the
// table has no entry for. This is a configuration bug, not a runtime condition,
// and is never defaulted to zero.
var ErrRateNotConfigured = errors.New("rate_not_configured")

type pageKey struct {
	Size PaperSize
	Mode ColorMode
}

// Table is the immutable pricing configuration. All amounts are centavos.
// It is built once at process start and never mutated afterwards.
type Table struct {
	hourly           map[string]int64
	filamentSpool    map[FilamentType]int64
	perPage          map[pageKey]int64
	premiumSurcharge map[PaperSize]int64
	bindingFee       int64
}

// HourlyRate returns the centavos-per-hour rate for a service kind.
func (t *Table) HourlyRate(kind string) (int64, error) {
	rate, ok := t.hourly[kind]
	if !ok {
		return 0, fmt.Errorf("%w: hourly rate %q", ErrRateNotConfigured, kind)
	}
	return rate, nil
}

// FilamentSpoolPrice returns the centavos price of a 1kg spool.
func (t *Table) FilamentSpoolPrice(ft FilamentType) (int64, error) {
	price, ok := t.filamentSpool[ft]
	if !ok {
		return 0, fmt.Errorf("%w: filament %q", ErrRateNotConfigured, ft)
	}
	return price, nil
}

// PageRate returns the centavos-per-page print rate for a size and color mode.
func (t *Table) PageRate(size PaperSize, mode ColorMode) (int64, error) {
	rate, ok := t.perPage[pageKey{Size: size, Mode: mode}]
	if !ok {
		return 0, fmt.Errorf("%w: page rate %s/%s", ErrRateNotConfigured, size, mode)
	}
	return rate, nil
}

// PremiumSurcharge returns the centavos-per-page premium paper surcharge.
func (t *Table) PremiumSurcharge(size PaperSize) (int64, error) {
	rate, ok := t.premiumSurcharge[size]
	if !ok {
		return 0, fmt.Errorf("%w: premium surcharge %q", ErrRateNotConfigured, size)
	}
	return rate, nil
}

// BindingFee returns the flat per-document binding fee in centavos.
func (t *Table) BindingFee() int64 {
	return t.bindingFee
}
