package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/innovationlabs/trackify/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	table, err := Load(config.Config{})
	require.NoError(t, err)

	soldering, err := table.HourlyRate(HourlySoldering)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), soldering)

	power, err := table.HourlyRate(HourlyPrinterPower)
	require.NoError(t, err)
	assert.Equal(t, int64(500), power)

	pla, err := table.FilamentSpoolPrice(FilamentPLA)
	require.NoError(t, err)
	assert.Equal(t, int64(120000), pla)

	abs, err := table.FilamentSpoolPrice(FilamentABS)
	require.NoError(t, err)
	assert.Equal(t, int64(135000), abs)

	a4bw, err := table.PageRate(PaperA4, ColorBlackWhite)
	require.NoError(t, err)
	assert.Equal(t, int64(200), a4bw)

	a3color, err := table.PageRate(PaperA3, ColorFull)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), a3color)

	premiumA3, err := table.PremiumSurcharge(PaperA3)
	require.NoError(t, err)
	assert.Equal(t, int64(300), premiumA3)

	assert.Equal(t, int64(5000), table.BindingFee())
}

func TestLoad_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	content := []byte("hourly:\n  soldering: 1500\nfilament:\n  pla: 110000\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	table, err := Load(config.Config{RatesFile: path})
	require.NoError(t, err)

	soldering, err := table.HourlyRate(HourlySoldering)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), soldering)

	pla, err := table.FilamentSpoolPrice(FilamentPLA)
	require.NoError(t, err)
	assert.Equal(t, int64(110000), pla)

	// Untouched keys keep their defaults.
	power, err := table.HourlyRate(HourlyPrinterPower)
	require.NoError(t, err)
	assert.Equal(t, int64(500), power)
}

func TestLoad_RejectsNegativeRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hourly:\n  soldering: -5\n"), 0o644))

	_, err := Load(config.Config{RatesFile: path})
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(config.Config{RatesFile: "/nonexistent/rates.yaml"})
	assert.Error(t, err)
}

func TestTable_UnknownLookupsFail(t *testing.T) {
	table, err := Load(config.Config{})
	require.NoError(t, err)

	_, err = table.HourlyRate("laser-cutter")
	assert.ErrorIs(t, err, ErrRateNotConfigured)

	_, err = table.FilamentSpoolPrice("WOOD")
	assert.ErrorIs(t, err, ErrRateNotConfigured)

	_, err = table.PageRate("A5", ColorBlackWhite)
	assert.ErrorIs(t, err, ErrRateNotConfigured)

	_, err = table.PremiumSurcharge("A5")
	assert.ErrorIs(t, err, ErrRateNotConfigured)
}
