package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPHP(t *testing.T) {
	assert.Equal(t, "₱0.00", FormatPHP(0))
	assert.Equal(t, "₱0.05", FormatPHP(5))
	assert.Equal(t, "₱192.50", FormatPHP(19250))
	assert.Equal(t, "₱850.00", FormatPHP(85000))
}

func TestHoursCost(t *testing.T) {
	assert.Equal(t, int64(1250), HoursCost(2.5, 500))
	assert.Equal(t, int64(1500), HoursCost(1.5, 1000))
	// Rounded to the nearest centavo, not truncated.
	assert.Equal(t, int64(333), HoursCost(1.0/3.0, 1000))
	assert.Equal(t, int64(667), HoursCost(2.0/3.0, 1000))
}

func TestFilamentCost(t *testing.T) {
	assert.Equal(t, int64(18000), FilamentCost(150, 120000))
	assert.Equal(t, int64(135000), FilamentCost(1000, 135000))
	assert.Equal(t, int64(12), FilamentCost(0.1, 120000))
}
