package eta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	est := Calculate(100, 50, now)
	assert.Equal(t, 120, est.EstimatedTimeMinutes)
	assert.Equal(t, now.Add(2*time.Hour), est.EstimatedArrival)

	// Zero or negative speed falls back to the default.
	est = Calculate(25, 0, now)
	assert.Equal(t, 30, est.EstimatedTimeMinutes)

	est = Calculate(25, -10, now)
	assert.Equal(t, 30, est.EstimatedTimeMinutes)

	// Rounded to the nearest minute.
	est = Calculate(10, 45, now)
	assert.Equal(t, 13, est.EstimatedTimeMinutes)
}

func TestLocksRequired(t *testing.T) {
	assert.Equal(t, 12, LocksRequired(10, 0.2))
	assert.Equal(t, 13, LocksRequired(10, 0.25))
	assert.Equal(t, 0, LocksRequired(0, 0.2))
	// Negative buffer falls back to the default 20%.
	assert.Equal(t, 12, LocksRequired(10, -1))
}

func TestSpeedRecommendation(t *testing.T) {
	assert.Equal(t, 50, SpeedRecommendation(100, 120))
	assert.Equal(t, 67, SpeedRecommendation(100, 90))
	assert.Equal(t, 0, SpeedRecommendation(100, 0))
}

func TestFormatRemaining(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2h 5m", FormatRemaining(now.Add(125*time.Minute), now))
	assert.Equal(t, "45m", FormatRemaining(now.Add(45*time.Minute), now))
	assert.Equal(t, "0m", FormatRemaining(now, now))
}
