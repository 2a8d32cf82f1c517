// Package eta holds the trip planning formulas used by the analytics screen.
package eta

import (
	"fmt"
	"math"
	"time"
)

// DefaultSpeedKmh is assumed when the caller gives no average speed.
const DefaultSpeedKmh = 50.0

// DefaultSafetyBuffer is the fractional headroom added to lock requirements.
const DefaultSafetyBuffer = 0.2

type Estimate struct {
	EstimatedTimeMinutes int       `json:"estimatedTimeMinutes"`
	EstimatedArrival     time.Time `json:"estimatedArrival"`
}

// Calculate estimates trip duration and arrival for a distance at an average
// speed. A non-positive speed falls back to DefaultSpeedKmh.
func Calculate(distanceKm, averageSpeedKmh float64, now time.Time) Estimate {
	if averageSpeedKmh <= 0 {
		averageSpeedKmh = DefaultSpeedKmh
	}
	minutes := int(math.Round(distanceKm / averageSpeedKmh * 60))
	return Estimate{
		EstimatedTimeMinutes: minutes,
		EstimatedArrival:     now.Add(time.Duration(minutes) * time.Minute),
	}
}

// LocksRequired estimates how many locks cover numberOfTrips with a safety
// buffer, rounded up.
func LocksRequired(numberOfTrips int, safetyBuffer float64) int {
	if safetyBuffer < 0 {
		safetyBuffer = DefaultSafetyBuffer
	}
	return int(math.Ceil(float64(numberOfTrips) * (1 + safetyBuffer)))
}

// SpeedRecommendation returns the average speed (km/h, rounded) needed to
// cover distanceKm within targetTimeMinutes.
func SpeedRecommendation(distanceKm float64, targetTimeMinutes int) int {
	if targetTimeMinutes <= 0 {
		return 0
	}
	return int(math.Round(distanceKm / float64(targetTimeMinutes) * 60))
}

// FormatRemaining renders the time until arrival as "2h 5m" or "45m".
func FormatRemaining(arrival, now time.Time) string {
	d := arrival.Sub(now)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
