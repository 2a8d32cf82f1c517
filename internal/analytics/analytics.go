// Package analytics aggregates per-lock trip totals. The computation is a
// pure function: same inputs, same outputs, input lock order preserved.
package analytics

import "lock-tracking-api-server/internal/models"

// Aggregate sums trip count, distance and detention minutes per lock. Missing
// per-trip distance or detention counts as zero. Trips referencing unknown
// locks are ignored; a lock with no trips yields a zero row.
func Aggregate(locks []models.Lock, trips []models.Trip) []models.Analytics {
	byLock := make(map[string][]models.Trip, len(locks))
	for _, t := range trips {
		byLock[t.LockID] = append(byLock[t.LockID], t)
	}

	out := make([]models.Analytics, 0, len(locks))
	for _, l := range locks {
		row := models.Analytics{LockID: l.ID, LockNumber: l.LockNumber}
		for _, t := range byLock[l.ID] {
			row.TotalTrips++
			if t.DistanceKm != nil {
				row.TotalDistance += *t.DistanceKm
			}
			if t.DetentionMins != nil {
				row.TotalDetentionTime += *t.DetentionMins
			}
		}
		out = append(out, row)
	}
	return out
}
