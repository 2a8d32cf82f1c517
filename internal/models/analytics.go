package models

// Analytics is a derived per-lock summary; it is never persisted.
type Analytics struct {
	LockID             string  `json:"lockId"`
	LockNumber         string  `json:"lockNumber"`
	TotalTrips         int64   `json:"totalTrips"`
	TotalDistance      float64 `json:"totalDistance"`
	TotalDetentionTime int     `json:"totalDetentionTime"`
}
