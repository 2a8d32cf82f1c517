// Package lifecycle holds the lock status state machine:
//
//	AVAILABLE -> IN_TRANSIT -> {ON_REVERSE_TRANSIT, REACHED}
//	ON_REVERSE_TRANSIT -> REACHED
//	REACHED -> AVAILABLE
//
// REACHED is not terminal: resetting to AVAILABLE re-enters the cycle.
package lifecycle

import (
	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/models"
)

var transitions = map[models.Status][]models.Status{
	models.StatusAvailable:        {models.StatusInTransit},
	models.StatusInTransit:        {models.StatusOnReverseTransit, models.StatusReached},
	models.StatusOnReverseTransit: {models.StatusReached},
	models.StatusReached:          {models.StatusAvailable},
}

var actionLabels = map[models.Status]string{
	models.StatusInTransit:        "Start Transit",
	models.StatusOnReverseTransit: "Start Reverse",
	models.StatusReached:          "Mark Reached",
	models.StatusAvailable:        "Reset Available",
}

// ParseStatus validates a wire status value.
func ParseStatus(s string) (models.Status, error) {
	switch models.Status(s) {
	case models.StatusAvailable, models.StatusInTransit, models.StatusOnReverseTransit, models.StatusReached:
		return models.Status(s), nil
	}
	return "", apperrors.Newf(apperrors.Validation, "unknown lock status %q", s)
}

// NextStatuses returns the allowed targets from current, in table order.
func NextStatuses(current models.Status) []models.Status {
	next := transitions[current]
	out := make([]models.Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether current -> target is in the transition table.
func CanTransition(current, target models.Status) bool {
	for _, s := range transitions[current] {
		if s == target {
			return true
		}
	}
	return false
}

// Validate returns an InvalidTransition error when current -> target is not
// allowed. Callers must leave the lock untouched on error.
func Validate(current, target models.Status) error {
	if !CanTransition(current, target) {
		return apperrors.Newf(apperrors.InvalidTransition,
			"cannot transition lock from %s to %s", current, target)
	}
	return nil
}

// ActionLabel is the human label for transitioning into target, as shown on
// the mobile client's action buttons.
func ActionLabel(target models.Status) string {
	return actionLabels[target]
}
