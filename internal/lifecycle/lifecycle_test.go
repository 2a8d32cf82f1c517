package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lock-tracking-api-server/internal/apperrors"
	"lock-tracking-api-server/internal/models"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from    models.Status
		allowed []models.Status
	}{
		{models.StatusAvailable, []models.Status{models.StatusInTransit}},
		{models.StatusInTransit, []models.Status{models.StatusOnReverseTransit, models.StatusReached}},
		{models.StatusOnReverseTransit, []models.Status{models.StatusReached}},
		{models.StatusReached, []models.Status{models.StatusAvailable}},
	}

	all := []models.Status{
		models.StatusAvailable,
		models.StatusInTransit,
		models.StatusOnReverseTransit,
		models.StatusReached,
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, NextStatuses(tc.from))

		for _, target := range all {
			want := false
			for _, a := range tc.allowed {
				if a == target {
					want = true
				}
			}
			assert.Equal(t, want, CanTransition(tc.from, target),
				"%s -> %s", tc.from, target)
		}
	}
}

func TestValidateRejectsIllegalTransition(t *testing.T) {
	err := Validate(models.StatusAvailable, models.StatusReached)
	require.Error(t, err)
	assert.Equal(t, apperrors.InvalidTransition, apperrors.KindOf(err))

	err = Validate(models.StatusInTransit, models.StatusAvailable)
	require.Error(t, err)
	assert.Equal(t, apperrors.InvalidTransition, apperrors.KindOf(err))

	assert.NoError(t, Validate(models.StatusReached, models.StatusAvailable))
}

// The cycle property: without passing through REACHED, only IN_TRANSIT and
// ON_REVERSE_TRANSIT are reachable from AVAILABLE, and REACHED always exits
// back to AVAILABLE.
func TestReachableSetWithoutReached(t *testing.T) {
	visited := map[models.Status]bool{}
	frontier := []models.Status{models.StatusAvailable}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		for _, next := range NextStatuses(current) {
			if next == models.StatusReached || visited[next] {
				continue
			}
			visited[next] = true
			frontier = append(frontier, next)
		}
	}

	assert.Equal(t, map[models.Status]bool{
		models.StatusInTransit:        true,
		models.StatusOnReverseTransit: true,
	}, visited)

	assert.Equal(t, []models.Status{models.StatusAvailable}, NextStatuses(models.StatusReached))
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("IN_TRANSIT")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInTransit, status)

	_, err = ParseStatus("in_transit")
	require.Error(t, err)
	assert.Equal(t, apperrors.Validation, apperrors.KindOf(err))

	_, err = ParseStatus("LOST")
	require.Error(t, err)
}

func TestActionLabels(t *testing.T) {
	assert.Equal(t, "Start Transit", ActionLabel(models.StatusInTransit))
	assert.Equal(t, "Start Reverse", ActionLabel(models.StatusOnReverseTransit))
	assert.Equal(t, "Mark Reached", ActionLabel(models.StatusReached))
	assert.Equal(t, "Reset Available", ActionLabel(models.StatusAvailable))
}
