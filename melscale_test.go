package whispermel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestHzMelRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hz := rapid.Float64Range(0, 8000).Draw(t, "hz")
		mel := hzToMelSlaney(hz)
		back := melToHzSlaney(mel)
		assert.InDelta(t, hz, back, 1e-4)
	})
}

func TestMelHzRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mel := rapid.Float64Range(0, 60).Draw(t, "mel")
		hz := melToHzSlaney(mel)
		back := hzToMelSlaney(hz)
		assert.InDelta(t, mel, back, 1e-5)
	})
}

func TestHzToMelSlaneyKnownPoints(t *testing.T) {
	assert.InDelta(t, 0.0, hzToMelSlaney(0), 1e-9)
	assert.InDelta(t, 15.0, hzToMelSlaney(1000), 1e-9)
}

func TestHzToMelSlaneyIsMonotonic(t *testing.T) {
	prev := hzToMelSlaney(0)
	for hz := 10.0; hz <= 8000; hz += 10 {
		m := hzToMelSlaney(hz)
		require.GreaterOrEqual(t, m, prev)
		prev = m
	}
}

func TestMelFilterbankShapeAndNonNegative(t *testing.T) {
	filters, err := melFilterbank(DefaultConfig(), TargetSampleRate)
	require.NoError(t, err)
	require.Len(t, filters, NumFrequencyBins)
	for _, row := range filters {
		require.Len(t, row, NumMelFilters)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, float32(0))
			assert.False(t, math.IsNaN(float64(v)))
		}
	}
}

func TestMelFilterbankEachFilterHasSupport(t *testing.T) {
	filters, err := melFilterbank(DefaultConfig(), TargetSampleRate)
	require.NoError(t, err)

	for m := 0; m < NumMelFilters; m++ {
		var sum float32
		for k := 0; k < NumFrequencyBins; k++ {
			sum += filters[k][m]
		}
		assert.Greaterf(t, sum, float32(0), "mel filter %d has zero total weight", m)
	}
}

func TestLinspaceEndpoints(t *testing.T) {
	pts := linspace(2, 10, 5)
	require.Len(t, pts, 5)
	assert.InDelta(t, 2.0, pts[0], 1e-12)
	assert.InDelta(t, 10.0, pts[4], 1e-12)
}
