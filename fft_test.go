package whispermel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerSpectrumShape(t *testing.T) {
	s := newSTFT()
	frames := [][]float32{make([]float32, FrameLength), make([]float32, FrameLength)}
	power, err := s.powerSpectrum(frames)
	require.NoError(t, err)
	require.Len(t, power, 2)
	for _, row := range power {
		require.Len(t, row, NumFrequencyBins)
	}
}

func TestPowerSpectrumSilenceIsZero(t *testing.T) {
	s := newSTFT()
	frames := [][]float32{make([]float32, FrameLength)}
	power, err := s.powerSpectrum(frames)
	require.NoError(t, err)
	for _, v := range power[0] {
		assert.Equal(t, float32(0), v)
	}
}

func TestPowerSpectrumRejectsWrongFrameLength(t *testing.T) {
	s := newSTFT()
	_, err := s.powerSpectrum([][]float32{make([]float32, FrameLength-1)})
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindFFT, kind)
}

func TestPowerSpectrumDCBinMatchesSum(t *testing.T) {
	s := newSTFT()
	frame := make([]float32, FrameLength)
	for i := range frame {
		frame[i] = 1
	}
	power, err := s.powerSpectrum([][]float32{frame})
	require.NoError(t, err)
	// DC bin of an all-ones signal is FrameLength; power is its square.
	want := math.Pow(float64(FrameLength), 2)
	assert.InDelta(t, want, float64(power[0][0]), 1e-1)
}
