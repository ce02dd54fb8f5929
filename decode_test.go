package whispermel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexswarm/whisper-mel-go/internal/testwav"
)

func writeTempWAV(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.wav")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDecodeWAVMono(t *testing.T) {
	samples := testwav.Tone(16000, 440, 0.5, 1600)
	data, err := testwav.WriteMono(16000, samples)
	require.NoError(t, err)

	mono, rate, err := decodeWAV(writeTempWAV(t, data))
	require.NoError(t, err)
	assert.EqualValues(t, 16000, rate)
	require.Len(t, mono, 1600)
	assert.InDelta(t, samples[1], float64(mono[1]), 1e-3)
}

func TestDecodeWAVStereoMixesToMono(t *testing.T) {
	left := testwav.Tone(8000, 100, 1.0, 800)
	right := make([]float64, len(left))
	for i := range right {
		right[i] = left[i]
	}
	data, err := testwav.WriteMultiChannel(8000, 2, [][]float64{left, right})
	require.NoError(t, err)

	mono, rate, err := decodeWAV(writeTempWAV(t, data))
	require.NoError(t, err)
	assert.EqualValues(t, 8000, rate)
	require.Len(t, mono, 800)
	// Identical channels average to themselves.
	assert.InDelta(t, left[10], float64(mono[10]), 1e-3)
}

func TestDecodeWAVMissingFile(t *testing.T) {
	_, _, err := decodeWAV(filepath.Join(t.TempDir(), "does-not-exist.wav"))
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindDecode, kind)
}

func TestDecodeWAVSilence(t *testing.T) {
	data, err := testwav.WriteMono(16000, testwav.Silence(1000))
	require.NoError(t, err)

	mono, _, err := decodeWAV(writeTempWAV(t, data))
	require.NoError(t, err)
	for _, v := range mono {
		assert.Equal(t, float32(0), v)
	}
}
