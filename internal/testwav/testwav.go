// Package testwav builds small WAV fixtures in memory for use by the
// whispermel test suite, so tests never depend on checked-in binary
// fixture files.
package testwav

import (
	"bytes"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteMono encodes mono float64 samples in [-1, 1] as a 16-bit PCM WAV
// at the given sample rate and returns the encoded bytes.
func WriteMono(sampleRate int, samples []float64) ([]byte, error) {
	return WriteMultiChannel(sampleRate, 1, [][]float64{samples})
}

// WriteMultiChannel encodes one or more interleaved-on-write channels of
// float64 samples in [-1, 1] as 16-bit PCM WAV. Every channel must have
// the same length.
func WriteMultiChannel(sampleRate, numChannels int, channels [][]float64) ([]byte, error) {
	n := len(channels[0])
	data := make([]int, n*numChannels)
	for i := 0; i < n; i++ {
		for c := 0; c < numChannels; c++ {
			data[i*numChannels+c] = int(math.Round(channels[c][i] * math.MaxInt16))
		}
	}

	buf := &bytes.Buffer{}
	enc := wav.NewEncoder(buf, sampleRate, 16, numChannels, 1)
	intBuf := &audio.IntBuffer{
		Format:         &audio.Format{SampleRate: sampleRate, NumChannels: numChannels},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(intBuf); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Silence returns n zero samples, the minimal fixture for testing the
// floor behaviour of the log-mel stage.
func Silence(n int) []float64 {
	return make([]float64, n)
}

// Tone returns n samples of a sine wave at freqHz sampled at sampleRate,
// scaled by amplitude.
func Tone(sampleRate int, freqHz, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freqHz*float64(i)/float64(sampleRate))
	}
	return out
}

// Square returns n samples of a square wave at freqHz, clipped to
// amplitude, useful for exercising the dynamic-range compression path
// with an intentionally clipped signal.
func Square(sampleRate int, freqHz, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		phase := math.Mod(freqHz*float64(i)/float64(sampleRate), 1.0)
		if phase < 0.5 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out
}

// WhiteNoise returns n pseudo-random samples in [-amplitude, amplitude]
// generated from a fixed linear congruential seed, so tests that need
// noise stay deterministic without pulling in math/rand state across
// runs.
func WhiteNoise(amplitude float64, n int) []float64 {
	out := make([]float64, n)
	state := uint32(12345)
	for i := range out {
		state = state*1664525 + 1013904223
		u := float64(state) / float64(math.MaxUint32)
		out[i] = amplitude * (2*u - 1)
	}
	return out
}
