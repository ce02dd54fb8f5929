package whispermel

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"
)

const stageResample = "resample"

// resampleTo16kHz converts mono samples at origRate to TargetSampleRate
// using a sinc-interpolating fixed-ratio resampler: 256 taps, 0.95x
// Nyquist cutoff, cubic lobe interpolation, Blackman-Harris 2-term
// window, 256x oversampling. If origRate already equals TargetSampleRate
// the input is returned unchanged, no resampler is constructed.
func resampleTo16kHz(samples []float32, origRate uint32) ([]float32, error) {
	if origRate == TargetSampleRate {
		logInfof("input already at %d Hz, resampler bypassed", TargetSampleRate)
		return samples, nil
	}
	if origRate == 0 {
		return nil, newPipelineError(KindResample, stageResample, fmt.Errorf("sample rate is zero"))
	}

	cfg := &resampling.Config{
		InputRate:  float64(origRate),
		OutputRate: float64(TargetSampleRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	}
	r, err := resampling.New(cfg)
	if err != nil {
		return nil, newPipelineError(KindResample, stageResample, fmt.Errorf("init: %w", err))
	}

	input := make([]float64, len(samples))
	for i, s := range samples {
		input[i] = float64(s)
	}

	out, err := r.Process(input)
	if err != nil {
		return nil, newPipelineError(KindResample, stageResample, fmt.Errorf("process: %w", err))
	}
	// Flush any samples still buffered inside the sinc kernel's delay
	// line. Fixed-input resamplers of this kind hold back a tail until a
	// following call (or an explicit flush with no new input) drains it.
	tail, err := r.Process(nil)
	if err != nil {
		return nil, newPipelineError(KindResample, stageResample, fmt.Errorf("flush: %w", err))
	}
	out = append(out, tail...)

	result := make([]float32, len(out))
	for i, v := range out {
		result[i] = float32(v)
	}
	return result, nil
}
