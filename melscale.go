package whispermel

import (
	"fmt"
	"math"
)

const (
	slaneyLinearSlope = 3.0 / 200.0 // mel per Hz below the 1kHz kink
	slaneyKinkMel     = 15.0        // mel value at the 1kHz kink
	slaneyKinkHz      = 1000.0
)

// slaneyLogScale is 27/ln(6.4), the slope of the logarithmic region of
// the Slaney mel scale above the 1kHz kink.
var slaneyLogScale = 27.0 / math.Log(6.4)

// filterWidthEpsilon guards the Slaney normalization divide against a
// degenerate (near-zero width) triangle.
const filterWidthEpsilon = 1e-9

// hzToMelSlaney converts a frequency in Hz to the Slaney mel scale:
// linear below 1kHz, logarithmic above.
func hzToMelSlaney(hz float64) float64 {
	if hz < slaneyKinkHz {
		return hz * slaneyLinearSlope
	}
	return slaneyKinkMel + math.Log(hz/slaneyKinkHz)*slaneyLogScale
}

// melToHzSlaney is the inverse of hzToMelSlaney.
func melToHzSlaney(mel float64) float64 {
	if mel < slaneyKinkMel {
		return mel / slaneyLinearSlope
	}
	return slaneyKinkHz * math.Exp((mel-slaneyKinkMel)/slaneyLogScale)
}

// linspace returns num evenly spaced points from start to end inclusive.
func linspace(start, end float64, num int) []float64 {
	if num == 0 {
		return nil
	}
	if num == 1 {
		return []float64{start}
	}
	step := (end - start) / float64(num-1)
	out := make([]float64, num)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// melFilterbank builds a NumFrequencyBins x NumMelFilters matrix of
// non-negative triangular weights on the Slaney mel scale, Slaney
// area-normalized. cfg.MinFrequencyHz/MaxFrequencyHz set the
// filterbank's frequency coverage; sampleRate sets the Nyquist frequency
// the FFT bins span.
func melFilterbank(cfg ExtractorConfig, sampleRate int) ([][]float32, error) {
	if NumMelFilters < 1 {
		return nil, newPipelineError(KindFilterbank, "melfilterbank", fmt.Errorf("num_mel_filters must be >= 1, got %d", NumMelFilters))
	}

	melMin := hzToMelSlaney(cfg.MinFrequencyHz)
	melMax := hzToMelSlaney(cfg.MaxFrequencyHz)

	melPoints := linspace(melMin, melMax, NumMelFilters+2)
	filterFreqsHz := make([]float64, len(melPoints))
	for i, m := range melPoints {
		filterFreqsHz[i] = melToHzSlaney(m)
	}

	nyquist := float64(sampleRate) / 2
	fftFreqsHz := linspace(0, nyquist, NumFrequencyBins)

	filters := make([][]float32, NumFrequencyBins)
	for k := range filters {
		filters[k] = make([]float32, NumMelFilters)
	}

	for m := 0; m < NumMelFilters; m++ {
		lower := filterFreqsHz[m]
		center := filterFreqsHz[m+1]
		upper := filterFreqsHz[m+2]

		lowerSpan := center - lower
		upperSpan := upper - center

		for k, f := range fftFreqsHz {
			var down, up float64
			if lowerSpan != 0 {
				down = (f - lower) / lowerSpan
			}
			if upperSpan != 0 {
				up = (upper - f) / upperSpan
			}
			v := math.Min(down, up)
			if v < 0 {
				v = 0
			}
			filters[k][m] = float32(v)
		}

		if cfg.UseSlaneyNorm {
			width := upper - lower
			var norm float64
			if width > filterWidthEpsilon {
				norm = 2.0 / width
			} else {
				logWarnf("mel filter %d has degenerate width %g, zeroing column", m, width)
			}
			for k := range filters {
				filters[k][m] *= float32(norm)
			}
		}
	}

	return filters, nil
}
