package whispermel

import (
	"fmt"
	"math"
)

const stageProject = "project"

// projectToMel multiplies the power spectrogram (OutputFrames x
// NumFrequencyBins) by the filterbank (NumFrequencyBins x NumMelFilters),
// producing OutputFrames x NumMelFilters mel energies.
func projectToMel(power [][]float32, filters [][]float32) [][]float32 {
	mel := make([][]float32, len(power))
	for i, row := range power {
		out := make([]float32, NumMelFilters)
		for m := 0; m < NumMelFilters; m++ {
			var sum float32
			for k, p := range row {
				sum += p * filters[k][m]
			}
			out[m] = sum
		}
		mel[i] = out
	}
	return mel
}

// logMelFloor applies log10 with a floor: cells at or below floor become
// log10(floor). A NaN anywhere is a fatal NaNError.
func logMelFloor(mel [][]float32, floor float64) ([][]float32, error) {
	floor32 := float32(floor)
	logFloor := float32(math.Log10(floor))
	out := make([][]float32, len(mel))
	for i, row := range mel {
		o := make([]float32, len(row))
		for m, v := range row {
			if math.IsNaN(float64(v)) {
				return nil, newPipelineError(KindNaN, stageProject, fmt.Errorf("NaN at frame %d mel %d", i, m))
			}
			if v < floor32 {
				o[m] = logFloor
			} else {
				o[m] = float32(math.Log10(float64(v)))
			}
		}
		out[i] = o
	}
	return out, nil
}

// compressDynamicRange applies Whisper-style dynamic range compression:
// clip every cell to within rangeDB of the global max, then affinely
// rescale with (v+4)/4.
func compressDynamicRange(logMel [][]float32, rangeDB float64) [][]float32 {
	maxVal := float32(math.Inf(-1))
	for _, row := range logMel {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	floor := maxVal - float32(rangeDB)

	out := make([][]float32, len(logMel))
	for i, row := range logMel {
		o := make([]float32, len(row))
		for m, v := range row {
			if v < floor {
				v = floor
			}
			o[m] = (v + 4.0) / 4.0
		}
		out[i] = o
	}
	return out
}

// transposeFlatten turns a OutputFrames x NumMelFilters matrix into a
// flat NumMelFilters x OutputFrames row-major buffer: data[m*OutputFrames+t],
// mel-major, frame-minor.
func transposeFlatten(frameMajor [][]float32) []float32 {
	flat := make([]float32, NumMelFilters*OutputFrames)
	for t, row := range frameMajor {
		for m, v := range row {
			flat[m*OutputFrames+t] = v
		}
	}
	return flat
}
