package whispermel

import (
	"fmt"
	"unicode/utf8"
)

// Spectrogram is the output handoff record of the pipeline: an 80 x 3000
// log-mel matrix, mel-major row-major. Element at mel m, frame t lives
// at Data[m*NFrames+t].
type Spectrogram struct {
	Data    []float32
	NFrames int
	NMels   int
}

// StageObserver is invoked after each pipeline stage with the stage's
// name and the shape of the buffer it produced, letting callers assert
// per-stage invariants without re-deriving each stage's output by hand.
type StageObserver func(stage string, shape []int)

// Extract runs the full pipeline on the WAV file at path using the
// Whisper-reference configuration and returns the 80 x 3000 log-mel
// spectrogram.
func Extract(path string) (*Spectrogram, error) {
	return ExtractWithConfig(path, DefaultConfig(), nil)
}

// ExtractWithConfig runs the pipeline with a caller-supplied
// ExtractorConfig and an optional StageObserver.
func ExtractWithConfig(path string, cfg ExtractorConfig, observe StageObserver) (*Spectrogram, error) {
	if !utf8.ValidString(path) {
		return nil, newPipelineError(KindPath, "path", fmt.Errorf("path is not valid UTF-8"))
	}
	if err := validateConfig(cfg); err != nil {
		return nil, newPipelineError(KindConfig, "config", err)
	}
	if observe == nil {
		observe = func(string, []int) {}
	}

	mono, origRate, err := decodeWAV(path)
	if err != nil {
		return nil, err
	}
	observe("decode", []int{len(mono)})

	resampled, err := resampleTo16kHz(mono, origRate)
	if err != nil {
		return nil, err
	}
	observe("resample", []int{len(resampled)})

	padded := padAndFrame(resampled)
	observe("pad", []int{len(padded)})

	win := hannWindow(FrameLength)
	frames := frameAndWindow(padded, win)
	observe("frame", []int{len(frames), FrameLength})

	s := newSTFT()
	power, err := s.powerSpectrum(frames)
	if err != nil {
		return nil, err
	}
	observe("power", []int{len(power), NumFrequencyBins})

	filters, err := melFilterbank(cfg, TargetSampleRate)
	if err != nil {
		return nil, err
	}
	observe("filterbank", []int{NumFrequencyBins, NumMelFilters})

	mel := projectToMel(power, filters)
	observe("project", []int{len(mel), NumMelFilters})

	logMel, err := logMelFloor(mel, cfg.LogFloor)
	if err != nil {
		return nil, err
	}
	observe("log", []int{len(logMel), NumMelFilters})

	compressed := compressDynamicRange(logMel, cfg.DynamicRangeDB)
	observe("compress", []int{len(compressed), NumMelFilters})

	data := transposeFlatten(compressed)
	observe("transpose", []int{NumMelFilters, OutputFrames})

	return &Spectrogram{
		Data:    data,
		NFrames: OutputFrames,
		NMels:   NumMelFilters,
	}, nil
}
