package whispermel

import "errors"

// Whisper-mandated constants. These are not configurable: the output
// contract (80x3000 log-mel) only holds for these exact values.
const (
	TargetSampleRate  = 16000
	FrameLength       = 400
	HopLength         = 160
	NumFrequencyBins  = FrameLength/2 + 1 // 201
	NumMelFilters     = 80
	ClipSamples       = 30 * TargetSampleRate // 480000
	OutputFrames      = 3000
	ReflectPadSamples = FrameLength / 2 // 200
)

// ExtractorConfig holds the knobs a caller is allowed to vary. All fields
// must be set; no silent defaults. The Whisper-mandated shape constants
// above are not part of this struct on purpose: they are not safe to vary
// and changing them would silently break the output contract.
type ExtractorConfig struct {
	MinFrequencyHz float64 // lower edge of the mel filterbank, e.g. 0
	MaxFrequencyHz float64 // upper edge of the mel filterbank, e.g. 8000
	UseSlaneyNorm  bool    // must be true; kept explicit rather than implied
	LogFloor       float64 // mel energy floor before log10, e.g. 1e-10
	DynamicRangeDB float64 // dynamic range window below global max, e.g. 8.0
}

// DefaultConfig returns the Whisper-reference configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MinFrequencyHz: 0,
		MaxFrequencyHz: float64(TargetSampleRate) / 2,
		UseSlaneyNorm:  true,
		LogFloor:       1e-10,
		DynamicRangeDB: 8.0,
	}
}

// validateConfig checks ExtractorConfig and returns an error on invalid or
// missing values.
func validateConfig(cfg ExtractorConfig) error {
	if cfg.MinFrequencyHz < 0 {
		return errors.New("config: MinFrequencyHz must be >= 0")
	}
	if cfg.MaxFrequencyHz <= cfg.MinFrequencyHz {
		return errors.New("config: MaxFrequencyHz must be > MinFrequencyHz")
	}
	if cfg.MaxFrequencyHz > float64(TargetSampleRate)/2 {
		return errors.New("config: MaxFrequencyHz must not exceed the Nyquist frequency (8000 Hz)")
	}
	if !cfg.UseSlaneyNorm {
		return errors.New("config: UseSlaneyNorm must be true; unnormalized filters are not supported")
	}
	if cfg.LogFloor <= 0 {
		return errors.New("config: LogFloor must be > 0")
	}
	if cfg.DynamicRangeDB <= 0 {
		return errors.New("config: DynamicRangeDB must be > 0")
	}
	return nil
}
