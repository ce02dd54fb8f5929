package whispermel

import (
	"errors"
	"fmt"
)

// Kind identifies a category of pipeline failure. Every failure that can
// surface from Extract carries one of these so callers at the ABI
// boundary can collapse it to a null result without string matching.
type Kind int

const (
	// KindPath means the supplied path could not be decoded as UTF-8.
	KindPath Kind = iota
	// KindConfig means the caller-supplied ExtractorConfig failed
	// validation.
	KindConfig
	// KindDecode means the WAV container could not be opened or is not
	// 16-bit PCM.
	KindDecode
	// KindResample means the sinc resampler failed to initialize or
	// process the buffer.
	KindResample
	// KindFFT means the real-FFT engine reported an error.
	KindFFT
	// KindNaN means a NaN reached the log stage.
	KindNaN
	// KindFilterbank means the mel filterbank parameters were invalid
	// (e.g. fewer than one mel filter requested).
	KindFilterbank
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "PathError"
	case KindConfig:
		return "ConfigError"
	case KindDecode:
		return "DecodeError"
	case KindResample:
		return "ResampleError"
	case KindFFT:
		return "FftError"
	case KindNaN:
		return "NaNError"
	case KindFilterbank:
		return "FilterbankError"
	default:
		return "UnknownError"
	}
}

// PipelineError wraps a stage failure with its taxonomy Kind and the
// stage name it occurred in, so callers can recover both via errors.As
// and still get a useful %v/%w chain from the standard library.
type PipelineError struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func newPipelineError(kind Kind, stage string, err error) *PipelineError {
	return &PipelineError{Kind: kind, Stage: stage, Err: err}
}

// KindOf extracts the Kind from err if it (or something it wraps) is a
// *PipelineError. The ok result is false for errors the pipeline never
// produced, e.g. a caller-supplied context cancellation.
func KindOf(err error) (Kind, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
