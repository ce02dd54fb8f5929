package whispermel

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

const stageFFT = "fft"

// stft holds a real-FFT planner built once for FrameLength and reused
// across every frame. It is not safe for concurrent use by multiple
// goroutines sharing one instance; Extract creates one per invocation.
type stft struct {
	fft *fourier.FFT
	buf []float64 // scratch, reused per frame to avoid per-frame allocation
}

func newSTFT() *stft {
	return &stft{
		fft: fourier.NewFFT(FrameLength),
		buf: make([]float64, FrameLength),
	}
}

// powerSpectrum computes |FFT(frame)|^2 for every bin (NumFrequencyBins
// = FrameLength/2+1), DC to Nyquist, for every frame in frames.
func (s *stft) powerSpectrum(frames [][]float32) ([][]float32, error) {
	power := make([][]float32, len(frames))
	for t, frame := range frames {
		if len(frame) != FrameLength {
			return nil, newPipelineError(KindFFT, stageFFT, fmt.Errorf("frame %d has length %d, want %d", t, len(frame), FrameLength))
		}
		for i, v := range frame {
			s.buf[i] = float64(v)
		}
		coeffs := s.fft.Coefficients(nil, s.buf)
		if len(coeffs) != NumFrequencyBins {
			return nil, newPipelineError(KindFFT, stageFFT, fmt.Errorf("fft returned %d bins, want %d", len(coeffs), NumFrequencyBins))
		}
		row := make([]float32, NumFrequencyBins)
		for k, c := range coeffs {
			re, im := real(c), imag(c)
			row[k] = float32(re*re + im*im)
		}
		power[t] = row
	}
	return power, nil
}
