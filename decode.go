package whispermel

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	wav "github.com/youpy/go-wav"
)

const stageDecode = "decode"

// i16Max is the positive maximum of a signed 16-bit sample, used as the
// normalization divisor (not 32768, so full-scale negative samples
// slightly exceed -1.0, matching the reference behavior).
const i16Max = 32767.0

// decodeWAV opens the WAV file at path, de-interleaves it into one sample
// per frame, and mixes any number of channels down to mono by arithmetic
// mean. It returns the mono samples normalized to roughly [-1, 1] and the
// file's native sample rate.
func decodeWAV(path string) (samples []float32, sampleRate uint32, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, newPipelineError(KindDecode, stageDecode, err)
	}
	defer f.Close()

	reader := wav.NewReader(f)
	format, err := reader.Format()
	if err != nil {
		return nil, 0, newPipelineError(KindDecode, stageDecode, fmt.Errorf("read format: %w", err))
	}
	if format.AudioFormat != 1 { // WAVE_FORMAT_PCM
		return nil, 0, newPipelineError(KindDecode, stageDecode, fmt.Errorf("unsupported audio format %d, want PCM", format.AudioFormat))
	}
	if format.BitsPerSample != 16 {
		return nil, 0, newPipelineError(KindDecode, stageDecode, fmt.Errorf("unsupported bit depth %d, want 16", format.BitsPerSample))
	}
	numChannels := int(format.NumChannels)
	if numChannels < 1 {
		return nil, 0, newPipelineError(KindDecode, stageDecode, fmt.Errorf("invalid channel count %d", numChannels))
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, newPipelineError(KindDecode, stageDecode, fmt.Errorf("read samples: %w", err))
	}

	bytesPerFrame := 2 * numChannels
	numFrames := len(raw) / bytesPerFrame
	mono := make([]float32, numFrames)
	for i := 0; i < numFrames; i++ {
		base := i * bytesPerFrame
		var sum float32
		for c := 0; c < numChannels; c++ {
			off := base + c*2
			v := int16(binary.LittleEndian.Uint16(raw[off : off+2]))
			sum += float32(v) / i16Max
		}
		mono[i] = sum / float32(numChannels)
	}

	return mono, format.SampleRate, nil
}
