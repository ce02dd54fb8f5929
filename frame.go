package whispermel

// frameAndWindow slices padded into overlapping frames of FrameLength
// samples at HopLength stride and applies win to each. padded must be
// ReflectPadSamples + ClipSamples + ReflectPadSamples samples long
// (480400), which yields 3001 raw frames; only the first OutputFrames
// (3000) are kept. The returned slice always has exactly OutputFrames
// rows of FrameLength samples.
func frameAndWindow(padded []float32, win []float32) [][]float32 {
	frames := make([][]float32, OutputFrames)
	for t := 0; t < OutputFrames; t++ {
		start := t * HopLength
		frame := make([]float32, FrameLength)
		for i := 0; i < FrameLength; i++ {
			frame[i] = padded[start+i] * win[i]
		}
		frames[t] = frame
	}
	return frames
}
