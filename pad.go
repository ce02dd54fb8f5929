package whispermel

// padAndFrame fixes samples to ClipSamples (30s at 16kHz) by truncating
// or zero-filling, then prepends and appends ReflectPadSamples zeros. The
// result is always ClipSamples + 2*ReflectPadSamples long (480400).
//
// The boundary pad is zero-fill rather than true sample reflection; this
// matches the observable contract of the reference implementation.
func padAndFrame(samples []float32) []float32 {
	fixed := make([]float32, ClipSamples)
	n := copy(fixed, samples)
	_ = n // remaining elements of fixed are already zero (shorter input)

	out := make([]float32, ReflectPadSamples+ClipSamples+ReflectPadSamples)
	copy(out[ReflectPadSamples:], fixed)
	return out
}
