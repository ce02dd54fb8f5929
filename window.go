package whispermel

import "math"

// hannWindow returns the periodic Hann window of length n:
// w[i] = 0.5 - 0.5*cos(2*pi*i/n), i in [0, n). This is the periodic
// form, using n rather than n-1 in the denominator.
func hannWindow(n int) []float32 {
	w := make([]float32, n)
	for i := 0; i < n; i++ {
		w[i] = float32(0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}
