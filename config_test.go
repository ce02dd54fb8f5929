package whispermel

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := validateConfig(DefaultConfig()); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		cfg  ExtractorConfig
	}{
		{"negative min", ExtractorConfig{MinFrequencyHz: -1, MaxFrequencyHz: 8000, UseSlaneyNorm: true, LogFloor: 1e-10, DynamicRangeDB: 8}},
		{"max below min", ExtractorConfig{MinFrequencyHz: 100, MaxFrequencyHz: 50, UseSlaneyNorm: true, LogFloor: 1e-10, DynamicRangeDB: 8}},
		{"max above nyquist", ExtractorConfig{MinFrequencyHz: 0, MaxFrequencyHz: 9000, UseSlaneyNorm: true, LogFloor: 1e-10, DynamicRangeDB: 8}},
		{"slaney norm disabled", ExtractorConfig{MinFrequencyHz: 0, MaxFrequencyHz: 8000, UseSlaneyNorm: false, LogFloor: 1e-10, DynamicRangeDB: 8}},
		{"zero floor", ExtractorConfig{MinFrequencyHz: 0, MaxFrequencyHz: 8000, UseSlaneyNorm: true, LogFloor: 0, DynamicRangeDB: 8}},
		{"zero range", ExtractorConfig{MinFrequencyHz: 0, MaxFrequencyHz: 8000, UseSlaneyNorm: true, LogFloor: 1e-10, DynamicRangeDB: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateConfig(tc.cfg); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestConstantsMatchWhisperContract(t *testing.T) {
	if NumFrequencyBins != 201 {
		t.Errorf("NumFrequencyBins = %d, want 201", NumFrequencyBins)
	}
	if ClipSamples != 480000 {
		t.Errorf("ClipSamples = %d, want 480000", ClipSamples)
	}
	if ReflectPadSamples != 200 {
		t.Errorf("ReflectPadSamples = %d, want 200", ReflectPadSamples)
	}
}
