package audio

import (
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Enabled {
		t.Error("Expected drone disabled by default")
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PARTICLE_FIELD_AUDIO_ENABLED", "true")
	t.Setenv("PARTICLE_FIELD_VOLUME", "250")
	t.Setenv("PARTICLE_FIELD_SAMPLE_RATE", "48000")

	cfg := LoadConfig()
	if !cfg.Enabled {
		t.Error("Expected Enabled from env")
	}
	if cfg.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Volume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

func TestLoadConfig_InvalidEnvKeepsDefaults(t *testing.T) {
	t.Setenv("PARTICLE_FIELD_AUDIO_ENABLED", "maybe")
	t.Setenv("PARTICLE_FIELD_VOLUME", "loud")
	t.Setenv("PARTICLE_FIELD_SAMPLE_RATE", "-1")

	cfg := LoadConfig()
	def := DefaultConfig()
	if cfg.Enabled != def.Enabled || cfg.Volume != def.Volume || cfg.SampleRate != def.SampleRate {
		t.Errorf("LoadConfig = %+v, want defaults %+v", cfg, def)
	}
}

func TestFrequencyFor(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     float64
	}{
		{"farthest", 14, 110},
		{"closest", 6, 165},
		{"middle", 10, 137.5},
		{"beyond far clamps", 30, 110},
		{"beyond near clamps", 1, 165},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrequencyFor(tt.distance); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FrequencyFor(%v) = %v, want %v", tt.distance, got, tt.want)
			}
		})
	}
}

func TestDrone_StreamBoundedAndGlides(t *testing.T) {
	d := NewDrone(DefaultConfig())
	start := d.freq

	d.SetDistance(6)
	samples := make([][2]float64, 4096)
	n, ok := d.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(samples))
	}

	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d = %v out of range or not mono", i, s)
		}
	}

	if d.freq <= start || d.freq >= d.Target() {
		t.Errorf("freq = %v, expected strictly between %v and %v", d.freq, start, d.Target())
	}
	if d.phase < 0 || d.phase >= 1 {
		t.Errorf("phase = %v outside [0,1)", d.phase)
	}
}

func TestDrone_StartDisabledIsNoop(t *testing.T) {
	d := NewDrone(DefaultConfig())
	if err := d.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if d.Running() {
		t.Error("Expected disabled drone to stay stopped")
	}
	d.Stop()
}
