package audio

import (
	"os"
	"strconv"

	"github.com/samber/lo"

	"github.com/lixenwraith/particle-field/parameter"
)

// Config controls the ambient drone
type Config struct {
	Enabled    bool
	Volume     float64 // master volume in [0,1]
	SampleRate int
}

// DefaultConfig returns a disabled drone at the default volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:    false,
		Volume:     parameter.AudioDefaultVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// LoadConfig loads audio configuration from environment variables over the defaults
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("PARTICLE_FIELD_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is 0-100, converted to 0.0-1.0
	if volume := os.Getenv("PARTICLE_FIELD_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = lo.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	if sampleRate := os.Getenv("PARTICLE_FIELD_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
