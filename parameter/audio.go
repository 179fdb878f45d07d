package parameter

import "time"

// Ambient drone
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDroneBaseFreq is the drone pitch at the farthest zoom
	AudioDroneBaseFreq = 110.0

	// AudioDroneFreqSpan is added to the base pitch as the camera closes in to minimum distance
	AudioDroneFreqSpan = 55.0

	// AudioDroneGlide is the per-sample fraction of the pitch gap closed, keeps retunes click-free
	AudioDroneGlide = 0.0005

	// AudioDefaultVolume is the master volume in [0,1]
	AudioDefaultVolume = 0.15
)
