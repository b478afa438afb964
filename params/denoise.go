package params

type DenoiseConfig struct {
	// MaxNoiseSamples is the longest run of consecutive invalid
	// samples the filter will interpolate across. Longer runs are
	// real signal loss, not noise, and are left intact.
	MaxNoiseSamples int
}

var DefaultDenoiseConfig = &DenoiseConfig{
	MaxNoiseSamples: 2,
}

// DefaultSamplePeriodMS is the fallback sample duration, in
// milliseconds, when it cannot be derived from successor timestamps.
// SMI iView trackers sample at 60Hz.
var DefaultSamplePeriodMS = 1000.0 / 60.0
