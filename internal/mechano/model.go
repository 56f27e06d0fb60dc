// Package mechano implements the synthetic bone formation response model.
//
// The model combines three normalized loading effects (strain amplitude,
// frequency, duration) multiplicatively on top of a baseline formation rate.
// Every function is total over finite real inputs: out-of-range values are
// clamped to a zero effect rather than rejected, which is intentional and
// matches the published curves the model is tuned to.
package mechano

import (
	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

// AmplitudeEffect returns the normalized anabolic effect of a strain
// amplitude in microstrain, in [0, 1].
//
// The response is a piecewise-linear inverted U: below the lamellar
// threshold there is no stimulation, between threshold and optimum the
// effect rises linearly to 1, and above the optimum it declines because
// high strains induce microdamage. Amplitudes at or beyond MaxAmplitude
// clamp to 0.
func AmplitudeEffect(amplitude float64, cfg models.ModelConfig) float64 {
	switch {
	case amplitude <= cfg.Threshold:
		return 0
	case amplitude <= cfg.OptimumAmplitude:
		return (amplitude - cfg.Threshold) / (cfg.OptimumAmplitude - cfg.Threshold)
	default:
		return max((cfg.MaxAmplitude-amplitude)/(cfg.MaxAmplitude-cfg.OptimumAmplitude), 0)
	}
}

// FrequencyEffect returns the normalized anabolic effect of a loading
// frequency in Hz, in [0, 1].
//
// Triangular response peaking at the midpoint of the configured frequency
// range; frequencies at or outside the range yield 0.
func FrequencyEffect(freq float64, cfg models.ModelConfig) float64 {
	opt := cfg.OptimumFrequency()
	switch {
	case freq <= cfg.FrequencyMin:
		return 0
	case freq <= opt:
		return (freq - cfg.FrequencyMin) / (opt - cfg.FrequencyMin)
	default:
		// The falling limb already clamps at 0, so no explicit
		// freq > FrequencyMax branch is needed.
		return max((cfg.FrequencyMax-freq)/(cfg.FrequencyMax-opt), 0)
	}
}

// DurationEffect returns the normalized anabolic effect of a loading
// duration in weeks, in [0, 1] for non-negative durations.
//
// Saturating response: duration normalized by the optimum and capped at 1.
// Continuous loading desensitizes osteocyte mechanosensors, so durations
// beyond the optimum provide no further gain.
func DurationEffect(duration float64, cfg models.ModelConfig) float64 {
	return min(duration/cfg.OptimumDuration, 1)
}

// PredictBFR predicts the bone formation rate (arbitrary units) for a single
// loading parameter triple. Pure and deterministic; a zero effect in any
// dimension reduces the prediction to the baseline rate.
func PredictBFR(freq, amplitude, duration float64, cfg models.ModelConfig) float64 {
	return cfg.BaselineBFR + cfg.MaxIncrease*
		AmplitudeEffect(amplitude, cfg)*
		FrequencyEffect(freq, cfg)*
		DurationEffect(duration, cfg)
}
