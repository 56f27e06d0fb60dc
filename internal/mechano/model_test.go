package mechano

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

func TestAmplitudeEffect(t *testing.T) {
	cfg := models.DefaultModelConfig()

	tests := []struct {
		name      string
		amplitude float64
		want      float64
	}{
		{"far below threshold", 0, 0},
		{"just below threshold", 1049.9, 0},
		{"exactly at threshold", 1050, 0},
		{"midway up rising limb", 1275, 0.5},
		{"at optimum", 1500, 1},
		{"midway down falling limb", 2250, 0.5},
		{"at max amplitude", 3000, 0},
		{"beyond max amplitude clamps to zero", 5000, 0},
		{"negative amplitude", -100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AmplitudeEffect(tt.amplitude, cfg), 1e-12)
		})
	}
}

func TestAmplitudeEffectBounded(t *testing.T) {
	cfg := models.DefaultModelConfig()

	// Sweep the full slider domain and beyond; the effect must stay in [0, 1].
	for a := -500.0; a <= 6000.0; a += 12.5 {
		e := AmplitudeEffect(a, cfg)
		assert.GreaterOrEqual(t, e, 0.0, "amplitude %v", a)
		assert.LessOrEqual(t, e, 1.0, "amplitude %v", a)
	}
}

func TestAmplitudeEffectContinuity(t *testing.T) {
	cfg := models.DefaultModelConfig()

	// The piecewise limbs meet at the breakpoints.
	const eps = 1e-9
	for _, bp := range []float64{cfg.Threshold, cfg.OptimumAmplitude, cfg.MaxAmplitude} {
		left := AmplitudeEffect(bp-eps, cfg)
		right := AmplitudeEffect(bp+eps, cfg)
		assert.InDelta(t, left, right, 1e-6, "discontinuity at %v", bp)
	}
}

func TestFrequencyEffect(t *testing.T) {
	cfg := models.DefaultModelConfig()

	tests := []struct {
		name string
		freq float64
		want float64
	}{
		{"below range", 0.5, 0},
		{"at minimum", 1, 0},
		{"midway up rising limb", 3, 0.5},
		{"at optimum midpoint", 5.5, 1},
		{"midway down falling limb", 7.75, 0.5},
		{"at maximum", 10, 0},
		{"above range", 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FrequencyEffect(tt.freq, cfg), 1e-12)
		})
	}
}

func TestDurationEffectSaturates(t *testing.T) {
	cfg := models.DefaultModelConfig()

	assert.InDelta(t, 0.5, DurationEffect(1.5, cfg), 1e-12)
	assert.InDelta(t, 1.0, DurationEffect(3.0, cfg), 1e-12)
	assert.InDelta(t, 1.0, DurationEffect(8.0, cfg), 1e-12)

	// Monotonically non-decreasing across the slider domain.
	prev := DurationEffect(0, cfg)
	for d := 0.1; d <= 8.0; d += 0.1 {
		e := DurationEffect(d, cfg)
		assert.GreaterOrEqual(t, e, prev, "duration %v", d)
		prev = e
	}
}

func TestPredictBFRScenarios(t *testing.T) {
	cfg := models.DefaultModelConfig()

	tests := []struct {
		name      string
		freq      float64
		amplitude float64
		duration  float64
		want      float64
	}{
		{"all effects at peak", 5.5, 1500.0, 3.0, 6.0},
		{"just below the frequency optimum", 5.0, 1500.0, 3.0, 1.0 + 5.0*(8.0/9.0)},
		{"amplitude below threshold", 5.0, 1000.0, 3.0, 1.0},
		{"amplitude at max clamps to baseline", 5.0, 3000.0, 3.0, 1.0},
		{"frequency at minimum clamps to baseline", 1.0, 1500.0, 1.5, 1.0},
		{"half duration effect", 5.5, 1500.0, 1.5, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictBFR(tt.freq, tt.amplitude, tt.duration, cfg)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPredictBFRBaselineWhenAmplitudeInert(t *testing.T) {
	cfg := models.DefaultModelConfig()

	// Any sub-threshold amplitude pins the prediction to the baseline,
	// whatever the other inputs are.
	for _, freq := range []float64{1, 3, 5.5, 9, 200} {
		for _, dur := range []float64{0.5, 3, 8, -1} {
			got := PredictBFR(freq, cfg.Threshold, dur, cfg)
			assert.InDelta(t, cfg.BaselineBFR, got, 1e-12)
		}
	}
}

func TestPredictBFRScenarioAtFrequencyMidpoint(t *testing.T) {
	// With a non-default config the frequency peak tracks the range midpoint.
	cfg := models.DefaultModelConfig()
	cfg.FrequencyMin = 2
	cfg.FrequencyMax = 6

	assert.InDelta(t, 1.0, FrequencyEffect(4, cfg), 1e-12)
	assert.InDelta(t, cfg.BaselineBFR+cfg.MaxIncrease, PredictBFR(4, 1500, 3, cfg), 1e-12)
}
