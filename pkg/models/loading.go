package models

// LoadingSample represents one simulated loading experiment
type LoadingSample struct {
	FrequencyHz     float64 `json:"frequency_hz" doc:"Loading frequency in Hz"`
	StrainAmplitude float64 `json:"strain_amplitude" doc:"Peak strain amplitude in microstrain"`
	DurationWeeks   float64 `json:"duration_weeks" doc:"Loading duration in weeks"`
	BFR             float64 `json:"bone_formation_rate" doc:"Predicted bone formation rate in arbitrary units"`
}

// Range is a closed interval of admissible input values
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SampleRanges bounds the uniform draws of the synthetic dataset generator
type SampleRanges struct {
	Frequency Range `json:"frequency"`
	Amplitude Range `json:"amplitude"`
	Duration  Range `json:"duration"`
}

// ModelConfig holds the tunable constants of the loading response model.
// The values are fixed for the lifetime of any single computation; the
// defaults come from published loading studies (lamellar threshold ~1050 µε,
// peak anabolic response ~1500 µε, saturation beyond ~3 weeks).
type ModelConfig struct {
	Threshold        float64 `json:"threshold"`
	OptimumAmplitude float64 `json:"optimum_amplitude"`
	MaxAmplitude     float64 `json:"max_amplitude"`
	BaselineBFR      float64 `json:"baseline_bfr"`
	MaxIncrease      float64 `json:"max_increase"`
	FrequencyMin     float64 `json:"frequency_min"`
	FrequencyMax     float64 `json:"frequency_max"`
	OptimumDuration  float64 `json:"optimum_duration"`
}

// OptimumFrequency returns the midpoint of the frequency range, where the
// triangular frequency response peaks.
func (c ModelConfig) OptimumFrequency() float64 {
	return (c.FrequencyMin + c.FrequencyMax) / 2.0
}

// DefaultModelConfig returns the documented default model constants.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Threshold:        1050.0,
		OptimumAmplitude: 1500.0,
		MaxAmplitude:     3000.0,
		BaselineBFR:      1.0,
		MaxIncrease:      5.0,
		FrequencyMin:     1.0,
		FrequencyMax:     10.0,
		OptimumDuration:  3.0,
	}
}

// DefaultSampleRanges returns the input ranges used for the synthetic dataset.
func DefaultSampleRanges() SampleRanges {
	return SampleRanges{
		Frequency: Range{Min: 1.0, Max: 10.0},
		Amplitude: Range{Min: 500.0, Max: 3000.0},
		Duration:  Range{Min: 1.0, Max: 4.0},
	}
}

// BoneRegions lists the selectable bone regions. The selection is purely
// descriptive and never enters the model arithmetic.
var BoneRegions = []string{"Tibia", "Ulna", "Vertebra", "Femur", "Humerus"}
