package mechano

import (
	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

// Interpretation qualifies a loading parameter triple against the model
// thresholds.
type Interpretation struct {
	Code    string
	Message string
}

// Interpretation codes, one per row of the decision table in Interpret.
const (
	CodeBelowThreshold    = "below_threshold"
	CodeMicrodamageRisk   = "microdamage_risk"
	CodeHighFrequency     = "high_frequency"
	CodeProlongedDuration = "prolonged_duration"
	CodeOptimalWindow     = "optimal_window"
)

// Interpret maps a loading parameter triple to a qualitative interpretation.
//
// The checks run in a fixed order and the first match wins: amplitude below
// threshold, amplitude above the safe optimum, frequency above the optimum,
// duration beyond the optimum, and otherwise the optimal window. An
// amplitude above the optimum therefore always reports the microdamage
// message even when duration is also out of range.
func Interpret(freq, amplitude, duration float64, cfg models.ModelConfig) Interpretation {
	switch {
	case amplitude <= cfg.Threshold:
		return Interpretation{
			Code: CodeBelowThreshold,
			Message: "The strain amplitude you selected is below the ~1050 µε threshold " +
				"required to stimulate lamellar bone formation, so the predicted increase " +
				"in bone formation is minimal.",
		}
	case amplitude > cfg.OptimumAmplitude:
		return Interpretation{
			Code: CodeMicrodamageRisk,
			Message: "The strain amplitude exceeds the safe optimum (~1500 µε). " +
				"High strains can induce microdamage and modelling-dependent bone loss, " +
				"leading to a decline in bone formation.",
		}
	case freq > cfg.OptimumFrequency():
		return Interpretation{
			Code: CodeHighFrequency,
			Message: "The loading frequency is higher than the optimal (~5 Hz). " +
				"Studies suggest that very high frequencies may desensitise osteocytes " +
				"and reduce the anabolic response to mechanical loading.",
		}
	case duration > cfg.OptimumDuration:
		return Interpretation{
			Code: CodeProlongedDuration,
			Message: "Long loading durations do not indefinitely increase bone formation. " +
				"Continuous sessions can desensitise bone mechanosensors; splitting " +
				"loading into shorter bouts with rest is more effective. Beyond ~3 weeks " +
				"the anabolic effect saturates, so extending duration adds little benefit.",
		}
	default:
		return Interpretation{
			Code: CodeOptimalWindow,
			Message: "Your parameters fall within the stimulatory window. " +
				"Moderate strains (~1050–1500 µε), frequencies around 5 Hz and " +
				"durations up to a few weeks are associated with increased bone formation " +
				"in experimental studies.",
		}
	}
}
