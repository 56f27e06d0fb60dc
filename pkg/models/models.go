package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// PredictRequest represents a single-point prediction request. The bounds
// mirror the dashboard sliders; the amplitude range deliberately extends
// below the stimulation threshold so sub-threshold behavior can be explored.
type PredictRequest struct {
	Body struct {
		FrequencyHz     float64 `json:"frequency_hz" minimum:"1" maximum:"10" required:"true" doc:"Loading frequency in Hz"`
		StrainAmplitude float64 `json:"strain_amplitude" minimum:"500" maximum:"3000" required:"true" doc:"Strain amplitude in microstrain"`
		DurationWeeks   float64 `json:"duration_weeks" minimum:"1" maximum:"8" required:"true" doc:"Duration of stimulus in weeks"`
		BoneRegion      string  `json:"bone_region,omitempty" enum:"Tibia,Ulna,Vertebra,Femur,Humerus" doc:"Bone region, display-only"`
	}
}

// PredictResponse represents the predicted bone formation rate along with a
// qualitative interpretation of the chosen loading parameters
type PredictResponse struct {
	Body struct {
		BFR            float64 `json:"bone_formation_rate" doc:"Predicted bone formation rate in arbitrary units"`
		BoneRegion     string  `json:"bone_region" doc:"Echo of the selected bone region"`
		Message        string  `json:"message" doc:"Human-readable result summary"`
		Interpretation string  `json:"interpretation" doc:"Qualitative interpretation of the loading parameters"`
		Code           string  `json:"code" enum:"below_threshold,microdamage_risk,high_frequency,prolonged_duration,optimal_window" doc:"Interpretation category"`
	}
}

// DatasetResponse represents the synthetic dataset backing the dashboard
type DatasetResponse struct {
	Body struct {
		ID        string          `json:"id" doc:"Tag of the materialized dataset, stable within one process"`
		Seed      int64           `json:"seed" doc:"Seed used to generate the dataset"`
		Count     int             `json:"count" doc:"Number of samples"`
		Samples   []LoadingSample `json:"samples" doc:"Generated loading samples"`
		CreatedAt time.Time       `json:"created_at" doc:"When the dataset was materialized"`
	}
}
