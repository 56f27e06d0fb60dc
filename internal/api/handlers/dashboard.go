package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Francohu/mechanobiology-data-dashboard/internal/dataset"
	"github.com/Francohu/mechanobiology-data-dashboard/internal/mechano"
	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

// DashboardHandler handles prediction and dataset HTTP requests
type DashboardHandler struct {
	provider dataset.Provider
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(provider dataset.Provider) *DashboardHandler {
	return &DashboardHandler{provider: provider}
}

// Predict evaluates the response model for a single loading parameter triple.
// The bone region is echoed back in the message but never enters the model.
func (h *DashboardHandler) Predict(ctx context.Context, req *models.PredictRequest) (*models.PredictResponse, error) {
	cfg := h.provider.ModelConfig()

	region := req.Body.BoneRegion
	if region == "" {
		region = models.BoneRegions[0]
	}

	bfr := mechano.PredictBFR(req.Body.FrequencyHz, req.Body.StrainAmplitude, req.Body.DurationWeeks, cfg)
	interp := mechano.Interpret(req.Body.FrequencyHz, req.Body.StrainAmplitude, req.Body.DurationWeeks, cfg)

	log.Info().
		Float64("frequencyHz", req.Body.FrequencyHz).
		Float64("strainAmplitude", req.Body.StrainAmplitude).
		Float64("durationWeeks", req.Body.DurationWeeks).
		Str("boneRegion", region).
		Float64("bfr", bfr).
		Str("interpretation", interp.Code).
		Msg("Prediction computed")

	resp := &models.PredictResponse{}
	resp.Body.BFR = bfr
	resp.Body.BoneRegion = region
	resp.Body.Message = fmt.Sprintf(
		"Predicted bone formation rate for the %s: %.2f (arbitrary units)",
		strings.ToLower(region), bfr,
	)
	resp.Body.Interpretation = interp.Message
	resp.Body.Code = interp.Code
	return resp, nil
}

// GetDataset returns the memoized synthetic dataset with its tag.
func (h *DashboardHandler) GetDataset(ctx context.Context, req *struct{}) (*models.DatasetResponse, error) {
	ds := h.provider.Dataset()

	log.Info().Str("datasetID", ds.ID).Int("samples", len(ds.Samples)).Msg("Serving synthetic dataset")

	resp := &models.DatasetResponse{}
	resp.Body.ID = ds.ID
	resp.Body.Seed = ds.Seed
	resp.Body.Count = len(ds.Samples)
	resp.Body.Samples = ds.Samples
	resp.Body.CreatedAt = ds.CreatedAt
	return resp, nil
}
