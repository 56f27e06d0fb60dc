package mechano

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

func TestGenerateDatasetReproducible(t *testing.T) {
	cfg := models.DefaultModelConfig()
	ranges := models.DefaultSampleRanges()

	first := GenerateDataset(250, ranges, cfg, DefaultSeed)
	second := GenerateDataset(250, ranges, cfg, DefaultSeed)

	require.Len(t, first, 250)
	assert.Equal(t, first, second, "same seed and arguments must reproduce the dataset")

	other := GenerateDataset(250, ranges, cfg, 7)
	assert.NotEqual(t, first, other, "a different seed must produce a different dataset")
}

func TestGenerateDatasetRespectsRanges(t *testing.T) {
	cfg := models.DefaultModelConfig()
	ranges := models.DefaultSampleRanges()

	for _, s := range GenerateDataset(500, ranges, cfg, DefaultSeed) {
		assert.GreaterOrEqual(t, s.FrequencyHz, ranges.Frequency.Min)
		assert.Less(t, s.FrequencyHz, ranges.Frequency.Max)
		assert.GreaterOrEqual(t, s.StrainAmplitude, ranges.Amplitude.Min)
		assert.Less(t, s.StrainAmplitude, ranges.Amplitude.Max)
		assert.GreaterOrEqual(t, s.DurationWeeks, ranges.Duration.Min)
		assert.Less(t, s.DurationWeeks, ranges.Duration.Max)
	}
}

func TestGenerateDatasetMatchesScalarPrediction(t *testing.T) {
	cfg := models.DefaultModelConfig()
	ranges := models.DefaultSampleRanges()

	// The batch path and the scalar path share the same formulas; every row
	// must agree exactly with a per-point prediction of its own inputs.
	for _, s := range GenerateDataset(300, ranges, cfg, DefaultSeed) {
		want := PredictBFR(s.FrequencyHz, s.StrainAmplitude, s.DurationWeeks, cfg)
		assert.Equal(t, want, s.BFR)
		assert.GreaterOrEqual(t, s.BFR, cfg.BaselineBFR)
		assert.LessOrEqual(t, s.BFR, cfg.BaselineBFR+cfg.MaxIncrease)
	}
}

func TestGenerateDatasetEdgeCounts(t *testing.T) {
	cfg := models.DefaultModelConfig()
	ranges := models.DefaultSampleRanges()

	assert.Nil(t, GenerateDataset(0, ranges, cfg, DefaultSeed))
	assert.Nil(t, GenerateDataset(-3, ranges, cfg, DefaultSeed))
	assert.Len(t, GenerateDataset(1, ranges, cfg, DefaultSeed), 1)
}
