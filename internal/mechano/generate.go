package mechano

import (
	"math/rand"

	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

// DefaultSeed is the seed used for the demonstration dataset. Fixing it makes
// repeated generation reproducible within one runtime, which downstream
// caches and tests rely on.
const DefaultSeed = 42

// GenerateDataset draws n independent uniform samples for frequency,
// amplitude and duration from the given ranges and computes the bone
// formation rate of each triple through the same effect formulas as
// PredictBFR.
//
// Two calls with identical arguments produce identical slices. The samples
// are drawn row by row in a fixed field order (frequency, amplitude,
// duration), so the sequence is a pure function of the seed.
func GenerateDataset(n int, ranges models.SampleRanges, cfg models.ModelConfig, seed int64) []models.LoadingSample {
	if n <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	uniform := func(r models.Range) float64 {
		return r.Min + rng.Float64()*(r.Max-r.Min)
	}

	samples := make([]models.LoadingSample, n)
	for i := range samples {
		freq := uniform(ranges.Frequency)
		amplitude := uniform(ranges.Amplitude)
		duration := uniform(ranges.Duration)
		samples[i] = models.LoadingSample{
			FrequencyHz:     freq,
			StrainAmplitude: amplitude,
			DurationWeeks:   duration,
			BFR:             PredictBFR(freq, amplitude, duration, cfg),
		}
	}
	return samples
}
