// Package dataset materializes and memoizes the synthetic demonstration
// dataset. The model itself stays a pure function; the cache lives here, on
// the presentation side, keyed by the generation parameters a provider is
// constructed with.
package dataset

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Francohu/mechanobiology-data-dashboard/internal/mechano"
	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

// Dataset is a materialized synthetic dataset. Read-only after creation;
// the ID changes whenever a dataset is regenerated, so clients can detect
// that they are looking at a fresh materialization.
type Dataset struct {
	ID        string
	Seed      int64
	Samples   []models.LoadingSample
	CreatedAt time.Time
}

// Provider hands out the memoized synthetic dataset.
type Provider interface {
	Dataset() *Dataset
	ModelConfig() models.ModelConfig
}

type provider struct {
	count  int
	ranges models.SampleRanges
	cfg    models.ModelConfig
	seed   int64

	mu   sync.Mutex
	memo *Dataset
}

// NewProvider creates a provider that generates sampleCount samples from the
// given ranges on first use and serves the same dataset afterwards.
func NewProvider(sampleCount int, ranges models.SampleRanges, cfg models.ModelConfig, seed int64) Provider {
	return &provider{
		count:  sampleCount,
		ranges: ranges,
		cfg:    cfg,
		seed:   seed,
	}
}

func (p *provider) Dataset() *Dataset {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.memo == nil {
		samples := mechano.GenerateDataset(p.count, p.ranges, p.cfg, p.seed)
		p.memo = &Dataset{
			ID:        uuid.New().String(),
			Seed:      p.seed,
			Samples:   samples,
			CreatedAt: time.Now(),
		}
		log.Info().
			Str("datasetID", p.memo.ID).
			Int("samples", len(samples)).
			Int64("seed", p.seed).
			Msg("Materialized synthetic dataset")
	}
	return p.memo
}

func (p *provider) ModelConfig() models.ModelConfig {
	return p.cfg
}
