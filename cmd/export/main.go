// Command export writes the self-contained dashboard document: dataset,
// charts and the in-browser prediction model in a single HTML file.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Francohu/mechanobiology-data-dashboard/internal/config"
	"github.com/Francohu/mechanobiology-data-dashboard/internal/export"
	"github.com/Francohu/mechanobiology-data-dashboard/internal/mechano"
	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	out := flag.String("out", cfg.Export.Path, "output path of the exported dashboard")
	samples := flag.Int("samples", cfg.Export.SampleCount, "number of synthetic samples to embed")
	seed := flag.Int64("seed", cfg.Dataset.Seed, "seed for the synthetic dataset")
	flag.Parse()

	modelCfg := models.DefaultModelConfig()
	ds := mechano.GenerateDataset(*samples, models.DefaultSampleRanges(), modelCfg, *seed)

	doc, err := export.Build(ds, modelCfg, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build dashboard document")
	}

	if err := os.WriteFile(*out, []byte(doc), 0o644); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("Failed to write dashboard document")
	}

	log.Info().
		Str("path", *out).
		Int("samples", len(ds)).
		Int64("seed", *seed).
		Int("bytes", len(doc)).
		Msg("Exported standalone dashboard")
}
