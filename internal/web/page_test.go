package web

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francohu/mechanobiology-data-dashboard/internal/dataset"
	"github.com/Francohu/mechanobiology-data-dashboard/internal/mechano"
	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

func TestTableRowsDisplayRounding(t *testing.T) {
	rows := TableRows([]models.LoadingSample{
		{FrequencyHz: 5.4567, StrainAmplitude: 1499.6, DurationWeeks: 2.345, BFR: 3.9876},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "5.46", rows[0].Frequency)
	assert.Equal(t, "1500", rows[0].Amplitude)
	assert.Equal(t, "2.35", rows[0].Duration)
	assert.Equal(t, "3.99", rows[0].BFR)
}

func TestPageRendersDashboard(t *testing.T) {
	provider := dataset.NewProvider(25, models.DefaultSampleRanges(), models.DefaultModelConfig(), mechano.DefaultSeed)
	page := NewPage(provider)

	rec := httptest.NewRecorder()
	page.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Mechanobiology Data Dashboard")
	assert.Contains(t, body, provider.Dataset().ID)
	assert.Contains(t, body, "25 samples")

	// One table row per sample and one SVG per chart spec
	assert.Equal(t, 25+1, strings.Count(body, "<tr>"), "25 data rows plus the header row")
	assert.Equal(t, 3, strings.Count(body, "<svg "))

	// All bone regions selectable; sliders match the interactive surface
	for _, region := range models.BoneRegions {
		assert.Contains(t, body, "<option>"+region+"</option>")
	}
	assert.Contains(t, body, `id="freq" min="1" max="10" step="0.5" value="5"`)
	assert.Contains(t, body, `id="amplitude" min="500" max="3000" step="50" value="1500"`)
	assert.Contains(t, body, `id="duration" min="1" max="8" step="0.5" value="2"`)

	// The live page computes predictions server-side
	assert.Contains(t, body, "/api/predict")
}
