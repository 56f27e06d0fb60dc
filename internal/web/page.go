// Package web renders the dashboard's HTML surfaces: the live
// server-rendered page and the chart/table building blocks shared with the
// static export.
package web

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Francohu/mechanobiology-data-dashboard/internal/dataset"
	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

// TableRow is one display-rounded row of the dataset table. Rounding is a
// view transform only; the underlying sample values stay untouched.
type TableRow struct {
	Frequency string
	Amplitude string
	Duration  string
	BFR       string
}

// TableRows formats samples for display: frequency, duration and bone
// formation rate to two decimals, amplitude to the nearest integer.
func TableRows(samples []models.LoadingSample) []TableRow {
	rows := make([]TableRow, len(samples))
	for i, s := range samples {
		rows[i] = TableRow{
			Frequency: fmt.Sprintf("%.2f", s.FrequencyHz),
			Amplitude: fmt.Sprintf("%.0f", s.StrainAmplitude),
			Duration:  fmt.Sprintf("%.2f", s.DurationWeeks),
			BFR:       fmt.Sprintf("%.2f", s.BFR),
		}
	}
	return rows
}

// Chart pairs a rendered SVG with its spec title for layout purposes.
type Chart struct {
	Title string
	SVG   template.HTML
}

// RenderCharts renders the three standard dashboard charts for the samples.
func RenderCharts(samples []models.LoadingSample) []Chart {
	specs := DashboardCharts()
	charts := make([]Chart, len(specs))
	for i, spec := range specs {
		charts[i] = Chart{Title: spec.Title, SVG: ScatterSVG(samples, spec)}
	}
	return charts
}

// Page serves the live dashboard.
type Page struct {
	provider dataset.Provider
}

// NewPage creates the live dashboard page backed by the given provider.
func NewPage(provider dataset.Provider) *Page {
	return &Page{provider: provider}
}

type pageData struct {
	Title       string
	DatasetID   string
	SampleCount int
	Seed        int64
	Rows        []TableRow
	Charts      []Chart
	Regions     []string
}

// ServeHTTP renders the dashboard page.
func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ds := p.provider.Dataset()

	data := pageData{
		Title:       "Mechanobiology Data Dashboard",
		DatasetID:   ds.ID,
		SampleCount: len(ds.Samples),
		Seed:        ds.Seed,
		Rows:        TableRows(ds.Samples),
		Charts:      RenderCharts(ds.Samples),
		Regions:     models.BoneRegions,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("Failed to render dashboard page")
	}
}

var pageTemplate = template.Must(template.New("dashboard").Parse(pageTemplateHTML))

const pageTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; color: #222; }
    header { background: #2c3e50; color: #fff; padding: 16px 24px; }
    main { max-width: 1100px; margin: 0 auto; padding: 16px 24px; }
    section { margin-bottom: 32px; }
    h2 { border-bottom: 2px solid #2c3e50; padding-bottom: 4px; }
    .panel { background: #f6f8fa; border: 1px solid #d0d7de; border-radius: 6px; padding: 16px; }
    .controls label { display: block; margin-top: 12px; font-weight: bold; }
    .controls output { font-weight: normal; margin-left: 8px; }
    .controls input[type="range"] { width: 100%; }
    button { margin-top: 16px; background: #2c3e50; color: #fff; border: 0; border-radius: 4px; padding: 10px 18px; cursor: pointer; }
    #result { margin-top: 12px; font-weight: bold; }
    #interpretation { margin-top: 8px; color: #445; }
    table { border-collapse: collapse; width: 100%; font-size: 13px; }
    th, td { border: 1px solid #d0d7de; padding: 4px 8px; text-align: right; }
    th { background: #eef1f4; }
    .table-wrap { max-height: 360px; overflow-y: auto; }
    .chart { margin: 16px 0; }
    footer { color: #778; font-size: 12px; padding: 16px 24px; text-align: center; }
  </style>
</head>
<body>
<header>
  <h1>🦴 {{.Title}}</h1>
</header>
<main>
<section>
  <p>This interactive dashboard demonstrates how mechanical loading parameters
  (frequency, strain amplitude and duration) influence bone formation rate.
  The synthetic data are derived from U.S. public research on how bones
  respond to mechanical stimuli.</p>
</section>

<section class="panel controls">
  <h2>Input Parameters</h2>
  <label>Select bone region
    <select id="region">
      {{range .Regions}}<option>{{.}}</option>{{end}}
    </select>
  </label>
  <label>Loading frequency (Hz)<output for="freq" id="freqOut">5.0</output>
    <input type="range" id="freq" min="1" max="10" step="0.5" value="5">
  </label>
  <label>Strain amplitude (microstrain)<output for="amplitude" id="amplitudeOut">1500</output>
    <input type="range" id="amplitude" min="500" max="3000" step="50" value="1500">
  </label>
  <label>Duration of stimulus (weeks)<output for="duration" id="durationOut">2.0</output>
    <input type="range" id="duration" min="1" max="8" step="0.5" value="2">
  </label>
  <button id="predict">Predict bone formation rate</button>
  <div id="result"></div>
  <div id="interpretation"></div>
</section>

<section>
  <h2>Explore the synthetic mechanobiology dataset</h2>
  <p>The table below summarises a synthetic dataset created from official U.S.
  research. Each row represents a simulated experiment with a random loading
  frequency, strain amplitude and duration. Bone formation rate is computed
  using a simple mathematical model calibrated to match published trends.</p>
  <div class="table-wrap">
    <table>
      <thead>
        <tr><th>Frequency (Hz)</th><th>Strain amplitude (µε)</th><th>Duration (weeks)</th><th>Bone formation rate</th></tr>
      </thead>
      <tbody>
        {{range .Rows}}<tr><td>{{.Frequency}}</td><td>{{.Amplitude}}</td><td>{{.Duration}}</td><td>{{.BFR}}</td></tr>
        {{end}}
      </tbody>
    </table>
  </div>
</section>

<section>
  <h2>Visualise relationships</h2>
  {{range .Charts}}<div class="chart">{{.SVG}}</div>
  {{end}}
</section>

<section>
  <h2>Background &amp; References</h2>
  <p>Bone is a dynamic tissue that remodels in response to its mechanical
  environment. Experiments funded by the U.S. Public Health Service have shown
  that increasing the frequency and magnitude of cyclic mechanical loading can
  stimulate new bone formation. There is a lower mechanical threshold around
  1050 µε below which lamellar bone formation is not triggered. As strains
  approach an optimal range (~1500 µε) the anabolic response peaks, but very
  high strains can induce microdamage and modelling-dependent bone loss.
  Frequencies much higher than those used in animal studies can desensitise
  osteocytes, and continuous long loading sessions provide diminishing
  returns: beyond an optimal duration the anabolic effect saturates.</p>
</section>
</main>
<footer>Synthetic dataset {{.DatasetID}} · {{.SampleCount}} samples · seed {{.Seed}}</footer>
<script>
(function () {
  var sliders = ["freq", "amplitude", "duration"];
  sliders.forEach(function (id) {
    var input = document.getElementById(id);
    var out = document.getElementById(id + "Out");
    input.addEventListener("input", function () { out.textContent = input.value; });
  });
  document.getElementById("predict").addEventListener("click", function () {
    var body = {
      frequency_hz: parseFloat(document.getElementById("freq").value),
      strain_amplitude: parseFloat(document.getElementById("amplitude").value),
      duration_weeks: parseFloat(document.getElementById("duration").value),
      bone_region: document.getElementById("region").value
    };
    fetch("/api/predict", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify(body)
    }).then(function (resp) { return resp.json(); }).then(function (data) {
      document.getElementById("result").textContent = data.message;
      document.getElementById("interpretation").textContent = data.interpretation;
    });
  });
})();
</script>
</body>
</html>
`
