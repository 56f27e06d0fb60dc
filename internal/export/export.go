// Package export builds the self-contained HTML artifact: the synthetic
// dataset, pre-rendered charts and a client-side copy of the response model
// in one document that works without a server or any external asset.
package export

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/Francohu/mechanobiology-data-dashboard/internal/web"
	"github.com/Francohu/mechanobiology-data-dashboard/pkg/models"
)

// DefaultFileName is where cmd/export writes the artifact unless configured
// otherwise.
const DefaultFileName = "mechanobiology_dashboard.html"

type artifactData struct {
	Title       string
	ConfigJSON  template.JS
	DatasetJSON template.JS
	Rows        []web.TableRow
	Charts      []web.Chart
	Regions     []string
	SampleCount int
	Seed        int64
}

// Build renders the exported dashboard document. The model constants are
// injected into the embedded script from cfg, so the client-side formulas
// and the server-side ones share a single parameter source. The samples are
// embedded verbatim as JSON next to their display-rounded table rows.
func Build(samples []models.LoadingSample, cfg models.ModelConfig, seed int64) (string, error) {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	dsJSON, err := json.Marshal(samples)
	if err != nil {
		return "", err
	}

	data := artifactData{
		Title:       "Mechanobiology Data Dashboard",
		ConfigJSON:  template.JS(cfgJSON),
		DatasetJSON: template.JS(dsJSON),
		Rows:        web.TableRows(samples),
		Charts:      web.RenderCharts(samples),
		Regions:     models.BoneRegions,
		SampleCount: len(samples),
		Seed:        seed,
	}

	var buf bytes.Buffer
	if err := artifactTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var artifactTemplate = template.Must(template.New("artifact").Parse(artifactTemplateHTML))

const artifactTemplateHTML = `<!DOCTYPE html>
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
  <p>This standalone dashboard demonstrates how mechanical loading parameters
  (frequency, strain amplitude and duration) influence bone formation rate.
  Predictions run entirely in your browser; no network access is required.</p>
</section>

<section class="panel controls">
  <h2>Input Parameters</h2>
  <label>Select bone region
    <select id="region">
      {{range .Regions}}<option>{{.}}</option>{{end}}
    </select>
  </label>
  <label>Loading frequency (Hz)<output id="freqOut">5.0</output>
    <input type="range" id="freq" min="1" max="10" step="0.5" value="5">
  </label>
  <label>Strain amplitude (microstrain)<output id="amplitudeOut">1500</output>
    <input type="range" id="amplitude" min="500" max="3000" step="50" value="1500">
  </label>
  <label>Duration of stimulus (weeks)<output id="durationOut">2.0</output>
    <input type="range" id="duration" min="1" max="8" step="0.5" value="2">
  </label>
  <button id="predict">Predict bone formation rate</button>
  <div id="result"></div>
  <div id="interpretation"></div>
</section>

<section>
  <h2>Explore the synthetic mechanobiology dataset</h2>
  <p>Each row represents a simulated experiment with a random loading
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
  <p>Strains below a threshold of roughly 1050 µε produce only baseline bone
  formation. Amplitudes between the threshold and the optimum (~1500 µε) and
  moderate frequencies (~5 Hz) produce the greatest increases; at higher
  strains or frequencies the predicted effect declines due to microdamage and
  reduced mechanosensitivity. Beyond an optimal duration the anabolic effect
  saturates, so extending duration provides diminishing returns.</p>
</section>
</main>
<footer>Synthetic dataset · {{.SampleCount}} samples · seed {{.Seed}}</footer>
<script>
var MODEL = {{.ConfigJSON}};
var DATASET = {{.DatasetJSON}};

function amplitudeEffect(amplitude) {
  if (amplitude <= MODEL.threshold) {
    return 0;
  }
  if (amplitude <= MODEL.optimum_amplitude) {
    return (amplitude - MODEL.threshold) / (MODEL.optimum_amplitude - MODEL.threshold);
  }
  return Math.max((MODEL.max_amplitude - amplitude) / (MODEL.max_amplitude - MODEL.optimum_amplitude), 0);
}

function frequencyEffect(freq) {
  var opt = (MODEL.frequency_min + MODEL.frequency_max) / 2;
  if (freq <= MODEL.frequency_min) {
    return 0;
  }
  if (freq <= opt) {
    return (freq - MODEL.frequency_min) / (opt - MODEL.frequency_min);
  }
  return Math.max((MODEL.frequency_max - freq) / (MODEL.frequency_max - opt), 0);
}

function durationEffect(duration) {
  return Math.min(duration / MODEL.optimum_duration, 1);
}

function predictBFR(freq, amplitude, duration) {
  return MODEL.baseline_bfr + MODEL.max_increase *
    amplitudeEffect(amplitude) * frequencyEffect(freq) * durationEffect(duration);
}

function interpret(freq, amplitude, duration) {
  var opt = (MODEL.frequency_min + MODEL.frequency_max) / 2;
  if (amplitude <= MODEL.threshold) {
    return "The strain amplitude you selected is below the ~1050 µε threshold required to stimulate lamellar bone formation, so the predicted increase in bone formation is minimal.";
  }
  if (amplitude > MODEL.optimum_amplitude) {
    return "The strain amplitude exceeds the safe optimum (~1500 µε). High strains can induce microdamage and modelling-dependent bone loss, leading to a decline in bone formation.";
  }
  if (freq > opt) {
    return "The loading frequency is higher than the optimal (~5 Hz). Studies suggest that very high frequencies may desensitise osteocytes and reduce the anabolic response to mechanical loading.";
  }
  if (duration > MODEL.optimum_duration) {
    return "Long loading durations do not indefinitely increase bone formation. Continuous sessions can desensitise bone mechanosensors; splitting loading into shorter bouts with rest is more effective. Beyond ~3 weeks the anabolic effect saturates, so extending duration adds little benefit.";
  }
  return "Your parameters fall within the stimulatory window. Moderate strains (~1050–1500 µε), frequencies around 5 Hz and durations up to a few weeks are associated with increased bone formation in experimental studies.";
}

(function () {
  ["freq", "amplitude", "duration"].forEach(function (id) {
    var input = document.getElementById(id);
    var out = document.getElementById(id + "Out");
    input.addEventListener("input", function () { out.textContent = input.value; });
  });
  document.getElementById("predict").addEventListener("click", function () {
    var freq = parseFloat(document.getElementById("freq").value);
    var amplitude = parseFloat(document.getElementById("amplitude").value);
    var duration = parseFloat(document.getElementById("duration").value);
    var region = document.getElementById("region").value;
    var bfr = predictBFR(freq, amplitude, duration);
    document.getElementById("result").textContent =
      "Predicted bone formation rate for the " + region.toLowerCase() + ": " +
      bfr.toFixed(2) + " (arbitrary units)";
    document.getElementById("interpretation").textContent = interpret(freq, amplitude, duration);
  });
})();
</script>
</body>
</html>
`
