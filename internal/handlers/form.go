package handlers

import (
	"html/template"
	"net/http"

	"crop-yield-platform/internal/models"
	"crop-yield-platform/pkg/logging"
)

// formData feeds the form template with option lists and input constraints
type formData struct {
	AreaOptions []string
	ItemOptions []string
	Degraded    bool

	YearMin     int
	YearMax     int
	YearDefault int

	TempMin     float64
	TempMax     float64
	TempDefault float64
	TempStep    float64

	RainfallMin     float64
	RainfallMax     float64
	RainfallDefault float64
	RainfallStep    float64

	PesticideMin     float64
	PesticideMax     float64
	PesticideDefault float64
	PesticideStep    float64
}

var formTemplate = template.Must(template.New("form").Parse(formPage))

// FormPage handles GET / and renders the prediction form with the option
// lists injected server-side
func (h *PredictionHandler) FormPage(w http.ResponseWriter, r *http.Request) {
	data := formData{
		AreaOptions: h.optionsService.AreaOptions(),
		ItemOptions: h.optionsService.ItemOptions(),
		Degraded:    h.optionsService.Degraded(),

		YearMin:     models.YearMin,
		YearMax:     models.YearMax,
		YearDefault: models.YearDefault,

		TempMin:     models.TempMin,
		TempMax:     models.TempMax,
		TempDefault: models.TempDefault,
		TempStep:    models.TempStep,

		RainfallMin:     models.RainfallMin,
		RainfallMax:     models.RainfallMax,
		RainfallDefault: models.RainfallDefault,
		RainfallStep:    models.RainfallStep,

		PesticideMin:     models.PesticideMin,
		PesticideMax:     models.PesticideMax,
		PesticideDefault: models.PesticideDefault,
		PesticideStep:    models.PesticideStep,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTemplate.Execute(w, data); err != nil {
		h.logger.Error(r.Context(), "[FORM_RENDER_ERROR] Failed to render form page", logging.Fields{}, err)
	}
}

const formPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Crop Yield Prediction for Smallholder Farmers</title>
<style>
body { font-family: Arial, sans-serif; background: #f8f9fa; margin: 0; display: flex; min-height: 100vh; }
.sidebar { width: 320px; background: #fff; padding: 20px; border-right: 1px solid #ddd; }
.sidebar h2 { font-size: 18px; }
.sidebar label { display: block; margin-top: 14px; font-size: 14px; }
.sidebar input, .sidebar select { width: 100%; padding: 6px; margin-top: 4px; border: 1px solid #ccc; border-radius: 5px; box-sizing: border-box; }
.sidebar .value { font-size: 12px; color: #555; }
.sidebar button { margin-top: 20px; background: #2e7d32; color: white; border: none; padding: 10px; border-radius: 5px; cursor: pointer; width: 100%; }
.sidebar button:hover { background: #1b5e20; }
.main { flex: 1; padding: 30px 40px; }
.result { margin-top: 24px; }
.result .yield { background: #e8f5e9; border: 1px solid #a5d6a7; padding: 12px; border-radius: 5px; font-size: 20px; font-weight: bold; }
.result ul { line-height: 1.6; }
.error { background: #ffebee; border: 1px solid #ef9a9a; padding: 12px; border-radius: 5px; color: #b71c1c; margin-top: 24px; }
hr { margin: 24px 0; }
</style>
</head>
<body>
<div class="sidebar">
<h2>Input Features</h2>
<form id="predict-form">
<label>Year
<input id="year" type="number" min="{{.YearMin}}" max="{{.YearMax}}" step="1" value="{{.YearDefault}}">
</label>
<label>Average Temperature (&deg;C)
<input id="avg_temp" type="range" min="{{.TempMin}}" max="{{.TempMax}}" step="{{.TempStep}}" value="{{.TempDefault}}"
oninput="document.getElementById('avg_temp_value').innerText = this.value">
<span class="value" id="avg_temp_value">{{.TempDefault}}</span>
</label>
<label>Average Rainfall (mm/year)
<input id="rainfall" type="range" min="{{.RainfallMin}}" max="{{.RainfallMax}}" step="{{.RainfallStep}}" value="{{.RainfallDefault}}"
oninput="document.getElementById('rainfall_value').innerText = this.value">
<span class="value" id="rainfall_value">{{.RainfallDefault}}</span>
</label>
<label>Pesticide Use (tonnes)
<input id="pesticides" type="range" min="{{.PesticideMin}}" max="{{.PesticideMax}}" step="{{.PesticideStep}}" value="{{.PesticideDefault}}"
oninput="document.getElementById('pesticides_value').innerText = this.value">
<span class="value" id="pesticides_value">{{.PesticideDefault}}</span>
</label>
<label>Crop Type
<select id="item">
{{range .ItemOptions}}<option>{{.}}</option>
{{end}}</select>
</label>
<label>Area/Country
<select id="area">
{{range .AreaOptions}}<option>{{.}}</option>
{{end}}</select>
</label>
<button type="submit">Predict Crop Yield</button>
</form>
</div>
<div class="main">
<h1>&#127793; Crop Yield Prediction for Smallholder Farmers</h1>
<p>This app predicts crop yield (in <strong>hg/ha</strong>) based on environmental and agricultural
factors. Use the sidebar to input data and click 'Predict' to see the results.</p>
{{if .Degraded}}<div class="error">Error reading encoder classes. Predictions are disabled.</div>{{end}}
<div id="result" class="result" hidden>
<h2 id="headline"></h2>
<div class="yield" id="yield"></div>
<hr>
<h2>How this prediction can help:</h2>
<ul id="advisory"></ul>
</div>
<div id="error" class="error" hidden></div>
</div>
<script>
document.getElementById('predict-form').addEventListener('submit', async function(e) {
  e.preventDefault();
  const body = {
    year: parseInt(document.getElementById('year').value, 10),
    rainfall_mm_per_year: parseFloat(document.getElementById('rainfall').value),
    avg_temp_celsius: parseFloat(document.getElementById('avg_temp').value),
    pesticide_tonnes: parseFloat(document.getElementById('pesticides').value),
    area: document.getElementById('area').value,
    item: document.getElementById('item').value
  };
  const resultEl = document.getElementById('result');
  const errorEl = document.getElementById('error');
  resultEl.hidden = true;
  errorEl.hidden = true;
  try {
    const res = await fetch('/api/predict', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(body)
    });
    const json = await res.json();
    if (!res.ok) {
      errorEl.innerText = json.message || 'Prediction failed';
      errorEl.hidden = false;
      return;
    }
    document.getElementById('headline').innerText = json.headline + ':';
    document.getElementById('yield').innerText = json.display;
    const list = document.getElementById('advisory');
    list.innerHTML = '';
    for (const line of json.advisory) {
      const li = document.createElement('li');
      li.innerText = line;
      list.appendChild(li);
    }
    resultEl.hidden = false;
  } catch (err) {
    errorEl.innerText = 'Prediction request failed: ' + err;
    errorEl.hidden = false;
  }
});
</script>
</body>
</html>
`
