package web

const pageHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>bedtimecalc</title>
  {{if .ShareDescription}}
  <meta name="description" content="{{.ShareDescription}}">
  <meta property="og:description" content="{{.ShareDescription}}">
  {{end}}
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; padding: 24px; max-width: 560px; box-sizing: border-box; }
    * { box-sizing: border-box; }
    h2 { margin-top: 0; font-weight: 600; }
    .err { color: #b00020; margin: 12px 0; padding: 10px; background: #ffebee; border-radius: 6px; }
    .card { border: 1px solid #e0e0e0; border-radius: 10px; padding: 16px; margin: 16px 0; background: #fafafa; }
    .mono { font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace; }
    footer { margin-top: 40px; color: #666; font-size: 0.9em; text-align: center; }

    .form-section { margin-bottom: 18px; }
    .form-section-title { font-size: 0.85em; font-weight: 600; text-transform: uppercase; letter-spacing: 0.04em; color: #555; margin-bottom: 12px; padding-bottom: 6px; border-bottom: 1px solid #e0e0e0; }
    .field input, .field select { padding: 8px 10px; font-size: 1em; border: 1px solid #ccc; border-radius: 6px; }
    .field input:focus, .field select:focus { outline: none; border-color: #1976d2; box-shadow: 0 0 0 2px rgba(25,118,210,0.2); }
    .stepper { display: flex; align-items: center; gap: 12px; }
    .stepper button { width: 40px; height: 36px; font-size: 1.1em; background: #f5f5f5; border: 1px solid #ccc; border-radius: 6px; cursor: pointer; }
    .stepper button:disabled { color: #bbb; cursor: default; }
    .form-actions { padding-top: 16px; border-top: 1px solid #e0e0e0; }
    button[type="submit"].primary { padding: 10px 20px; font-size: 1em; font-weight: 500; background: #1976d2; color: #fff; border: none; border-radius: 6px; cursor: pointer; }
    button[type="submit"].primary:hover { background: #1565c0; }
    .result { font-size: 1.6em; font-weight: 700; }
    .hint { color: #666; font-size: 0.9em; margin-top: 4px; }
  </style>
</head>
<body>
  <h2>BetterRest</h2>
  <form method="POST" action="/calc">
    <input type="hidden" name="sleep" value="{{.Sleep}}">

    <div class="form-section">
      <div class="form-section-title">When do you want to wake up?</div>
      <div class="field">
        <input id="wake" name="wake" type="time" value="{{.Wake}}" required onchange="this.form.submit()">
      </div>
    </div>

    <div class="form-section">
      <div class="form-section-title">Desired amount of sleep</div>
      <div class="field stepper">
        <button type="submit" name="step" value="sleep-" aria-label="Less sleep" {{if .AtMinSleep}}disabled{{end}}>&minus;</button>
        <span>{{.SleepLabel}}</span>
        <button type="submit" name="step" value="sleep+" aria-label="More sleep" {{if .AtMaxSleep}}disabled{{end}}>+</button>
      </div>
    </div>

    <div class="form-section">
      <div class="form-section-title">Daily coffee intake</div>
      <div class="field">
        <select id="coffee" name="coffee" onchange="this.form.submit()">
          {{range .Cups}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
        </select>
      </div>
    </div>

    <noscript>
      <div class="form-actions">
        <button type="submit" class="primary">Calculate</button>
      </div>
    </noscript>
  </form>

  {{if .Error}}<div class="err">{{.Error}}</div>{{end}}

  {{with .Result}}
    <div class="card">
      <div>{{.Title}}</div>
      <div class="result mono">{{.Message}}</div>
      {{if .PreviousDay}}<div class="hint">the night before</div>{{end}}
    </div>
  {{end}}

  <footer>bedtimecalc v{{.Version}}</footer>
</body>
</html>`
