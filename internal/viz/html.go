package viz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
)

// ErrNoOfflineBundle is returned when offline output is requested from a
// build without the Cytoscape.js bundle embedded.
var ErrNoOfflineBundle = errors.New("no Cytoscape.js bundle in this build; offline output unavailable")

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("dashboard").Parse(htmlTemplate))
}

// HTMLOptions configures HTML generation.
type HTMLOptions struct {
	Layout  string // "force", "circle", or "grid"
	Offline bool   // Whether to embed Cytoscape.js inline
}

// DefaultOptions returns default HTML generation options.
func DefaultOptions() HTMLOptions {
	return HTMLOptions{
		Layout:  "force",
		Offline: false,
	}
}

// ValidLayouts lists the supported layout algorithm names.
var ValidLayouts = []string{"force", "circle", "grid"}

// GenerateHTML generates a self-contained HTML dashboard.
func GenerateHTML(d *DashboardData, opts HTMLOptions) (string, error) {
	if d == nil {
		return "", fmt.Errorf("dashboard data cannot be nil")
	}

	if err := validateLayout(opts.Layout); err != nil {
		return "", err
	}

	if opts.Offline && cytoscapeJS == "" {
		return "", ErrNoOfflineBundle
	}

	if d.IsEmpty() {
		return generateEmptyHTML(), nil
	}

	graphJSON, err := ToCytoscapeJSON(d.Graph)
	if err != nil {
		return "", err
	}

	viewsJSON, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshaling dashboard views to JSON: %w", err)
	}

	data := templateData{
		ScriptTag: template.HTML(buildScriptTag(opts.Offline)),
		GraphJSON: template.JS(graphJSON),
		ViewsJSON: template.JS(viewsJSON),
		Layout:    layoutToCytoscape(opts.Layout),
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// validateLayout checks if the layout option is valid.
func validateLayout(layout string) error {
	switch layout {
	case "", "force", "circle", "grid":
		return nil
	default:
		return fmt.Errorf("invalid layout %q: must be force, circle, or grid", layout)
	}
}

// templateData holds data for the HTML template.
type templateData struct {
	ScriptTag template.HTML
	GraphJSON template.JS
	ViewsJSON template.JS
	Layout    string
}

// layoutToCytoscape converts user-friendly layout names to Cytoscape.js layout algorithm names.
func layoutToCytoscape(layout string) string {
	switch layout {
	case "circle":
		return "circle"
	case "grid":
		return "grid"
	default:
		return "cose"
	}
}

// buildScriptTag returns either inline script or CDN reference.
func buildScriptTag(offline bool) string {
	if offline {
		return "<script>" + cytoscapeJS + "</script>"
	}
	return `<script src="https://unpkg.com/cytoscape@3/dist/cytoscape.min.js"></script>`
}

// generateEmptyHTML returns HTML for an empty dashboard state.
func generateEmptyHTML() string {
	return `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Citation Dashboard - Empty</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex;
      justify-content: center;
      align-items: center;
      height: 100vh;
      margin: 0;
      background: #f5f5f5;
    }
    .empty-state {
      text-align: center;
      color: #666;
    }
    .empty-state h2 {
      margin-bottom: 0.5em;
      color: #333;
    }
    .empty-state code {
      background: #e0e0e0;
      padding: 2px 6px;
      border-radius: 3px;
    }
  </style>
</head>
<body>
  <div class="empty-state">
    <h2>No topic data</h2>
    <p>The repository has no topic clusters loaded yet.</p>
    <p>Import relations with <code>cb import</code> or <code>cb fetch</code></p>
  </div>
</body>
</html>`
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Citation Dashboard</title>
  {{.ScriptTag}}
  <style>
    * { box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      padding: 0;
      background: #f5f5f5;
    }
    #panels {
      display: grid;
      grid-template-columns: 3fr 2fr;
      grid-template-rows: 3fr 2fr;
      gap: 8px;
      padding: 8px;
      height: 100vh;
    }
    .panel {
      background: white;
      border: 1px solid #ddd;
      border-radius: 4px;
      overflow: auto;
      position: relative;
    }
    .panel h3 {
      margin: 8px 12px;
      font-size: 13px;
      color: #555;
      text-transform: uppercase;
    }
    #cy { width: 100%; height: calc(100% - 34px); }
    #timeline-canvas, #dist-canvas { display: block; margin: 0 auto; }
    table { border-collapse: collapse; width: 100%; font-size: 13px; }
    th, td { text-align: left; padding: 4px 12px; border-bottom: 1px solid #eee; }
    tr.top-three td { font-weight: bold; color: #B7410E; }
    tr.theory-row { cursor: pointer; }
    tr.theory-row.selected td { background: #FFF3E0; }
    .hint { color: #999; font-size: 12px; margin: 8px 12px; }
  </style>
</head>
<body>
  <div id="panels">
    <div class="panel"><h3>Topic graph</h3><div id="cy"></div></div>
    <div class="panel"><h3 id="timeline-title">Cumulative citations</h3><canvas id="timeline-canvas" width="560" height="340"></canvas></div>
    <div class="panel"><h3 id="theories-title">Theories</h3><div id="theories"><p class="hint">Select a psychology topic</p></div></div>
    <div class="panel"><h3 id="dist-title">Theory distribution</h3><canvas id="dist-canvas" width="560" height="220"></canvas><p class="hint" id="dist-hint">Select a theory</p></div>
  </div>
  <script>
    (function() {
      const graphData = {{.GraphJSON}};
      const views = {{.ViewsJSON}};
      const layout = "{{.Layout}}";

      const palette = ['#4A90D9','#E8923A','#5CB85C','#9B59B6','#E74C3C',
                       '#1ABC9C','#F1C40F','#34495E','#FF6B9D','#7F8C8D'];
      const color = i => palette[i % palette.length];

      // Selection state. Toggle semantics on both axes; the axes are
      // independent, but changing the psych topic clears the theory.
      let sel = { llm: '', psych: '', theory: '' };

      const cy = cytoscape({
        container: document.getElementById('cy'),
        elements: graphData,
        style: [
          {
            selector: 'node[side="llm"]',
            style: {
              'background-color': ele => color(ele.data('cluster_index')),
              'label': 'data(label)',
              'font-size': '9px',
              'text-valign': 'bottom',
              'text-margin-y': '4px',
              'width': 'mapData(size, 0, 200, 18, 50)',
              'height': 'mapData(size, 0, 200, 18, 50)'
            }
          },
          {
            selector: 'node[side="psych"]',
            style: {
              'background-color': ele => color(ele.data('cluster_index')),
              'shape': 'diamond',
              'label': 'data(label)',
              'font-size': '9px',
              'text-valign': 'bottom',
              'text-margin-y': '4px',
              'width': 'mapData(size, 0, 200, 18, 50)',
              'height': 'mapData(size, 0, 200, 18, 50)'
            }
          },
          {
            selector: 'edge',
            style: {
              'line-color': '#B0BEC5',
              'curve-style': 'bezier',
              'width': 'mapData(weight, 1, 50, 1, 8)',
              'opacity': 0.6
            }
          },
          { selector: 'node.selected', style: { 'border-width': 3, 'border-color': '#ff6b6b' } },
          { selector: 'node.dimmed', style: { 'opacity': 0.3 } }
        ],
        layout: { name: layout }
      });

      cy.on('tap', 'node', evt => {
        const d = evt.target.data();
        if (d.side === 'llm') {
          sel.llm = (sel.llm === d.cluster_key) ? '' : d.cluster_key;
        } else {
          sel.psych = (sel.psych === d.cluster_key) ? '' : d.cluster_key;
          sel.theory = '';
        }
        render();
      });

      function markSelection() {
        cy.nodes().removeClass('selected dimmed');
        if (sel.llm) cy.getElementById('llm:' + sel.llm).addClass('selected');
        if (sel.psych) cy.getElementById('psych:' + sel.psych).addClass('selected');
      }

      function drawSeries(canvas, seriesList) {
        const ctx = canvas.getContext('2d');
        ctx.clearRect(0, 0, canvas.width, canvas.height);
        const months = [...new Set(seriesList.flatMap(s => s.points.map(p => p.month)))].sort();
        if (months.length === 0) return;
        const maxY = Math.max(...seriesList.flatMap(s => s.points.map(p => p.citations)));
        const pad = 30, w = canvas.width - 2 * pad, h = canvas.height - 2 * pad;
        const x = m => pad + w * months.indexOf(m) / Math.max(1, months.length - 1);
        const y = v => pad + h - h * v / Math.max(1, maxY);
        seriesList.forEach((s, i) => {
          ctx.strokeStyle = s.color || color(i);
          ctx.lineWidth = 2;
          ctx.beginPath();
          s.points.forEach((p, j) => j ? ctx.lineTo(x(p.month), y(p.citations)) : ctx.moveTo(x(p.month), y(p.citations)));
          ctx.stroke();
        });
        ctx.fillStyle = '#888';
        ctx.font = '10px sans-serif';
        ctx.fillText(months[0], pad, canvas.height - 8);
        ctx.fillText(months[months.length - 1], pad + w - 44, canvas.height - 8);
        ctx.fillText(String(maxY), 4, pad + 4);
      }

      function renderTimeline() {
        const canvas = document.getElementById('timeline-canvas');
        const title = document.getElementById('timeline-title');
        if (sel.llm && views.psych_series[sel.llm] && views.psych_series[sel.llm].length) {
          title.textContent = 'Citations by psychology topic: ' + sel.llm;
          drawSeries(canvas, views.psych_series[sel.llm].map((s, i) => ({points: s.points, color: color(i)})));
        } else {
          title.textContent = 'Cumulative citations' + (sel.llm ? ': ' + sel.llm : '');
          const pts = views.series[sel.llm || ''] || [];
          drawSeries(canvas, [{points: pts}]);
        }
      }

      function renderTheories() {
        const el = document.getElementById('theories');
        document.getElementById('theories-title').textContent = 'Theories' + (sel.psych ? ': ' + sel.psych : '');
        const rows = sel.psych ? (views.theory_tables[sel.psych] || []) : [];
        if (rows.length === 0) {
          el.innerHTML = '<p class="hint">Select a psychology topic</p>';
          return;
        }
        let html = '<table><tr><th>Subtopic</th><th>Theory</th><th>Citations</th></tr>';
        rows.forEach(r => {
          const cls = (r.top_three ? 'top-three ' : '') + 'theory-row' +
            (sel.theory === r.theory_name ? ' selected' : '');
          html += '<tr class="' + cls + '" data-theory="' + r.theory_name + '"><td>' +
            r.subtopic_label + '</td><td>' + r.theory_name + '</td><td>' + r.citation_count + '</td></tr>';
        });
        el.innerHTML = html + '</table>';
        el.querySelectorAll('tr.theory-row').forEach(tr => {
          tr.addEventListener('click', () => {
            const name = tr.getAttribute('data-theory');
            sel.theory = (sel.theory === name) ? '' : name;
            render();
          });
        });
      }

      function renderDistribution() {
        const canvas = document.getElementById('dist-canvas');
        const hint = document.getElementById('dist-hint');
        const ctx = canvas.getContext('2d');
        ctx.clearRect(0, 0, canvas.width, canvas.height);
        document.getElementById('dist-title').textContent = 'Theory distribution' + (sel.theory ? ': ' + sel.theory : '');
        const rows = sel.theory ? (views.distributions[sel.theory] || []) : [];
        hint.style.display = rows.length ? 'none' : 'block';
        if (!rows.length) return;
        const maxC = Math.max(1, ...rows.map(r => r.count));
        const barH = Math.min(18, (canvas.height - 10) / rows.length - 4);
        rows.forEach((r, i) => {
          const yPos = 5 + i * (barH + 4);
          ctx.fillStyle = color(i);
          ctx.fillRect(150, yPos, (canvas.width - 200) * r.count / maxC, barH);
          ctx.fillStyle = '#333';
          ctx.font = '10px sans-serif';
          ctx.fillText(r.topic_label.slice(0, 24), 4, yPos + barH - 4);
          ctx.fillText(String(r.count), canvas.width - 40, yPos + barH - 4);
        });
      }

      function render() {
        markSelection();
        renderTimeline();
        renderTheories();
        renderDistribution();
      }

      render();
    })();
  </script>
</body>
</html>`

// cytoscapeJS holds the Cytoscape.js source inlined into offline pages.
// Builds that vendor the bundle populate it with go:embed; when it is
// empty, offline generation fails with ErrNoOfflineBundle rather than
// emitting a page that cannot render.
var cytoscapeJS string
