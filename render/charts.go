package render

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"testprep-server/models"
)

const chartPageTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8">
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>
</head>
<body style="margin:0;background:#fff">
<canvas id="chart" width="600" height="400"></canvas>
<script>
  new Chart(document.getElementById("chart"), %s);
  window.__chartReady = true;
</script>
</body>
</html>`

// The poll resolves once the chart script has run and the canvas reports
// nonzero dimensions.
const chartReadyExpr = `window.__chartReady === true &&
	document.querySelector("#chart") !== null &&
	document.querySelector("#chart").width > 0`

// RenderChart rasterizes one chart spec to a base64 PNG data URI. The chart
// page embeds Chart.js plus the spec as JSON; the render waits (bounded by
// the configured timeout) for the canvas to come up and fails loudly if it
// never does.
func (c *Chrome) RenderChart(ctx context.Context, spec models.ChartSpec) (string, error) {
	cfg, err := json.Marshal(spec.Config())
	if err != nil {
		return "", fmt.Errorf("failed to encode chart config: %w", err)
	}
	page := fmt.Sprintf(chartPageTemplate, cfg)

	s := newSession(ctx)
	defer s.close()

	var ready bool
	var shot []byte
	err = chromedp.Run(s.ctx,
		chromedp.Navigate(dataURI(page)),
		chromedp.Poll(chartReadyExpr, &ready,
			chromedp.WithPollingInterval(100*time.Millisecond),
			chromedp.WithPollingTimeout(c.chartWait)),
		chromedp.Screenshot("#chart", &shot, chromedp.NodeVisible),
	)
	if err != nil {
		return "", fmt.Errorf("failed to rasterize %s: %w", spec.Title(), err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(shot), nil
}
