package models

// ChartConfig mirrors the Chart.js configuration object that gets serialized
// into the chart page as JSON.
type ChartConfig struct {
	Type    string         `json:"type"`
	Data    ChartData      `json:"data"`
	Options map[string]any `json:"options,omitempty"`
}

// ChartData holds labels and datasets for a chart.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is one series of values with its colors.
type ChartDataset struct {
	Label           string   `json:"label,omitempty"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

// ChartSpec is a strictly typed chart definition. Each variant knows how to
// produce its own Chart.js config, so malformed chart setups fail at compile
// time rather than inside the browser.
type ChartSpec interface {
	Config() ChartConfig
	Title() string
}

// BarChartSpec plots per-domain percentage scores as vertical bars in a
// single color (the grade color).
type BarChartSpec struct {
	Labels      []string
	Percentages []int
	Color       string
}

func (s BarChartSpec) Title() string { return "Performance by Domain" }

func (s BarChartSpec) Config() ChartConfig {
	colors := make([]string, len(s.Percentages))
	for i := range colors {
		colors[i] = s.Color
	}
	return ChartConfig{
		Type: "bar",
		Data: ChartData{
			Labels: s.Labels,
			Datasets: []ChartDataset{{
				Label:           "Score (%)",
				Data:            s.Percentages,
				BackgroundColor: colors,
			}},
		},
		Options: map[string]any{
			"animation":  false,
			"responsive": false,
			"scales": map[string]any{
				"y": map[string]any{"beginAtZero": true, "max": 100},
			},
			"plugins": map[string]any{
				"legend": map[string]any{"display": false},
			},
		},
	}
}

// PieChartSpec plots overall correct vs incorrect counts with a fixed
// two-color palette.
type PieChartSpec struct {
	Correct   int
	Incorrect int
}

func (s PieChartSpec) Title() string { return "Overall Results" }

func (s PieChartSpec) Config() ChartConfig {
	return ChartConfig{
		Type: "pie",
		Data: ChartData{
			Labels: []string{"Correct", "Incorrect"},
			Datasets: []ChartDataset{{
				Data:            []int{s.Correct, s.Incorrect},
				BackgroundColor: []string{"#4CAF50", "#F44336"},
			}},
		},
		Options: map[string]any{
			"animation":  false,
			"responsive": false,
		},
	}
}
