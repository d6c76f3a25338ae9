package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testprep-server/models"
)

func TestBarChartSpecConfig(t *testing.T) {
	spec := models.BarChartSpec{
		Labels:      []string{"EE", "NS"},
		Percentages: []int{50, 100},
		Color:       "#FF9800",
	}
	cfg := spec.Config()
	assert.Equal(t, "bar", cfg.Type)
	assert.Equal(t, []string{"EE", "NS"}, cfg.Data.Labels)
	require.Len(t, cfg.Data.Datasets, 1)
	assert.Equal(t, []int{50, 100}, cfg.Data.Datasets[0].Data)
	// One bar, one color, all the grade color.
	assert.Equal(t, []string{"#FF9800", "#FF9800"}, cfg.Data.Datasets[0].BackgroundColor)
}

func TestPieChartSpecConfig(t *testing.T) {
	cfg := models.PieChartSpec{Correct: 7, Incorrect: 3}.Config()
	assert.Equal(t, "pie", cfg.Type)
	assert.Equal(t, []string{"Correct", "Incorrect"}, cfg.Data.Labels)
	require.Len(t, cfg.Data.Datasets, 1)
	assert.Equal(t, []int{7, 3}, cfg.Data.Datasets[0].Data)
	assert.Len(t, cfg.Data.Datasets[0].BackgroundColor, 2)
}

func TestChartConfigSerializes(t *testing.T) {
	cfg := models.PieChartSpec{Correct: 1, Incorrect: 1}.Config()
	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"pie"`)
	assert.Contains(t, string(raw), `"labels":["Correct","Incorrect"]`)
}
