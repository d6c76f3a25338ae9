package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testprep-server/models"
	"testprep-server/report"
)

func samplePdfData() models.PdfData {
	return models.PdfData{
		Answers: []models.CorrectedAnswer{
			answer(1, "(6.EE)", true),
			answer(2, "(6.EE)", false),
			answer(3, "(6.NS)", true),
		},
		TestDetails: models.TestDetails{Subject: "Math", Grade: "6", Domain: "(6.EE)"},
	}
}

func TestBuildReportData(t *testing.T) {
	lib := report.DefaultTipLibrary()
	rd := lib.BuildReportData(samplePdfData())

	assert.Equal(t, "Math", rd.Subject)
	assert.Equal(t, "6", rd.Grade)
	assert.Equal(t, 2, rd.Score)
	assert.Equal(t, 3, rd.Total)
	assert.Equal(t, 67, rd.Percentage)
	assert.Equal(t, lib.GradeColors["6"], rd.GradeColor)
	assert.NotEmpty(t, rd.Date)
	// (6.EE) is at 50% so it drives the recommendations.
	require.Len(t, rd.Recommendations, 1)
	assert.Equal(t, "Expressions and Equations", rd.Recommendations[0].Domain)
	assert.Len(t, rd.Answers, 3)
}

func TestRenderHTMLContainsSections(t *testing.T) {
	lib := report.DefaultTipLibrary()
	rd := lib.BuildReportData(samplePdfData())
	rd.BarChartURI = "data:image/png;base64,AAAA"
	rd.PieChartURI = "data:image/png;base64,BBBB"

	html, err := report.RenderHTML(rd)
	require.NoError(t, err)

	assert.Contains(t, html, "Math Test Results")
	assert.Contains(t, html, "Grade 6")
	assert.Contains(t, html, "2/3")
	assert.Contains(t, html, "67%")
	assert.Contains(t, html, "data:image/png;base64,AAAA")
	assert.Contains(t, html, "data:image/png;base64,BBBB")
	assert.Contains(t, html, "Expressions and Equations")
	// Per-row conditional styling for correct vs incorrect answers.
	assert.Contains(t, html, `class="correct"`)
	assert.Contains(t, html, `class="incorrect"`)
}

func TestRenderHTMLWithoutCharts(t *testing.T) {
	lib := report.DefaultTipLibrary()
	rd := lib.BuildReportData(samplePdfData())

	html, err := report.RenderHTML(rd)
	require.NoError(t, err)
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "Question Results")
}

func TestRenderHTMLShowsDashForSkippedAnswer(t *testing.T) {
	lib := report.DefaultTipLibrary()
	data := samplePdfData()
	data.Answers = append(data.Answers, models.CorrectedAnswer{
		QuestionID:    4,
		CorrectAnswer: "C",
		Domain:        "(6.G)",
	})
	html, err := report.RenderHTML(lib.BuildReportData(data))
	require.NoError(t, err)
	assert.Contains(t, html, "&mdash;")
}
