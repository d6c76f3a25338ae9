package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"testprep-server/grading"
	"testprep-server/models"
)

// TemplateHTML is the report document template. Exported so the HTTP layer
// can register the same template for the browser preview route.
//
//go:embed templates/report.html
var TemplateHTML string

var reportTmpl = template.Must(template.New("report").Parse(TemplateHTML))

// ReportData is the fully computed view model handed to the report template.
type ReportData struct {
	Subject         string
	Grade           string
	Date            string
	Score           int
	Total           int
	Percentage      int
	GradeColor      string
	BarChartURI     template.URL
	PieChartURI     template.URL
	Recommendations []Recommendation
	Answers         []models.CorrectedAnswer
}

// BuildReportData derives everything the template needs from the submitted
// answers and test details. Chart URIs are filled in separately once the
// charts have been rasterized.
func (lib *TipLibrary) BuildReportData(data models.PdfData) ReportData {
	score := 0
	for _, ans := range data.Answers {
		if ans.IsCorrect {
			score += ans.PointsEarned
		}
	}
	total := len(data.Answers)
	perfs := AggregateDomains(data.Answers)
	recs := lib.Recommendations(FocusAreas(perfs), data.TestDetails.Grade)

	return ReportData{
		Subject:         data.TestDetails.Subject,
		Grade:           data.TestDetails.Grade,
		Date:            time.Now().Format("January 2, 2006"),
		Score:           score,
		Total:           total,
		Percentage:      grading.Percentage(score, total),
		GradeColor:      lib.GradeColor(data.TestDetails.Grade),
		Recommendations: recs,
		Answers:         data.Answers,
	}
}

// RenderHTML executes the report template into a self-contained document.
func RenderHTML(data ReportData) (string, error) {
	var sb strings.Builder
	if err := reportTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return sb.String(), nil
}
