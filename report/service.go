package report

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"

	"golang.org/x/sync/errgroup"

	"testprep-server/models"
)

// ErrGenerate is what callers see when any rendering stage fails. The
// underlying stage error travels along as wrapped detail but no partial or
// degraded PDF is ever returned.
var ErrGenerate = errors.New("failed to generate PDF")

// Renderer rasterizes charts and prints documents via a headless browser.
type Renderer interface {
	RenderChart(ctx context.Context, spec models.ChartSpec) (string, error)
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// Generator runs the full report pipeline: domain analysis, chart
// rasterization, HTML assembly and PDF export.
type Generator struct {
	renderer Renderer
	tips     *TipLibrary
}

func NewGenerator(renderer Renderer, tips *TipLibrary) *Generator {
	return &Generator{renderer: renderer, tips: tips}
}

// Tips exposes the tip library for handlers that build report data without
// going through PDF generation (the HTML preview route).
func (g *Generator) Tips() *TipLibrary { return g.tips }

// GeneratePDF produces the report as PDF bytes. The two chart renders share
// no state and run concurrently, each inside its own browser instance with
// its own cleanup guarantee. The whole operation is bound to ctx, so a
// client disconnect cancels the browser work instead of leaking it.
func (g *Generator) GeneratePDF(ctx context.Context, data models.PdfData) ([]byte, error) {
	rd := g.tips.BuildReportData(data)
	perfs := AggregateDomains(data.Answers)

	barSpec := models.BarChartSpec{Color: rd.GradeColor}
	for _, p := range perfs {
		barSpec.Labels = append(barSpec.Labels, p.Domain)
		barSpec.Percentages = append(barSpec.Percentages, p.Percentage)
	}
	pieSpec := models.PieChartSpec{Correct: rd.Score, Incorrect: rd.Total - rd.Score}

	group, groupCtx := errgroup.WithContext(ctx)
	var barURI, pieURI string
	group.Go(func() error {
		uri, err := g.renderer.RenderChart(groupCtx, barSpec)
		if err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		barURI = uri
		return nil
	})
	group.Go(func() error {
		uri, err := g.renderer.RenderChart(groupCtx, pieSpec)
		if err != nil {
			return fmt.Errorf("pie chart: %w", err)
		}
		pieURI = uri
		return nil
	})
	if err := group.Wait(); err != nil {
		log.Printf("Chart rasterization failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	rd.BarChartURI = template.URL(barURI)
	rd.PieChartURI = template.URL(pieURI)

	html, err := RenderHTML(rd)
	if err != nil {
		log.Printf("Report HTML assembly failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	pdf, err := g.renderer.PrintPDF(ctx, html)
	if err != nil {
		log.Printf("PDF export failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	return pdf, nil
}
