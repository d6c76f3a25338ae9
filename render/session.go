// Package render drives a headless Chrome instance to rasterize charts and
// export the assembled report as PDF.
package render

import (
	"context"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"
)

const defaultChartWait = 5 * time.Second

// Chrome implements report.Renderer on top of chromedp. Each operation
// launches its own browser instance and releases it when done; nothing is
// pooled across calls or requests.
type Chrome struct {
	chartWait time.Duration
}

// NewChrome returns a renderer. chartWait bounds how long a chart render
// waits for the canvas to appear; zero means the 5 second default.
func NewChrome(chartWait time.Duration) *Chrome {
	if chartWait <= 0 {
		chartWait = defaultChartWait
	}
	return &Chrome{chartWait: chartWait}
}

// session is one scoped browser instance. Contexts derive from the caller's
// request context, so a client disconnect tears the browser down instead of
// letting it run to completion.
type session struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

func newSession(parent context.Context) *session {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	return &session{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{cancelBrowser, cancelAlloc},
	}
}

// close releases the browser process. Callers defer this immediately after
// newSession so cleanup holds on every failure path.
func (s *session) close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

// dataURI packs an HTML document into a navigable data: URL.
func dataURI(html string) string {
	return "data:text/html;charset=utf-8," + url.PathEscape(html)
}
