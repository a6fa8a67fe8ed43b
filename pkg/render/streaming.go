package render

import (
	"context"
	"io"
	"net/http"
)

// StreamingRenderer wraps Renderer with chunked output support. The body
// is rendered before anything is written, since the head depends on the
// resources it discovers; the document is then flushed after the head and
// after the body.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to w. If w
// implements http.Flusher, content is flushed after each section.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	return newStreaming(NewRenderer(config), w)
}

// Streaming returns a streaming renderer sharing r's configuration.
func (r *Renderer) Streaming(w io.Writer) *StreamingRenderer {
	return newStreaming(r, w)
}

func newStreaming(r *Renderer, w io.Writer) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: r,
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage renders a complete HTML document with incremental flushing.
func (s *StreamingRenderer) RenderPage(ctx context.Context, page Page) (Result, error) {
	res, err := s.Render(ctx, page.Body)
	if err != nil {
		return res, err
	}
	return res, s.writePage(s.w, page, res, s.flush)
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer and counts flushes. It is useful for
// testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
