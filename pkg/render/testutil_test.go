package render

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/vango-dev/kiln/pkg/layout"
	"github.com/vango-dev/kiln/pkg/modifier"
	"github.com/vango-dev/kiln/pkg/view"
)

var errTestWrite = errors.New("test write error")

type countingWriter struct {
	Writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.Writes++
	return len(p), nil
}

type failingWriter struct {
	FailAt int
	Writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.Writes++
	if w.Writes == w.FailAt {
		return 0, errTestWrite
	}
	return len(p), nil
}

func quietConfig() RendererConfig {
	return RendererConfig{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// samplePage is a list with one styled row, a font and a code block.
func samplePage() view.Node {
	return view.Section(
		view.Modify(view.H(1, view.Text("Notes")), modifier.Font("Inter", "https://fonts.example/inter.css")),
		layout.List(
			view.Text("one"),
			view.Modify(view.Text("two"), modifier.ListRowBackground("blue")),
			view.Text("three"),
		),
		view.CodeBlock("go", "fmt.Println(1)"),
	)
}

func countOf(s, substr string) int { return strings.Count(s, substr) }
