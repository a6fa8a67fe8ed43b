package view

import (
	"log/slog"
	"slices"

	"github.com/vango-dev/kiln/internal/errors"
)

// BuildContext is the render-scoped side table. Registrations write into
// typed sub-tables keyed by Identity; containers read them back while
// rendering. Begin clears every table, End seals it: later writes are
// logged and ignored until the next Begin.
//
// A BuildContext is owned by a single render and is not safe for
// concurrent use.
type BuildContext struct {
	logger *slog.Logger
	active bool
	sealed bool

	rowBackground *Table[string]
	rowPadding    *Table[Edges]
	rowRadius     *Table[Corners]
	rowSpacing    *Table[string]

	dismiss                *Table[DismissPolicy]
	presentationBackground *Table[string]

	fonts       []Font
	stylesheets []string
	scripts     []string
	languages   []string
}

// NewBuildContext creates an inactive build context. A nil logger uses
// slog.Default().
func NewBuildContext(logger *slog.Logger) *BuildContext {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildContext{
		logger:                 logger,
		rowBackground:          NewTable(replace[string]),
		rowPadding:             NewTable(Edges.Merge),
		rowRadius:              NewTable(Corners.Merge),
		rowSpacing:             NewTable(replace[string]),
		dismiss:                NewTable(replace[DismissPolicy]),
		presentationBackground: NewTable(replace[string]),
	}
}

// Begin clears every table and opens the context for registration.
func (b *BuildContext) Begin() {
	b.rowBackground.Reset()
	b.rowPadding.Reset()
	b.rowRadius.Reset()
	b.rowSpacing.Reset()
	b.dismiss.Reset()
	b.presentationBackground.Reset()
	b.fonts = nil
	b.stylesheets = nil
	b.scripts = nil
	b.languages = nil
	b.active = true
	b.sealed = false
}

// End seals the context. Lookups keep working.
func (b *BuildContext) End() {
	b.active = false
	b.sealed = true
}

// Active reports whether the context is between Begin and End.
func (b *BuildContext) Active() bool { return b.active }

// Sealed reports whether End has been called since the last Begin.
func (b *BuildContext) Sealed() bool { return b.sealed }

func (b *BuildContext) writable(what string, id Identity) bool {
	if b.active {
		return true
	}
	err := errors.New("K005").WithDetailf("%s for %q", what, id)
	b.logger.Warn("side table write ignored", "code", err.Code, "error", err)
	return false
}

// RegisterListRow merges row into the record for id. Only the set fields of
// row are written.
func (b *BuildContext) RegisterListRow(id Identity, row ListRow) {
	if !b.writable("list row", id) {
		return
	}
	if row.Background != "" {
		b.rowBackground.Register(id, row.Background)
	}
	if !row.Padding.IsZero() {
		b.rowPadding.Register(id, row.Padding)
	}
	if !row.CornerRadius.IsZero() {
		b.rowRadius.Register(id, row.CornerRadius)
	}
	if row.Spacing != "" {
		b.rowSpacing.Register(id, row.Spacing)
	}
}

// ListRow assembles the list row record for id from every sub-table.
func (b *BuildContext) ListRow(id Identity) (ListRow, bool) {
	var row ListRow
	row.Background, _ = b.rowBackground.Lookup(id)
	row.Padding, _ = b.rowPadding.Lookup(id)
	row.CornerRadius, _ = b.rowRadius.Lookup(id)
	row.Spacing, _ = b.rowSpacing.Lookup(id)
	return row, !row.IsZero()
}

// RegisterPresentation merges p into the record for id.
func (b *BuildContext) RegisterPresentation(id Identity, p Presentation) {
	if !b.writable("presentation", id) {
		return
	}
	if p.Dismiss != DismissDefault {
		b.dismiss.Register(id, p.Dismiss)
	}
	if p.Background != "" {
		b.presentationBackground.Register(id, p.Background)
	}
}

// Presentation assembles the presentation record for id.
func (b *BuildContext) Presentation(id Identity) (Presentation, bool) {
	var p Presentation
	p.Dismiss, _ = b.dismiss.Lookup(id)
	p.Background, _ = b.presentationBackground.Lookup(id)
	return p, !p.IsZero()
}

// Entries returns the number of side-table values written in this render.
func (b *BuildContext) Entries() int {
	return b.rowBackground.Len() + b.rowPadding.Len() + b.rowRadius.Len() +
		b.rowSpacing.Len() + b.dismiss.Len() + b.presentationBackground.Len()
}

// UseFont records a web font. Fonts are keyed by family.
func (b *BuildContext) UseFont(f Font) {
	if f.Family == "" || !b.writable("font", Identity(f.Family)) {
		return
	}
	if !slices.ContainsFunc(b.fonts, func(x Font) bool { return x.Family == f.Family }) {
		b.fonts = append(b.fonts, f)
	}
}

// UseStylesheet records a stylesheet URL.
func (b *BuildContext) UseStylesheet(href string) {
	if href != "" && b.writable("stylesheet", Identity(href)) {
		b.stylesheets = appendUnique(b.stylesheets, href)
	}
}

// UseScript records a script URL.
func (b *BuildContext) UseScript(src string) {
	if src != "" && b.writable("script", Identity(src)) {
		b.scripts = appendUnique(b.scripts, src)
	}
}

// UseLanguage records a code highlighting language.
func (b *BuildContext) UseLanguage(lang string) {
	if lang != "" && b.writable("language", Identity(lang)) {
		b.languages = appendUnique(b.languages, lang)
	}
}

// Assets returns the resources discovered so far.
func (b *BuildContext) Assets() Assets {
	return Assets{
		Fonts:       slices.Clone(b.fonts),
		Stylesheets: slices.Clone(b.stylesheets),
		Scripts:     slices.Clone(b.scripts),
		Languages:   slices.Clone(b.languages),
	}
}

func appendUnique(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}
