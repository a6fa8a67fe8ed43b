package view

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/vango-dev/kiln/internal/errors"
	"github.com/vango-dev/kiln/pkg/attrs"
)

// Modifier transforms a node. It receives the node wrapped in a Proxy and
// returns either the proxy (usually after adding attributes or
// registrations) or replacement content.
type Modifier func(p Proxy) Node

// Registration writes side-table metadata for the node at id. It runs in
// the engine's registration phase, before any markup is produced.
type Registration func(b *BuildContext, id Identity)

// Proxy wraps a primitive node with accumulated attributes and
// registrations. Applying a modifier to a proxy reuses it, so a chain of
// modifiers yields one wrapper and one element. Proxy takes the position
// of its content and is therefore transparent to identity.
type Proxy struct {
	content Node
	set     attrs.Set
	regs    []Registration
}

func wrap(n Node) Proxy {
	switch p := n.(type) {
	case Proxy:
		return p
	case inlineProxy:
		return p.Proxy
	default:
		return Proxy{content: n}
	}
}

// Content returns the wrapped node without the proxy's attributes.
func (p Proxy) Content() Node { return p.content }

func (p Proxy) Kind() Kind { return KindPrimitive }

// Attributes returns the content's attributes merged with the proxy's.
func (p Proxy) Attributes() attrs.Set {
	return p.content.Attributes().Merge(p.set)
}

func (p Proxy) WithAttributes(set attrs.Set) Node { return promote(p.withAttributes(set)) }

func (p Proxy) withAttributes(set attrs.Set) Proxy {
	p.content = p.content.WithAttributes(set)
	p.set = attrs.Set{}
	return p
}

// Markup renders the content with the merged attribute set.
func (p Proxy) Markup(ctx *Context) (string, error) {
	target := p.content.WithAttributes(p.Attributes())
	prim, ok := target.(Primitive)
	if !ok {
		return "", errors.New("K002").WithDetailf("%T", target)
	}
	return prim.Markup(ctx)
}

// Contents exposes the content's nested nodes for the registration walk.
func (p Proxy) Contents() []Node {
	if par, ok := p.content.(Parent); ok {
		return par.Contents()
	}
	return nil
}

// Registrations returns the recorded side-table registrations.
func (p Proxy) Registrations() []Registration { return slices.Clone(p.regs) }

// Merge merges set into the proxy's attributes.
func (p Proxy) Merge(set attrs.Set) Proxy {
	p.set = p.set.Merge(set)
	return p
}

func (p Proxy) Style(decls ...attrs.Style) Proxy {
	p.set = p.set.AddStyles(decls...)
	return p
}

func (p Proxy) Class(classes ...string) Proxy {
	p.set = p.set.AddClasses(classes...)
	return p
}

func (p Proxy) ID(id string) Proxy {
	p.set = p.set.WithID(id)
	return p
}

func (p Proxy) Attr(list ...attrs.Attribute) Proxy {
	p.set = p.set.AddCustom(list...)
	return p
}

func (p Proxy) Data(list ...attrs.Attribute) Proxy {
	p.set = p.set.AddData(list...)
	return p
}

func (p Proxy) Aria(list ...attrs.Attribute) Proxy {
	p.set = p.set.AddAria(list...)
	return p
}

func (p Proxy) On(eventType string, actions ...string) Proxy {
	p.set = p.set.AddEvents(attrs.On(eventType, actions...))
	return p
}

// Register records r to be replayed with this node's identity.
func (p Proxy) Register(r Registration) Proxy {
	if r != nil {
		p.regs = append(slices.Clip(p.regs), r)
	}
	return p
}

// inlineProxy is a Proxy around inline content.
type inlineProxy struct {
	Proxy
	InlineContent
}

func (p inlineProxy) WithAttributes(set attrs.Set) Node {
	return inlineProxy{Proxy: p.withAttributes(set)}
}

func promote(p Proxy) Node {
	if _, ok := p.content.(Inline); ok {
		return inlineProxy{Proxy: p}
	}
	return p
}

// Apply applies m to n. A primitive is wrapped in a proxy and handed to m.
// A composite is flattened and m is applied to each child independently;
// the results are recombined into a composite of the same family. Apply
// never fails.
func Apply(n Node, m Modifier) Node {
	if n == nil || m == nil {
		return n
	}
	if IsComposite(n) {
		c, ok := n.(Composite)
		if !ok {
			return n
		}
		children := Nodes(n)
		out := make([]Node, len(children))
		for i, child := range children {
			out[i] = applyOne(child, m)
		}
		return c.WithChildren(out)
	}
	return applyOne(n, m)
}

func applyOne(n Node, m Modifier) Node {
	out := m(wrap(n))
	switch r := out.(type) {
	case nil:
		return Empty()
	case Proxy:
		return promote(r)
	default:
		return r
	}
}

// ApplyInline applies m while keeping the inline contract. If m turns an
// inline node into block content, the violation is logged and the node is
// returned without m's effect.
func ApplyInline(n Inline, m Modifier) Inline {
	if n == nil || m == nil {
		return n
	}
	if IsComposite(n) {
		children := Nodes(n)
		out := make([]Inline, 0, len(children))
		for _, child := range children {
			in, ok := child.(Inline)
			if !ok {
				logInlineViolation(child)
				continue
			}
			out = append(out, applyInlineOne(in, m))
		}
		if c, ok := n.(Composite); ok {
			if in, ok := c.WithChildren(toNodes(out)).(Inline); ok {
				return in
			}
		}
		return InlineGroup(out...)
	}
	return applyInlineOne(n, m)
}

func applyInlineOne(n Inline, m Modifier) Inline {
	out := applyOne(n, m)
	if in, ok := out.(Inline); ok {
		return in
	}
	logInlineViolation(out)
	return n
}

func logInlineViolation(n Node) {
	err := errors.New("K102").WithDetailf("modifier produced %T", n)
	slog.Default().Warn("inline modifier dropped", "code", err.Code, "error", err)
}

// Modify applies mods to n in order.
func Modify(n Node, mods ...Modifier) Node {
	for _, m := range mods {
		n = Apply(n, m)
	}
	return n
}

// ModifyInline applies mods to n in order, keeping the inline contract.
func ModifyInline(n Inline, mods ...Modifier) Inline {
	for _, m := range mods {
		n = ApplyInline(n, m)
	}
	return n
}

// String implements fmt.Stringer.
func (p Proxy) String() string {
	return fmt.Sprintf("Proxy(%T %s)", p.content, p.Attributes())
}
