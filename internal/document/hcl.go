package document

import (
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vango-dev/kiln/internal/errors"
)

func parseHCL(data []byte, filename string, vars Vars) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, errors.New("K143").WithDetail("not native HCL syntax")
	}

	p := &hclPage{filename: filename, eval: evalContext(vars)}
	doc := &Document{}

	for _, attr := range sortedAttributes(body) {
		v, err := p.value(attr)
		if err != nil {
			return nil, err
		}
		switch attr.Name {
		case "title":
			doc.Title, err = p.str(attr, v)
		case "locale":
			doc.Locale, err = p.str(attr, v)
		case "stylesheets":
			doc.StyleSheets, err = p.list(attr, v)
		default:
			err = p.errAt(errors.New("K142").WithDetailf("unknown page attribute %q", attr.Name), attr.SrcRange)
		}
		if err != nil {
			return nil, err
		}
	}

	var elements []*Element
	for _, block := range body.Blocks {
		switch block.Type {
		case "meta":
			meta, err := p.props(block.Body)
			if err != nil {
				return nil, err
			}
			doc.Meta = append(doc.Meta, meta...)
		case "element":
			el, err := p.element(block)
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
		default:
			return nil, p.errAt(errors.New("K143").WithDetailf("unknown block %q", block.Type), block.TypeRange)
		}
	}
	if len(elements) == 0 {
		return nil, errors.New("K143").WithDetail("page has no element blocks").WithLocation(filename, 1, 1)
	}
	doc.Root = rootOf(elements)
	return doc, nil
}

type hclPage struct {
	filename string
	eval     *hcl.EvalContext
}

func evalContext(vars Vars) *hcl.EvalContext {
	site := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		site[k] = cty.StringVal(v)
	}
	siteVal := cty.EmptyObjectVal
	if len(site) > 0 {
		siteVal = cty.ObjectVal(site)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"site": siteVal},
		Functions: map[string]function.Function{
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"format": stdlib.FormatFunc,
			"join":   stdlib.JoinFunc,
		},
	}
}

func (p *hclPage) element(block *hclsyntax.Block) (*Element, error) {
	if len(block.Labels) == 0 || len(block.Labels) > 2 {
		return nil, p.errAt(errors.New("K143").WithDetail(`element blocks take a type label and an optional name: element "p" "intro"`), block.TypeRange)
	}
	el := &Element{Type: block.Labels[0], Line: block.TypeRange.Start.Line}
	if len(block.Labels) == 2 {
		el.Label = block.Labels[1]
	}

	props, err := p.props(block.Body)
	if err != nil {
		return nil, err
	}
	el.Props = props

	for _, child := range block.Body.Blocks {
		if child.Type != "element" {
			return nil, p.errAt(errors.New("K143").WithDetailf("unknown block %q", child.Type), child.TypeRange)
		}
		c, err := p.element(child)
		if err != nil {
			return nil, err
		}
		el.Children = append(el.Children, c)
	}
	return el, nil
}

// props evaluates the body attributes in source order.
func (p *hclPage) props(body *hclsyntax.Body) ([]Prop, error) {
	var out []Prop
	for _, attr := range sortedAttributes(body) {
		v, err := p.value(attr)
		if err != nil {
			return nil, err
		}
		s, err := p.str(attr, v)
		if err != nil {
			return nil, err
		}
		out = append(out, Prop{Name: attr.Name, Value: s})
	}
	return out, nil
}

func (p *hclPage) value(attr *hclsyntax.Attribute) (cty.Value, error) {
	v, diags := attr.Expr.Value(p.eval)
	if diags.HasErrors() {
		return cty.NilVal, diagError(diags)
	}
	return v, nil
}

// str converts a primitive value to its string form.
func (p *hclPage) str(attr *hclsyntax.Attribute, v cty.Value) (string, error) {
	if v.IsNull() {
		return "", nil
	}
	if !v.IsWhollyKnown() {
		return "", p.errAt(errors.New("K142").WithDetailf("%s is unknown", attr.Name), attr.SrcRange)
	}
	sv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", p.errAt(errors.New("K142").WithDetailf("%s: %v", attr.Name, err), attr.SrcRange)
	}
	return sv.AsString(), nil
}

func (p *hclPage) list(attr *hclsyntax.Attribute, v cty.Value) ([]string, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.CanIterateElements() || v.Type().IsMapType() || v.Type().IsObjectType() {
		return nil, p.errAt(errors.New("K142").WithDetailf("%s must be a list", attr.Name), attr.SrcRange)
	}
	var out []string
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		s, err := p.str(attr, ev)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (p *hclPage) errAt(err *errors.KilnError, rng hcl.Range) error {
	return err.WithLocation(p.filename, rng.Start.Line, rng.Start.Column)
}

// sortedAttributes returns the body attributes in source order.
func sortedAttributes(body *hclsyntax.Body) []*hclsyntax.Attribute {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	slices.SortFunc(attrs, func(a, b *hclsyntax.Attribute) int {
		return a.SrcRange.Start.Byte - b.SrcRange.Start.Byte
	})
	return attrs
}

// diagError converts the first error diagnostic into a coded error.
func diagError(diags hcl.Diagnostics) error {
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		err := errors.New("K143").WithDetail(d.Summary + ": " + d.Detail).Wrap(diags)
		if d.Subject != nil {
			return err.WithLocation(d.Subject.Filename, d.Subject.Start.Line, d.Subject.Start.Column)
		}
		return err
	}
	return errors.New("K143").Wrap(diags)
}
