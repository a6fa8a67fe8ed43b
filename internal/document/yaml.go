package document

import (
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/kiln/internal/errors"
)

func parseYAML(data []byte, filename string) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.New("K143").WithDetail(err.Error()).Wrap(err)
	}
	p := &yamlPage{filename: filename}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, errors.New("K143").WithDetail("empty document").WithLocation(filename, 1, 1)
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, p.errAt(errors.New("K143").WithDetail("page must be a mapping"), top)
	}

	doc := &Document{}
	var body *yaml.Node
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		var err error
		switch key.Value {
		case "title":
			doc.Title, err = p.scalar(key.Value, val)
		case "locale":
			doc.Locale, err = p.scalar(key.Value, val)
		case "meta":
			doc.Meta, err = p.props(val)
		case "stylesheets":
			doc.StyleSheets, err = p.strings(key.Value, val)
		case "body":
			body = val
		default:
			err = p.errAt(errors.New("K142").WithDetailf("unknown page key %q", key.Value), key)
		}
		if err != nil {
			return nil, err
		}
	}
	if body == nil {
		return nil, errors.New("K143").WithDetail("page has no body").WithLocation(filename, top.Line, top.Column)
	}

	var elements []*Element
	if body.Kind == yaml.SequenceNode {
		for _, n := range body.Content {
			el, err := p.element(n)
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
		}
	} else {
		el, err := p.element(body)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	if len(elements) == 0 {
		return nil, p.errAt(errors.New("K143").WithDetail("body is empty"), body)
	}
	doc.Root = rootOf(elements)
	return doc, nil
}

type yamlPage struct {
	filename string
}

// element decodes "- type: value". A bare scalar is a text element.
func (p *yamlPage) element(n *yaml.Node) (*Element, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return &Element{Type: "text", Props: []Prop{{Name: "content", Value: n.Value}}, Line: n.Line}, nil
	case yaml.MappingNode:
	default:
		return nil, p.errAt(errors.New("K143").WithDetail("element must be a mapping or a string"), n)
	}
	if len(n.Content) != 2 {
		return nil, p.errAt(errors.New("K143").WithDetail("element mapping must have exactly one key, the element type"), n)
	}

	key, val := n.Content[0], n.Content[1]
	el := &Element{Type: key.Value, Line: key.Line}

	switch val.Kind {
	case yaml.ScalarNode:
		if val.Tag != "!!null" {
			el.Props = []Prop{{Name: "content", Value: val.Value}}
		}
	case yaml.SequenceNode:
		children, err := p.elements(val)
		if err != nil {
			return nil, err
		}
		el.Children = children
	case yaml.MappingNode:
		for i := 0; i+1 < len(val.Content); i += 2 {
			k, v := val.Content[i], val.Content[i+1]
			switch k.Value {
			case "children":
				if v.Kind != yaml.SequenceNode {
					return nil, p.errAt(errors.New("K142").WithDetail("children must be a list"), v)
				}
				children, err := p.elements(v)
				if err != nil {
					return nil, err
				}
				el.Children = children
			case "label":
				el.Label = v.Value
			default:
				s, err := p.scalar(k.Value, v)
				if err != nil {
					return nil, err
				}
				el.Props = append(el.Props, Prop{Name: k.Value, Value: s})
			}
		}
	default:
		return nil, p.errAt(errors.New("K143").WithDetailf("unsupported value for %q", key.Value), val)
	}
	return el, nil
}

func (p *yamlPage) elements(seq *yaml.Node) ([]*Element, error) {
	out := make([]*Element, 0, len(seq.Content))
	for _, n := range seq.Content {
		el, err := p.element(n)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}

func (p *yamlPage) props(n *yaml.Node) ([]Prop, error) {
	if n.Kind != yaml.MappingNode {
		return nil, p.errAt(errors.New("K142").WithDetail("meta must be a mapping"), n)
	}
	var out []Prop
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		s, err := p.scalar(k.Value, v)
		if err != nil {
			return nil, err
		}
		out = append(out, Prop{Name: k.Value, Value: s})
	}
	return out, nil
}

func (p *yamlPage) scalar(name string, n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", p.errAt(errors.New("K142").WithDetailf("%s must be a single value", name), n)
	}
	if n.Tag == "!!null" {
		return "", nil
	}
	return n.Value, nil
}

func (p *yamlPage) strings(name string, n *yaml.Node) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, p.errAt(errors.New("K142").WithDetailf("%s must be a list", name), n)
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		s, err := p.scalar(name, item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (p *yamlPage) errAt(err *errors.KilnError, n *yaml.Node) error {
	return err.WithLocation(p.filename, n.Line, n.Column)
}
