package attrs

import (
	"slices"
	"strings"
)

// Attribute is a single name/value pair. An attribute with Bool set renders
// as a bare name (e.g. disabled) and its Value is ignored.
type Attribute struct {
	Name  string
	Value string
	Bool  bool
}

// Pair creates a valued attribute.
func Pair(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// Flag creates a boolean attribute.
func Flag(name string) Attribute {
	return Attribute{Name: name, Bool: true}
}

func (a Attribute) same(b Attribute) bool {
	return a.Name == b.Name && a.Bool == b.Bool && (a.Bool || a.Value == b.Value)
}

// Style is one inline CSS declaration.
type Style struct {
	Property string
	Value    string
}

// Decl creates a style declaration.
func Decl(property, value string) Style {
	return Style{Property: property, Value: value}
}

// Event binds an ordered list of opaque actions to an event type.
// Type is the bare event name ("click", not "onclick").
type Event struct {
	Type    string
	Actions []string
}

// On creates an event binding.
func On(eventType string, actions ...string) Event {
	return Event{Type: eventType, Actions: actions}
}

// Set is an immutable attribute set. The zero value is an empty set.
type Set struct {
	id      string
	classes []string
	styles  []Style
	custom  []Attribute
	data    []Attribute
	aria    []Attribute
	events  []Event
}

// New creates a set from loose attributes. It is shorthand for
// Set{}.AddCustom(attributes...), so "id", "class", "style", "data-*" and
// "aria-*" names are routed to their dedicated fields.
func New(attributes ...Attribute) Set {
	return Set{}.AddCustom(attributes...)
}

// ID returns the element identifier, or "" when unset.
func (s Set) ID() string { return s.id }

// Classes returns the classes in order.
func (s Set) Classes() []string { return slices.Clone(s.classes) }

// HasClass reports whether the set contains the class.
func (s Set) HasClass(class string) bool { return slices.Contains(s.classes, class) }

// Styles returns the style declarations in order.
func (s Set) Styles() []Style { return slices.Clone(s.styles) }

// Style returns the value of a style property.
func (s Set) Style(property string) (string, bool) {
	for _, st := range s.styles {
		if st.Property == property {
			return st.Value, true
		}
	}
	return "", false
}

// Custom returns the custom attributes in insertion order.
func (s Set) Custom() []Attribute { return slices.Clone(s.custom) }

// Data returns the data attributes (names without the "data-" prefix).
func (s Set) Data() []Attribute { return slices.Clone(s.data) }

// Aria returns the aria attributes (names without the "aria-" prefix).
func (s Set) Aria() []Attribute { return slices.Clone(s.aria) }

// Events returns the event bindings in order.
func (s Set) Events() []Event {
	out := make([]Event, len(s.events))
	for i, ev := range s.events {
		out[i] = Event{Type: ev.Type, Actions: slices.Clone(ev.Actions)}
	}
	return out
}

// IsEmpty reports whether the set carries nothing to render.
func (s Set) IsEmpty() bool {
	return s.id == "" &&
		len(s.classes) == 0 &&
		len(s.styles) == 0 &&
		len(s.custom) == 0 &&
		len(s.data) == 0 &&
		len(s.aria) == 0 &&
		len(s.events) == 0
}

// WithID returns a copy with the identifier replaced. An empty id leaves the
// current identifier untouched.
func (s Set) WithID(id string) Set {
	if id != "" {
		s.id = id
	}
	return s
}

// AddClasses returns a copy with the classes appended. Each argument may hold
// several space-separated classes; duplicates are collapsed.
func (s Set) AddClasses(classes ...string) Set {
	out := slices.Clone(s.classes)
	for _, c := range classes {
		for _, name := range strings.Fields(c) {
			if !slices.Contains(out, name) {
				out = append(out, name)
			}
		}
	}
	s.classes = out
	return s
}

// AddStyles returns a copy with the declarations applied. A property that is
// already present keeps its position and takes the new value.
func (s Set) AddStyles(styles ...Style) Set {
	out := slices.Clone(s.styles)
	for _, st := range styles {
		st.Property = strings.TrimSpace(st.Property)
		st.Value = strings.TrimSpace(st.Value)
		if st.Property == "" || st.Value == "" {
			continue
		}
		if i := slices.IndexFunc(out, func(e Style) bool { return e.Property == st.Property }); i >= 0 {
			out[i].Value = st.Value
			continue
		}
		out = append(out, st)
	}
	s.styles = out
	return s
}

// AddCustom returns a copy with the attributes appended. Names with a
// dedicated field ("id", "class", "style", "data-*", "aria-*", "on*") are
// routed to that field. Invalid names are dropped.
func (s Set) AddCustom(attributes ...Attribute) Set {
	for _, a := range attributes {
		if !validName(a.Name) {
			continue
		}
		name := strings.ToLower(a.Name)
		switch {
		case name == "id":
			s = s.WithID(a.Value)
		case name == "class":
			s = s.AddClasses(a.Value)
		case name == "style":
			s = s.AddStyles(parseStyle(a.Value)...)
		case strings.HasPrefix(name, "data-"):
			a.Name = name[len("data-"):]
			s = s.AddData(a)
		case strings.HasPrefix(name, "aria-"):
			a.Name = name[len("aria-"):]
			s = s.AddAria(a)
		case strings.HasPrefix(name, "on") && len(name) > 2 && !a.Bool:
			s = s.AddEvents(On(name[2:], a.Value))
		default:
			a.Name = name
			s.custom = upsert(s.custom, a)
		}
	}
	return s
}

// AddData returns a copy with the data attributes appended. Identical pairs
// collapse; pairs with the same name and different values are both kept.
func (s Set) AddData(attributes ...Attribute) Set {
	out := slices.Clone(s.data)
	for _, a := range attributes {
		a.Name = strings.TrimPrefix(strings.ToLower(a.Name), "data-")
		if !validName(a.Name) {
			continue
		}
		if slices.ContainsFunc(out, a.same) {
			continue
		}
		out = append(out, a)
	}
	s.data = out
	return s
}

// AddAria returns a copy with the aria attributes applied. A new value for an
// existing name replaces it in place.
func (s Set) AddAria(attributes ...Attribute) Set {
	out := s.aria
	for _, a := range attributes {
		a.Name = strings.TrimPrefix(strings.ToLower(a.Name), "aria-")
		if !validName(a.Name) {
			continue
		}
		out = upsert(out, a)
	}
	s.aria = out
	return s
}

// AddEvents returns a copy with the event bindings appended. Actions for an
// event type already present are appended to that binding.
func (s Set) AddEvents(events ...Event) Set {
	out := make([]Event, len(s.events), len(s.events)+len(events))
	for i, ev := range s.events {
		out[i] = Event{Type: ev.Type, Actions: slices.Clone(ev.Actions)}
	}
	for _, ev := range events {
		typ := strings.ToLower(strings.TrimSpace(ev.Type))
		if !validName(typ) {
			continue
		}
		i := slices.IndexFunc(out, func(e Event) bool { return e.Type == typ })
		if i < 0 {
			out = append(out, Event{Type: typ})
			i = len(out) - 1
		}
		for _, action := range ev.Actions {
			if action == "" || slices.Contains(out[i].Actions, action) {
				continue
			}
			out[i].Actions = append(out[i].Actions, action)
		}
		if len(out[i].Actions) == 0 {
			out = slices.Delete(out, i, i+1)
		}
	}
	s.events = out
	return s
}

// upsert returns a new slice with a either replacing the value of the same
// named attribute or appended at the end.
func upsert(list []Attribute, a Attribute) []Attribute {
	out := slices.Clone(list)
	if i := slices.IndexFunc(out, func(e Attribute) bool { return e.Name == a.Name }); i >= 0 {
		out[i] = a
		return out
	}
	return append(out, a)
}

// validName rejects names that would break the attribute syntax.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= ' ', r == '"', r == '\'', r == '>', r == '/', r == '=', r == '<', r == 0x7f:
			return false
		}
	}
	return true
}

// parseStyle splits an inline style string ("a: b; c: d") into declarations.
func parseStyle(style string) []Style {
	var out []Style
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out = append(out, Decl(prop, value))
	}
	return out
}
