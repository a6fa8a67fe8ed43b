package attrs

import "strings"

// Render serializes the set as it appears inside an opening tag, each
// attribute preceded by a single space. An empty set renders as "".
func (s Set) Render() string {
	if s.IsEmpty() {
		return ""
	}

	var b strings.Builder

	if s.id != "" {
		writeAttr(&b, "id", s.id)
	}
	if len(s.classes) > 0 {
		writeAttr(&b, "class", strings.Join(s.classes, " "))
	}
	if len(s.styles) > 0 {
		writeAttr(&b, "style", s.StyleString())
	}
	for _, a := range s.custom {
		writeAttribute(&b, "", a)
	}
	for _, a := range s.data {
		writeAttribute(&b, "data-", a)
	}
	for _, a := range s.aria {
		writeAttribute(&b, "aria-", a)
	}
	for _, ev := range s.events {
		writeAttr(&b, "on"+ev.Type, strings.Join(ev.Actions, "; "))
	}

	return b.String()
}

// StyleString returns the inline style declarations as "a: b; c: d".
func (s Set) StyleString() string {
	parts := make([]string, len(s.styles))
	for i, st := range s.styles {
		parts[i] = st.Property + ": " + st.Value
	}
	return strings.Join(parts, "; ")
}

// String implements fmt.Stringer.
func (s Set) String() string {
	return strings.TrimPrefix(s.Render(), " ")
}

func writeAttribute(b *strings.Builder, prefix string, a Attribute) {
	if a.Bool {
		b.WriteByte(' ')
		b.WriteString(prefix)
		b.WriteString(a.Name)
		return
	}
	writeAttr(b, prefix+a.Name, a.Value)
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(EscapeAttr(value))
	b.WriteByte('"')
}
