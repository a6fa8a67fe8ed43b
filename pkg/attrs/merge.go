package attrs

import "slices"

// Merge returns a set holding s followed by other. See the package
// documentation for per-field rules.
func (s Set) Merge(other Set) Set {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	return s.WithID(other.id).
		AddClasses(other.classes...).
		AddStyles(other.styles...).
		addCustomRaw(other.custom).
		AddData(other.data...).
		AddAria(other.aria...).
		AddEvents(other.events...)
}

// addCustomRaw appends already-normalized custom attributes without routing
// them again.
func (s Set) addCustomRaw(list []Attribute) Set {
	out := s.custom
	for _, a := range list {
		out = upsert(out, a)
	}
	s.custom = out
	return s
}

// Equal reports whether two sets hold the same attributes in the same order.
func (s Set) Equal(other Set) bool {
	return s.id == other.id &&
		slices.Equal(s.classes, other.classes) &&
		slices.Equal(s.styles, other.styles) &&
		slices.Equal(s.custom, other.custom) &&
		slices.Equal(s.data, other.data) &&
		slices.Equal(s.aria, other.aria) &&
		slices.EqualFunc(s.events, other.events, func(a, b Event) bool {
			return a.Type == b.Type && slices.Equal(a.Actions, b.Actions)
		})
}
