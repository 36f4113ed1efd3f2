package form

// TouchedSet records which fields the user interacted with. It only grows
// until Clear.
type TouchedSet struct {
	fields map[string]struct{}
}

// Add marks field as touched.
func (t *TouchedSet) Add(field string) {
	if t.fields == nil {
		t.fields = make(map[string]struct{}, len(fieldOrder))
	}
	t.fields[field] = struct{}{}
}

// Has reports whether field was touched.
func (t *TouchedSet) Has(field string) bool {
	_, ok := t.fields[field]
	return ok
}

// Len returns the number of touched fields.
func (t *TouchedSet) Len() int {
	return len(t.fields)
}

// Clear empties the set.
func (t *TouchedSet) Clear() {
	t.fields = nil
}

// Slice lists touched fields in render order.
func (t *TouchedSet) Slice() []string {
	out := make([]string, 0, len(t.fields))
	for _, field := range fieldOrder {
		if t.Has(field) {
			out = append(out, field)
		}
	}
	return out
}
