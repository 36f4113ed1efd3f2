package validation

import "sort"

// Errors maps field names to a human-readable message.
type Errors map[string]string

// Add records message for field unless the field already failed.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = message
}

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Has reports whether field failed.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for field or "".
func (e Errors) Get(field string) string {
	return e[field]
}

// Fields lists failing fields in lexical order.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for field := range e {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// Only keeps the entries whose field is accepted by keep.
func (e Errors) Only(keep func(field string) bool) Errors {
	out := make(Errors, len(e))
	for field, msg := range e {
		if keep != nil && keep(field) {
			out[field] = msg
		}
	}
	return out
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for field, msg := range e {
		out[field] = msg
	}
	return out
}
