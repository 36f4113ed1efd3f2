package form

import (
	"encoding/json"
	"fmt"
)

// HobbySet is a set of hobbies. The zero value is empty; sets are values and
// compare with ==.
type HobbySet uint8

// NewHobbySet builds a set from the provided hobbies; unknown values are
// ignored.
func NewHobbySet(hobbies ...Hobby) HobbySet {
	var set HobbySet
	for _, h := range hobbies {
		set = set.With(h)
	}
	return set
}

// Has reports membership.
func (s HobbySet) Has(h Hobby) bool {
	bit := h.bit()
	return bit != 0 && s&bit != 0
}

// With returns the set including h.
func (s HobbySet) With(h Hobby) HobbySet {
	return s | h.bit()
}

// Without returns the set excluding h.
func (s HobbySet) Without(h Hobby) HobbySet {
	return s &^ h.bit()
}

// Len returns the number of hobbies in the set.
func (s HobbySet) Len() int {
	n := 0
	for _, h := range hobbyOrder {
		if s.Has(h) {
			n++
		}
	}
	return n
}

// Slice lists members in display order.
func (s HobbySet) Slice() []Hobby {
	out := make([]Hobby, 0, len(hobbyOrder))
	for _, h := range hobbyOrder {
		if s.Has(h) {
			out = append(out, h)
		}
	}
	return out
}

// Strings lists members as plain strings in display order.
func (s HobbySet) Strings() []string {
	members := s.Slice()
	out := make([]string, len(members))
	for i, h := range members {
		out[i] = string(h)
	}
	return out
}

// MarshalJSON encodes the set as a list of hobby names.
func (s HobbySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON decodes a list of hobby names.
func (s *HobbySet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var set HobbySet
	for _, name := range names {
		h, err := ParseHobby(name)
		if err != nil {
			return err
		}
		set = set.With(h)
	}
	*s = set
	return nil
}

// State is the record of current input values.
type State struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Country Country  `json:"country"`
	Gender  Gender   `json:"gender"`
	Hobbies HobbySet `json:"hobbies"`
}

// IsZero reports whether the state equals the initial empty record.
func (s State) IsZero() bool {
	return s == State{}
}

// Text returns the scalar value of a field; multi-valued and unknown fields
// return "".
func (s State) Text(field string) string {
	switch field {
	case FieldName:
		return s.Name
	case FieldAddress:
		return s.Address
	case FieldCountry:
		return string(s.Country)
	case FieldGender:
		return string(s.Gender)
	default:
		return ""
	}
}

// Count returns the number of selected entries of a field. Scalar fields
// count as one when set.
func (s State) Count(field string) int {
	if field == FieldHobbies {
		return s.Hobbies.Len()
	}
	if s.Text(field) != "" {
		return 1
	}
	return 0
}

// Selected lists the chosen values of a field: the hobby set for hobbies, the
// single value of a set scalar field, nil otherwise.
func (s State) Selected(field string) []string {
	if field == FieldHobbies {
		return s.Hobbies.Strings()
	}
	if value := s.Text(field); value != "" {
		return []string{value}
	}
	return nil
}

// with returns a copy with the scalar field set after checking closed sets.
func (s State) with(field, value string) (State, error) {
	switch field {
	case FieldName:
		s.Name = value
	case FieldAddress:
		s.Address = value
	case FieldCountry:
		c, err := ParseCountry(value)
		if err != nil {
			return s, err
		}
		s.Country = c
	case FieldGender:
		g, err := ParseGender(value)
		if err != nil {
			return s, err
		}
		s.Gender = g
	case FieldHobbies:
		return s, fmt.Errorf("%w: %q", ErrMultiValued, field)
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return s, nil
}
