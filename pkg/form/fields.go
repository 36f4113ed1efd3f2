package form

import "fmt"

// Field names as they appear in requests, errors and the touched set.
const (
	FieldName    = "name"
	FieldAddress = "address"
	FieldCountry = "country"
	FieldGender  = "gender"
	FieldHobbies = "hobbies"
)

var fieldOrder = []string{FieldName, FieldAddress, FieldCountry, FieldGender, FieldHobbies}

// Fields lists every field in render order.
func Fields() []string {
	return append([]string(nil), fieldOrder...)
}

// IsField reports whether name is a declared field.
func IsField(name string) bool {
	return fieldIndex(name) >= 0
}

func fieldIndex(name string) int {
	for i, field := range fieldOrder {
		if field == name {
			return i
		}
	}
	return -1
}

// Country is the selected country; the zero value means none selected.
type Country string

const (
	CountryUSA    Country = "USA"
	CountryCanada Country = "Canada"
	CountryUK     Country = "UK"
)

// Countries lists the selectable countries in display order.
func Countries() []Country {
	return []Country{CountryUSA, CountryCanada, CountryUK}
}

// ParseCountry accepts "" (no selection) or one of Countries.
func ParseCountry(raw string) (Country, error) {
	if raw == "" {
		return "", nil
	}
	for _, c := range Countries() {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: country %q", ErrInvalidOption, raw)
}

// Gender is the selected gender; the zero value means none selected.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Genders lists the selectable genders in display order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// ParseGender accepts "" (no selection) or one of Genders.
func ParseGender(raw string) (Gender, error) {
	if raw == "" {
		return "", nil
	}
	for _, g := range Genders() {
		if string(g) == raw {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: gender %q", ErrInvalidOption, raw)
}

// Hobby is one of the hobby checkboxes.
type Hobby string

const (
	HobbyReading   Hobby = "reading"
	HobbyTraveling Hobby = "traveling"
	HobbyCooking   Hobby = "cooking"
)

var hobbyOrder = []Hobby{HobbyReading, HobbyTraveling, HobbyCooking}

// Hobbies lists the hobby checkboxes in display order.
func Hobbies() []Hobby {
	return append([]Hobby(nil), hobbyOrder...)
}

// ParseHobby accepts one of Hobbies.
func ParseHobby(raw string) (Hobby, error) {
	for _, h := range hobbyOrder {
		if string(h) == raw {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: hobby %q", ErrInvalidOption, raw)
}

func (h Hobby) bit() HobbySet {
	for i, known := range hobbyOrder {
		if known == h {
			return 1 << uint(i)
		}
	}
	return 0
}
