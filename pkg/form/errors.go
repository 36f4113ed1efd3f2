package form

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when an edit names a field the form does not
	// declare.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrInvalidOption is returned when a closed-set field receives a value
	// outside its options.
	ErrInvalidOption = errors.New("form: invalid option")
	// ErrMultiValued is returned by SetField for fields edited through
	// SetHobby. It matches ErrUnknownField since SetField does not accept it.
	ErrMultiValued = fmt.Errorf("%w: field is multi-valued", ErrUnknownField)
)
