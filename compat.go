package userform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-userform/pkg/form"
	"github.com/goliatone/go-userform/pkg/model"
	"github.com/goliatone/go-userform/pkg/validation"
)

// ErrIncompatibleForm is returned by LoadForm when a document does not
// describe the user information form the controller edits.
var ErrIncompatibleForm = errors.New("userform: document does not match the form")

// checkCompatible ensures the model declares exactly the controller's fields,
// offers no option the controller would reject and enforces at least the
// rules of validation.Default.
func checkCompatible(formModel model.FormModel) error {
	seen := make(map[string]model.Field, len(formModel.Fields))
	for _, field := range formModel.Fields {
		if !form.IsField(field.Name) {
			return fmt.Errorf("%w: unknown field %q", ErrIncompatibleForm, field.Name)
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("%w: duplicate field %q", ErrIncompatibleForm, field.Name)
		}
		seen[field.Name] = field
	}
	for _, name := range form.Fields() {
		if _, ok := seen[name]; !ok {
			return fmt.Errorf("%w: missing field %q", ErrIncompatibleForm, name)
		}
	}

	for _, value := range seen[form.FieldCountry].OptionValues() {
		if _, err := form.ParseCountry(value); err != nil {
			return fmt.Errorf("%w: %w", ErrIncompatibleForm, err)
		}
	}
	for _, value := range seen[form.FieldGender].OptionValues() {
		if _, err := form.ParseGender(value); err != nil {
			return fmt.Errorf("%w: %w", ErrIncompatibleForm, err)
		}
	}
	for _, value := range seen[form.FieldHobbies].OptionValues() {
		if _, err := form.ParseHobby(value); err != nil {
			return fmt.Errorf("%w: %w", ErrIncompatibleForm, err)
		}
	}

	missing := validation.FromModel(formModel).Missing(validation.Default())
	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, rule := range missing {
			names = append(names, fmt.Sprintf("%s %s", rule.Field, rule.Kind))
		}
		return fmt.Errorf("%w: missing rules %s", ErrIncompatibleForm, strings.Join(names, ", "))
	}
	return nil
}
