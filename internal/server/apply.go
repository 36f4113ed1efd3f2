package server

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/goliatone/go-userform/pkg/form"
	"github.com/goliatone/go-userform/pkg/model"
)

// applyValues copies a posted page into the controller. Scalar fields go
// through SetField; multi-valued fields are reconciled option by option so
// unchecked boxes are removed. Every field is attempted; the joined error
// lists the rejected ones.
func (h *Handler) applyValues(controller *form.Controller, values url.Values) error {
	var errs []error
	for _, field := range h.form.Fields {
		var err error
		if field.Type == model.FieldTypeArray {
			err = reconcileOptions(controller, field, values[field.Name])
		} else {
			err = controller.SetField(field.Name, values.Get(field.Name))
		}
		h.metrics.ObserveFieldUpdate(field.Name, err)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field.Name, err))
		}
	}
	return errors.Join(errs...)
}

func reconcileOptions(controller *form.Controller, field model.Field, submitted []string) error {
	known := make(map[string]bool, len(field.Options))
	for _, opt := range field.Options {
		known[opt.Value] = true
	}
	selected := make(map[string]bool, len(submitted))
	for _, value := range submitted {
		if !known[value] {
			return fmt.Errorf("%w: %q", form.ErrInvalidOption, value)
		}
		selected[value] = true
	}

	for _, opt := range field.Options {
		if err := controller.SetHobby(opt.Value, selected[opt.Value]); err != nil {
			return err
		}
	}
	if len(field.Options) == 0 {
		return controller.Touch(field.Name)
	}
	return nil
}
