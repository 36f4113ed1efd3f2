package openapi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-userform/pkg/model"
	"github.com/goliatone/go-userform/pkg/widgets"
)

const (
	extensionWidget      = "x-formgen-widget"
	extensionRows        = "x-formgen-rows"
	extensionPlaceholder = "x-formgen-placeholder"
	extensionMessages    = "x-formgen-messages"
	extensionOrder       = "x-formgen-order"
)

func buildForm(operationID, path, method string, op *openapi3.Operation, body *openapi3.Schema, registry *widgets.Registry) model.FormModel {
	form := model.FormModel{
		OperationID: operationID,
		Endpoint:    path,
		Method:      method,
		Title:       strings.TrimSpace(op.Summary),
		Description: strings.TrimSpace(op.Description),
	}

	required := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		required[name] = struct{}{}
	}

	for _, name := range propertyOrder(body) {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		form.Fields = append(form.Fields, buildField(name, ref.Value, isRequired, registry))
	}
	return form
}

// propertyOrder honours x-formgen-order and appends unlisted properties in
// lexical order.
func propertyOrder(body *openapi3.Schema) []string {
	seen := make(map[string]struct{}, len(body.Properties))
	var out []string
	if listed, ok := body.Extensions[extensionOrder].([]any); ok {
		for _, raw := range listed {
			name, ok := raw.(string)
			if !ok {
				continue
			}
			if _, exists := body.Properties[name]; !exists {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}

	var rest []string
	for name := range body.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func buildField(name string, src *openapi3.Schema, required bool, registry *widgets.Registry) model.Field {
	field := model.Field{
		Name:        name,
		Type:        model.FieldTypeString,
		Required:    required,
		Label:       strings.TrimSpace(src.Title),
		Description: strings.TrimSpace(src.Description),
	}
	if field.Label == "" {
		field.Label = model.DefaultLabel(name)
	}

	enum := src.Enum
	if schemaType(src.Type) == "array" {
		field.Type = model.FieldTypeArray
		if src.Items != nil && src.Items.Value != nil {
			enum = src.Items.Value.Enum
		}
		if src.MinItems > 0 {
			field.Validations = append(field.Validations, model.ValidationRule{
				Kind:   model.ValidationRuleMinItems,
				Params: map[string]string{"value": strconv.FormatUint(src.MinItems, 10)},
			})
		}
	} else if src.MinLength > 0 {
		field.Validations = append(field.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleMinLength,
			Params: map[string]string{"value": strconv.FormatUint(src.MinLength, 10)},
		})
	}
	if required {
		field.Validations = append([]model.ValidationRule{{Kind: model.ValidationRuleRequired}}, field.Validations...)
	}

	for _, value := range enum {
		text := fmt.Sprint(value)
		field.Options = append(field.Options, model.Option{Value: text, Label: text})
	}

	if placeholder, ok := src.Extensions[extensionPlaceholder].(string); ok {
		field.Placeholder = strings.TrimSpace(placeholder)
	}
	field.Metadata = fieldMetadata(src.Extensions)
	field.Widget = explicitWidget(src)
	if widget, ok := registry.Resolve(field); ok {
		field.Widget = widget
	}
	return field
}

// explicitWidget honours x-formgen-widget and the textarea string format.
func explicitWidget(src *openapi3.Schema) model.Widget {
	if raw, ok := src.Extensions[extensionWidget].(string); ok {
		if widget, ok := model.ParseWidget(raw); ok {
			return widget
		}
	}
	if src.Format == "textarea" {
		return model.WidgetTextArea
	}
	return ""
}

func fieldMetadata(ext map[string]any) map[string]string {
	out := make(map[string]string)
	if messages, ok := ext[extensionMessages].(map[string]any); ok {
		for kind, raw := range messages {
			if msg, ok := raw.(string); ok && strings.TrimSpace(msg) != "" {
				out[model.MetadataMessagePrefix+kind] = strings.TrimSpace(msg)
			}
		}
	}
	switch rows := ext[extensionRows].(type) {
	case float64:
		out[model.MetadataRows] = strconv.Itoa(int(rows))
	case int:
		out[model.MetadataRows] = strconv.Itoa(rows)
	case string:
		out[model.MetadataRows] = strings.TrimSpace(rows)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
