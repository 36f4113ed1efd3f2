package model

import (
	"strconv"
	"strings"
)

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeArray  FieldType = "array"
)

// Widget names the control a renderer emits for a field.
type Widget string

const (
	WidgetInput      Widget = "input"
	WidgetTextArea   Widget = "textarea"
	WidgetSelect     Widget = "select"
	WidgetRadio      Widget = "radio"
	WidgetCheckboxes Widget = "checkboxes"
)

// ParseWidget normalises raw and reports whether it names a known widget.
func ParseWidget(raw string) (Widget, bool) {
	switch widget := Widget(strings.ToLower(strings.TrimSpace(raw))); widget {
	case WidgetInput, WidgetTextArea, WidgetSelect, WidgetRadio, WidgetCheckboxes:
		return widget, true
	}
	return "", false
}

const (
	ValidationRuleRequired  = "required"
	ValidationRuleMinItems  = "minItems"
	ValidationRuleMinLength = "minLength"
)

// Metadata keys recognised on fields.
const (
	MetadataMessagePrefix = "message."
	MetadataRows          = "rows"
	MetadataLayout        = "layout"
)

// ValidationRule represents a single validation constraint applied to a field.
// Length and count thresholds live in Params["value"].
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// IntParam parses a numeric rule parameter.
func (r ValidationRule) IntParam(key string) (int, bool) {
	raw, ok := r.Params[key]
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return value, true
}

// Option is a single entry in a closed set of values.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field models an individual input inside the form.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Widget      Widget            `json:"widget"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Options     []Option          `json:"options,omitempty"`
	Validations []ValidationRule  `json:"validations,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Rule returns the first validation rule of the given kind.
func (f Field) Rule(kind string) (ValidationRule, bool) {
	for _, rule := range f.Validations {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return ValidationRule{}, false
}

// Message returns the configured message for a rule kind, if any.
func (f Field) Message(kind string) string {
	if len(f.Metadata) == 0 {
		return ""
	}
	return strings.TrimSpace(f.Metadata[MetadataMessagePrefix+kind])
}

// OptionValues lists the allowed values in declaration order.
func (f Field) OptionValues() []string {
	if len(f.Options) == 0 {
		return nil
	}
	out := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		out = append(out, opt.Value)
	}
	return out
}

// OptionLabel resolves the display label for a value, falling back to the
// value itself.
func (f Field) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			if opt.Label != "" {
				return opt.Label
			}
			return opt.Value
		}
	}
	return value
}

// Rows reports the textarea height hint, defaulting to zero when unset.
func (f Field) Rows() int {
	if len(f.Metadata) == 0 {
		return 0
	}
	rows, err := strconv.Atoi(strings.TrimSpace(f.Metadata[MetadataRows]))
	if err != nil || rows < 0 {
		return 0
	}
	return rows
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Metadata keys recognised on the form.
const (
	FormMetadataSuccessMessage = "successMessage"
	FormMetadataSubmitLabel    = "submitLabel"
	FormMetadataRefreshLabel   = "refreshLabel"
)

// Field looks up a field by name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames lists the field names in render order.
func (m FormModel) FieldNames() []string {
	out := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		out = append(out, field.Name)
	}
	return out
}

// Meta returns a form metadata value or the provided fallback.
func (m FormModel) Meta(key, fallback string) string {
	if value := strings.TrimSpace(m.Metadata[key]); value != "" {
		return value
	}
	return fallback
}
