package uischema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-userform/pkg/model"
)

// Decorator applies UI schema overrides to a form model.
type Decorator struct {
	store *Store
}

var _ model.Decorator = (*Decorator)(nil)

// NewDecorator builds a Decorator backed by the provided store. When store is
// nil or empty, the decorator becomes a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate augments the supplied form model with the overlay for its
// operation. When no matching operation is found the form is left untouched.
// Overrides naming unknown fields or option values are rejected.
func (d *Decorator) Decorate(form *model.FormModel) error {
	if d == nil || d.store == nil || d.store.Empty() || form == nil {
		return nil
	}

	op, ok := d.store.Operation(form.OperationID)
	if !ok {
		return nil
	}

	applyFormConfig(form, op.Form)

	names := make([]string, 0, len(op.Fields))
	for name := range op.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		field := lookupField(form, name)
		if field == nil {
			return fmt.Errorf("uischema: operation %q (file %s) references unknown field %q", op.ID, op.Source, name)
		}
		if err := applyFieldConfig(field, op.Fields[name]); err != nil {
			return fmt.Errorf("uischema: operation %q (file %s) field %q: %w", op.ID, op.Source, name, err)
		}
	}

	return reorder(form, op)
}

func applyFormConfig(form *model.FormModel, cfg FormConfig) {
	if title := strings.TrimSpace(cfg.Title); title != "" {
		form.Title = title
	}
	if desc := strings.TrimSpace(cfg.Description); desc != "" {
		form.Description = desc
	}
	form.Metadata = mergeStringMap(form.Metadata, cfg.Metadata)
	setMeta := func(key, value string) {
		if value = strings.TrimSpace(value); value == "" {
			return
		}
		if form.Metadata == nil {
			form.Metadata = make(map[string]string)
		}
		form.Metadata[key] = value
	}
	setMeta(model.FormMetadataSuccessMessage, cfg.SuccessMessage)
	setMeta(model.FormMetadataSubmitLabel, cfg.SubmitLabel)
	setMeta(model.FormMetadataRefreshLabel, cfg.RefreshLabel)
}

func applyFieldConfig(field *model.Field, cfg FieldConfig) error {
	if label := strings.TrimSpace(cfg.Label); label != "" {
		field.Label = label
	}
	if placeholder := strings.TrimSpace(cfg.Placeholder); placeholder != "" {
		field.Placeholder = placeholder
	}
	if cfg.HelpText != "" {
		field.Description = cfg.HelpText
	}
	if raw := strings.TrimSpace(cfg.Widget); raw != "" {
		widget, ok := model.ParseWidget(raw)
		if !ok {
			return fmt.Errorf("unsupported widget %q", raw)
		}
		field.Widget = widget
	}

	for value, label := range cfg.Options {
		idx := optionIndex(field.Options, value)
		if idx < 0 {
			return fmt.Errorf("unknown option %q", value)
		}
		if label = strings.TrimSpace(label); label != "" {
			field.Options[idx].Label = label
		}
	}

	field.Metadata = mergeStringMap(field.Metadata, cfg.Metadata)
	for kind, msg := range cfg.Messages {
		if msg = strings.TrimSpace(msg); msg == "" {
			continue
		}
		field.Metadata = ensureMetadata(field.Metadata)
		field.Metadata[model.MetadataMessagePrefix+kind] = msg
	}
	if cfg.Rows > 0 {
		field.Metadata = ensureMetadata(field.Metadata)
		field.Metadata[model.MetadataRows] = strconv.Itoa(cfg.Rows)
	}
	if layout := strings.TrimSpace(cfg.Layout); layout != "" {
		field.Metadata = ensureMetadata(field.Metadata)
		field.Metadata[model.MetadataLayout] = layout
	}
	return nil
}

// reorder moves the listed fields to the front in overlay order and keeps the
// remaining fields in their existing relative order.
func reorder(form *model.FormModel, op Operation) error {
	if len(op.Order) == 0 {
		return nil
	}
	out := make([]model.Field, 0, len(form.Fields))
	placed := make(map[string]struct{}, len(op.Order))
	for _, name := range op.Order {
		field := lookupField(form, name)
		if field == nil {
			return fmt.Errorf("uischema: operation %q (file %s) orders unknown field %q", op.ID, op.Source, name)
		}
		out = append(out, *field)
		placed[name] = struct{}{}
	}
	for _, field := range form.Fields {
		if _, ok := placed[field.Name]; !ok {
			out = append(out, field)
		}
	}
	form.Fields = out
	return nil
}

func lookupField(form *model.FormModel, name string) *model.Field {
	for i := range form.Fields {
		if form.Fields[i].Name == name {
			return &form.Fields[i]
		}
	}
	return nil
}

func optionIndex(options []model.Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

func ensureMetadata(meta map[string]string) map[string]string {
	if meta == nil {
		return make(map[string]string)
	}
	return meta
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	dst = ensureMetadata(dst)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
