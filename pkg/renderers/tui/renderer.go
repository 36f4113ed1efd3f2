package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-userform/pkg/form"
	"github.com/goliatone/go-userform/pkg/model"
	"github.com/goliatone/go-userform/pkg/render"
	"github.com/goliatone/go-userform/pkg/validation"
)

const defaultSuccessMessage = "Form submitted successfully!"

// Renderer drives a form controller through terminal prompts.
type Renderer struct {
	driver         PromptDriver
	outputFormat   OutputFormat
	theme          Theme
	controllerOpts []form.Option
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		theme:        DefaultTheme,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every field on a fresh controller seeded with the values
// in opts.View and returns the accepted values in the configured format.
func (r *Renderer) Render(ctx context.Context, formModel model.FormModel, opts render.RenderOptions) ([]byte, error) {
	c := form.NewController(r.controllerOpts...)
	if err := seed(c, opts.View.Values); err != nil {
		return nil, err
	}

	values, err := r.Run(ctx, formModel, c)
	if err != nil {
		return nil, err
	}
	return r.serialize(formModel, values)
}

// Run prompts for every field, submits, and re-prompts only the invalid
// fields until a submit succeeds. It returns the accepted values.
func (r *Renderer) Run(ctx context.Context, formModel model.FormModel, c *form.Controller) (form.State, error) {
	if ctx == nil {
		return form.State{}, errors.New("tui: context is required")
	}
	if r.driver == nil {
		return form.State{}, errors.New("tui: prompt driver is nil")
	}
	if c == nil {
		return form.State{}, errors.New("tui: controller is nil")
	}

	if title := strings.TrimSpace(formModel.Title); title != "" {
		if err := r.driver.Info(ctx, title); err != nil {
			return form.State{}, err
		}
	}

	pending := formModel.Fields
	for {
		for _, field := range pending {
			if err := r.promptField(ctx, field, c); err != nil {
				return form.State{}, err
			}
		}

		errs, err := c.Submit(ctx)
		if err != nil {
			return form.State{}, err
		}
		if errs.Valid() {
			msg := formModel.Meta(model.FormMetadataSuccessMessage, defaultSuccessMessage)
			if err := r.driver.Info(ctx, r.theme.InfoPrefix+msg); err != nil {
				return form.State{}, err
			}
			values := c.Values()
			// The terminal has no notice to dismiss, so clear it right away.
			c.DismissSuccess()
			return values, nil
		}

		pending = r.invalidFields(formModel, errs)
		for _, field := range pending {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+errs.Get(field.Name)); err != nil {
				return form.State{}, err
			}
		}
		if len(pending) == 0 {
			return form.State{}, fmt.Errorf("tui: submit rejected fields outside the form: %v", errs.Fields())
		}
	}
}

func (r *Renderer) invalidFields(formModel model.FormModel, errs validation.Errors) []model.Field {
	var out []model.Field
	for _, field := range formModel.Fields {
		if errs.Has(field.Name) {
			out = append(out, field)
		}
	}
	return out
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, c *form.Controller) error {
	current := c.Values()
	label := displayLabel(field)
	help := displayHelp(field)

	switch field.Widget {
	case model.WidgetTextArea:
		value, err := r.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: current.Text(field.Name), Help: help})
		if err != nil {
			return err
		}
		return setField(c, field.Name, value)
	case model.WidgetSelect, model.WidgetRadio:
		options := optionLabels(field)
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      options,
			DefaultIndex: optionIndex(field, current.Text(field.Name)),
			Help:         help,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			return fmt.Errorf("%w: %s", ErrNoSelection, field.Name)
		}
		return setField(c, field.Name, field.Options[idx].Value)
	case model.WidgetCheckboxes:
		var defaults []int
		for _, value := range current.Selected(field.Name) {
			if idx := optionIndex(field, value); idx >= 0 {
				defaults = append(defaults, idx)
			}
		}
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  label,
			Options:  optionLabels(field),
			Defaults: defaults,
			Help:     help,
		})
		if err != nil {
			return err
		}
		chosen := make(map[int]bool, len(indices))
		for _, idx := range indices {
			chosen[idx] = true
		}
		for idx, opt := range field.Options {
			if err := c.SetHobby(opt.Value, chosen[idx]); err != nil {
				return fmt.Errorf("tui: field %s: %w", field.Name, err)
			}
		}
		return nil
	default:
		value, err := r.driver.Input(ctx, InputConfig{Message: label, Default: current.Text(field.Name), Help: help})
		if err != nil {
			return err
		}
		return setField(c, field.Name, value)
	}
}

func setField(c *form.Controller, name, value string) error {
	if err := c.SetField(name, value); err != nil {
		return fmt.Errorf("tui: field %s: %w", name, err)
	}
	return nil
}

func seed(c *form.Controller, values form.State) error {
	if values.IsZero() {
		return nil
	}
	for _, name := range form.Fields() {
		if name == form.FieldHobbies {
			continue
		}
		if text := values.Text(name); text != "" {
			if err := setField(c, name, text); err != nil {
				return err
			}
		}
	}
	for _, hobby := range values.Hobbies.Slice() {
		if err := c.SetHobby(string(hobby), true); err != nil {
			return fmt.Errorf("tui: seed hobbies: %w", err)
		}
	}
	return nil
}

func (r *Renderer) serialize(formModel model.FormModel, values form.State) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(encodeForm(formModel, values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(formModel, values)), nil
	default:
		return json.Marshal(values)
	}
}

func encodeForm(formModel model.FormModel, values form.State) string {
	out := url.Values{}
	for _, field := range formModel.Fields {
		if field.Type == model.FieldTypeArray {
			for _, v := range values.Selected(field.Name) {
				out.Add(field.Name, v)
			}
			continue
		}
		out.Set(field.Name, values.Text(field.Name))
	}
	return out.Encode()
}

func prettyPrint(formModel model.FormModel, values form.State) string {
	var b strings.Builder
	for _, field := range formModel.Fields {
		selected := values.Selected(field.Name)
		labels := make([]string, 0, len(selected))
		for _, v := range selected {
			labels = append(labels, field.OptionLabel(v))
		}
		fmt.Fprintf(&b, "%s: %s\n", displayLabel(field), strings.Join(labels, ", "))
	}
	return b.String()
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return model.DefaultLabel(field.Name)
}

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// displayHelp strips markup from help text; terminals show it verbatim.
func displayHelp(field model.Field) string {
	if field.Description == "" {
		return ""
	}
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(field.Description)))
}

func optionLabels(field model.Field) []string {
	out := make([]string, 0, len(field.Options))
	for _, opt := range field.Options {
		out = append(out, field.OptionLabel(opt.Value))
	}
	return out
}

func optionIndex(field model.Field, value string) int {
	if value == "" {
		return -1
	}
	for i, opt := range field.Options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
