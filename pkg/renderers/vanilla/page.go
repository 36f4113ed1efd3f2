package vanilla

import (
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-userform/pkg/model"
	"github.com/goliatone/go-userform/pkg/render"
)

const (
	defaultTitle        = "Form"
	defaultSubmitLabel  = "Submit"
	defaultRefreshLabel = "Refresh"
	defaultSuccess      = "Form submitted successfully!"
	defaultDismissURL   = "/dismiss"
	defaultTextareaRows = 3
)

// The page data holds only strings, bools and slices so the template engine's
// JSON normalisation leaves values untouched.

type pageData struct {
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Action        string       `json:"action"`
	Method        string       `json:"method"`
	SubmitLabel   string       `json:"submit_label"`
	RefreshLabel  string       `json:"refresh_label"`
	Hidden        []hiddenData `json:"hidden_fields"`
	Fields        []fieldData  `json:"fields"`
	Success       successData  `json:"success"`
	Theme         themeData    `json:"theme"`
	StylesheetURL string       `json:"stylesheet_url,omitempty"`
	Stylesheet    string       `json:"stylesheet,omitempty"`
}

type hiddenData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type fieldData struct {
	Name        string       `json:"name"`
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Widget      string       `json:"widget"`
	Placeholder string       `json:"placeholder,omitempty"`
	Help        string       `json:"help,omitempty"`
	Rows        string       `json:"rows,omitempty"`
	Layout      string       `json:"layout,omitempty"`
	Value       string       `json:"value"`
	Error       string       `json:"error,omitempty"`
	Options     []optionData `json:"options,omitempty"`
}

type optionData struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type successData struct {
	Show       bool   `json:"show"`
	Message    string `json:"message"`
	DismissURL string `json:"dismiss_url"`
	FadeDelay  string `json:"fade_delay"`
}

type themeData struct {
	Name    string `json:"name,omitempty"`
	Variant string `json:"variant,omitempty"`
	CSS     string `json:"css,omitempty"`
}

func buildPage(form model.FormModel, opts render.RenderOptions) pageData {
	view := opts.View

	method := strings.ToLower(strings.TrimSpace(form.Method))
	if method != "get" {
		method = "post"
	}
	action := form.Endpoint
	if action == "" {
		action = "/"
	}
	title := form.Title
	if title == "" {
		title = defaultTitle
	}

	page := pageData{
		Title:        title,
		Description:  form.Description,
		Action:       action,
		Method:       method,
		SubmitLabel:  form.Meta(model.FormMetadataSubmitLabel, defaultSubmitLabel),
		RefreshLabel: form.Meta(model.FormMetadataRefreshLabel, defaultRefreshLabel),
		Hidden:       []hiddenData{},
		Fields:       make([]fieldData, 0, len(form.Fields)),
		Success: successData{
			Show:       view.SubmitSuccess,
			Message:    form.Meta(model.FormMetadataSuccessMessage, defaultSuccess),
			DismissURL: opts.DismissURL,
			FadeDelay:  fadeDelay(opts.DismissAfter),
		},
	}
	if page.Success.DismissURL == "" {
		page.Success.DismissURL = defaultDismissURL
	}

	for _, hidden := range opts.Hidden {
		if name := strings.TrimSpace(hidden.Name); name != "" {
			page.Hidden = append(page.Hidden, hiddenData{Name: name, Value: hidden.Value})
		}
	}

	for _, field := range form.Fields {
		page.Fields = append(page.Fields, buildField(field, view.Values.Selected(field.Name), view.Values.Text(field.Name), view.VisibleError(field.Name)))
	}

	if cfg := opts.Theme; cfg != nil {
		page.Theme = themeData{Name: cfg.Theme, Variant: cfg.Variant, CSS: render.CSSVarsStyle(cfg)}
		if cfg.AssetURL != nil {
			page.StylesheetURL = cfg.AssetURL(StylesheetName)
		}
	}
	if page.StylesheetURL == "" {
		page.Stylesheet = defaultStylesheet()
	}
	return page
}

func buildField(field model.Field, selected []string, text, errMsg string) fieldData {
	label := field.Label
	if label == "" {
		label = model.DefaultLabel(field.Name)
	}

	out := fieldData{
		Name:        field.Name,
		ID:          "field-" + field.Name,
		Label:       label,
		Widget:      string(field.Widget),
		Placeholder: field.Placeholder,
		Help:        field.Description,
		Layout:      field.Metadata[model.MetadataLayout],
		Value:       text,
		Error:       errMsg,
	}

	switch field.Widget {
	case model.WidgetTextArea:
		rows := field.Rows()
		if rows == 0 {
			rows = defaultTextareaRows
		}
		out.Rows = strconv.Itoa(rows)
	case model.WidgetSelect:
		if out.Placeholder == "" {
			out.Placeholder = "Select " + label
		}
	case "":
		out.Widget = string(model.WidgetInput)
	}

	chosen := make(map[string]struct{}, len(selected))
	for _, value := range selected {
		chosen[value] = struct{}{}
	}
	for _, opt := range field.Options {
		_, isSelected := chosen[opt.Value]
		out.Options = append(out.Options, optionData{
			ID:       out.ID + "-" + opt.Value,
			Value:    opt.Value,
			Label:    field.OptionLabel(opt.Value),
			Selected: isSelected,
		})
	}
	return out
}

func fadeDelay(d time.Duration) string {
	if d <= 0 {
		// Effectively never: the notice stays until closed.
		return "86400s"
	}
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
