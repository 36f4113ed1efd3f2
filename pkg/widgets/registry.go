package widgets

import (
	"sort"
	"sync"

	"github.com/goliatone/go-userform/pkg/model"
)

// Matcher decides whether a widget should render the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	widget   model.Widget
	priority int
	match    Matcher
	order    int
}

// Registry selects the control for fields that carry no explicit widget.
// Higher priority wins; ties fall back to registration order. An empty
// registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for widget with the provided priority. Unknown
// widgets and nil matchers are ignored.
func (r *Registry) Register(widget model.Widget, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	if _, ok := model.ParseWidget(string(widget)); !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		widget:   widget,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget for a field. A widget already set on the field
// is honoured before matcher evaluation.
func (r *Registry) Resolve(field model.Field) (model.Widget, bool) {
	if field.Widget != "" {
		return field.Widget, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.widget, true
		}
	}
	return "", false
}

// Decorate implements model.Decorator, filling in the widget of every field
// that has none.
func (r *Registry) Decorate(form *model.FormModel) error {
	if r == nil || form == nil {
		return nil
	}
	for idx, field := range form.Fields {
		if widget, ok := r.Resolve(field); ok {
			form.Fields[idx].Widget = widget
		}
	}
	return nil
}

func (r *Registry) registerBuiltins() {
	r.Register(model.WidgetCheckboxes, 80, func(field model.Field) bool {
		return field.Type == model.FieldTypeArray
	})

	r.Register(model.WidgetRadio, 75, func(field model.Field) bool {
		return len(field.Options) > 0 && field.Metadata[model.MetadataLayout] != ""
	})

	r.Register(model.WidgetSelect, 70, func(field model.Field) bool {
		return len(field.Options) > 0
	})

	r.Register(model.WidgetTextArea, 60, func(field model.Field) bool {
		return field.Metadata[model.MetadataRows] != ""
	})

	r.Register(model.WidgetInput, 0, func(model.Field) bool {
		return true
	})
}
