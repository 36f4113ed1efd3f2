package validation

import (
	"fmt"

	"github.com/goliatone/go-userform/pkg/model"
)

// Target exposes the values a Schema checks. Text returns the scalar value of
// a field ("" when unset) and Count the number of selected entries of a
// multi-valued field.
type Target interface {
	Text(field string) string
	Count(field string) int
}

type emptyTarget struct{}

func (emptyTarget) Text(string) string { return "" }
func (emptyTarget) Count(string) int   { return 0 }

// RuleKind identifies the check a Rule performs.
type RuleKind string

const (
	// KindRequired fails on an empty scalar value.
	KindRequired RuleKind = model.ValidationRuleRequired
	// KindMinItems fails when fewer than Min entries are selected.
	KindMinItems RuleKind = model.ValidationRuleMinItems
)

// Rule is a single independent check against one field.
type Rule struct {
	Field   string
	Kind    RuleKind
	Min     int
	Message string
}

// Required builds a non-empty check for a scalar field.
func Required(field, message string) Rule {
	return Rule{Field: field, Kind: KindRequired, Message: message}
}

// MinItems builds a minimum selection check for a multi-valued field.
func MinItems(field string, min int, message string) Rule {
	return Rule{Field: field, Kind: KindMinItems, Min: min, Message: message}
}

// Passes reports whether the target satisfies the rule. Unknown kinds pass.
func (r Rule) Passes(target Target) bool {
	if target == nil {
		target = emptyTarget{}
	}
	switch r.Kind {
	case KindRequired:
		return target.Text(r.Field) != ""
	case KindMinItems:
		return target.Count(r.Field) >= r.Min
	default:
		return true
	}
}

// Schema is an ordered list of rules.
type Schema struct {
	rules []Rule
}

// New builds a Schema from the provided rules, dropping rules without a field.
func New(rules ...Rule) Schema {
	out := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.Field == "" {
			continue
		}
		out = append(out, rule)
	}
	return Schema{rules: out}
}

// Default returns the rule set of the user information form.
func Default() Schema {
	return New(
		Required("name", "Name is required"),
		Required("address", "Address is required"),
		Required("country", "Country is required"),
		Required("gender", "Gender is required"),
		MinItems("hobbies", 1, "Select at least one hobby"),
	)
}

// FromModel derives rules from field requirements. Required scalar fields map
// to KindRequired, array fields map their minItems rule (or Required, which
// implies one selection) to KindMinItems. Messages come from field metadata
// with a label-based fallback.
func FromModel(form model.FormModel) Schema {
	var rules []Rule
	for _, field := range form.Fields {
		label := field.Label
		if label == "" {
			label = model.DefaultLabel(field.Name)
		}

		switch field.Type {
		case model.FieldTypeArray:
			min := 0
			if rule, ok := field.Rule(model.ValidationRuleMinItems); ok {
				if n, ok := rule.IntParam("value"); ok {
					min = n
				}
			}
			if min == 0 && field.Required {
				min = 1
			}
			if min <= 0 {
				continue
			}
			msg := field.Message(model.ValidationRuleMinItems)
			if msg == "" {
				msg = fmt.Sprintf("Select at least %d %s", min, label)
			}
			rules = append(rules, MinItems(field.Name, min, msg))
		default:
			if !field.Required {
				continue
			}
			msg := field.Message(model.ValidationRuleRequired)
			if msg == "" {
				msg = label + " is required"
			}
			rules = append(rules, Required(field.Name, msg))
		}
	}
	return New(rules...)
}

// Rules returns a copy of the rule list.
func (s Schema) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Fields lists the distinct fields covered by the schema in rule order.
func (s Schema) Fields() []string {
	seen := make(map[string]struct{}, len(s.rules))
	var out []string
	for _, rule := range s.rules {
		if _, ok := seen[rule.Field]; ok {
			continue
		}
		seen[rule.Field] = struct{}{}
		out = append(out, rule.Field)
	}
	return out
}

// Missing returns the rules of base that s does not enforce. A required rule
// is matched by field, a minItems rule by field with at least the same Min.
func (s Schema) Missing(base Schema) []Rule {
	var out []Rule
	for _, want := range base.rules {
		if !s.enforces(want) {
			out = append(out, want)
		}
	}
	return out
}

func (s Schema) enforces(want Rule) bool {
	for _, have := range s.rules {
		if have.Field != want.Field || have.Kind != want.Kind {
			continue
		}
		if want.Kind == KindMinItems && have.Min < want.Min {
			continue
		}
		return true
	}
	return false
}

// Validate runs every rule and returns the first failing message per field.
// The result is never nil.
func (s Schema) Validate(target Target) Errors {
	errs := make(Errors, len(s.rules))
	for _, rule := range s.rules {
		if rule.Passes(target) {
			continue
		}
		errs.Add(rule.Field, rule.Message)
	}
	return errs
}
