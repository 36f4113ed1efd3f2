package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-userform/pkg/model"
	"github.com/goliatone/go-userform/pkg/validation"
)

type mapTarget struct {
	text  map[string]string
	lists map[string][]string
}

func (m mapTarget) Text(field string) string { return m.text[field] }
func (m mapTarget) Count(field string) int  { return len(m.lists[field]) }

func validTarget() mapTarget {
	return mapTarget{
		text: map[string]string{
			"name":    "Ana",
			"address": "1 Rd",
			"country": "USA",
			"gender":  "female",
		},
		lists: map[string][]string{"hobbies": {"reading"}},
	}
}

func TestDefault_ValidScenario(t *testing.T) {
	errs := validation.Default().Validate(validTarget())
	if !errs.Valid() {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if errs == nil {
		t.Fatalf("expected non-nil errors map")
	}
}

func TestDefault_EmptyScenario(t *testing.T) {
	errs := validation.Default().Validate(mapTarget{})

	want := validation.Errors{
		"name":    "Name is required",
		"address": "Address is required",
		"country": "Country is required",
		"gender":  "Gender is required",
		"hobbies": "Select at least one hobby",
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_NilTarget(t *testing.T) {
	errs := validation.Default().Validate(nil)
	if len(errs) != 5 {
		t.Fatalf("expected five errors for nil target, got %v", errs)
	}
}

// Every combination of broken fields yields exactly the broken set.
func TestDefault_ErrorIffRuleViolated(t *testing.T) {
	fields := []string{"name", "address", "country", "gender", "hobbies"}
	schema := validation.Default()

	for mask := 0; mask < 1<<len(fields); mask++ {
		target := validTarget()
		target.text = cloneText(target.text)
		target.lists = map[string][]string{"hobbies": {"reading", "cooking"}}

		var wantFields []string
		for i, field := range fields {
			if mask&(1<<i) == 0 {
				continue
			}
			wantFields = append(wantFields, field)
			if field == "hobbies" {
				target.lists["hobbies"] = nil
				continue
			}
			target.text[field] = ""
		}

		errs := schema.Validate(target)
		got := errs.Fields()
		want := sorted(wantFields)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("mask %05b: failing fields mismatch (-want +got):\n%s", mask, diff)
		}
	}
}

func TestValidate_DoesNotTrimWhitespace(t *testing.T) {
	target := validTarget()
	target.text = cloneText(target.text)
	target.text["name"] = " "

	if errs := validation.Default().Validate(target); errs.Has("name") {
		t.Fatalf("whitespace-only name counts as non-empty, got %v", errs)
	}
}

func TestFromModel(t *testing.T) {
	form := model.FormModel{
		Fields: []model.Field{
			{Name: "name", Type: model.FieldTypeString, Required: true, Label: "Name"},
			{Name: "nickname", Type: model.FieldTypeString},
			{
				Name:     "postal_code",
				Type:     model.FieldTypeString,
				Required: true,
				Metadata: map[string]string{"message.required": "Postcode please"},
			},
			{
				Name:  "hobbies",
				Type:  model.FieldTypeArray,
				Label: "hobbies",
				Validations: []model.ValidationRule{
					{Kind: model.ValidationRuleMinItems, Params: map[string]string{"value": "2"}},
				},
			},
			{Name: "tags", Type: model.FieldTypeArray, Required: true, Label: "tag"},
			{Name: "extras", Type: model.FieldTypeArray},
		},
	}

	got := validation.FromModel(form).Rules()
	want := []validation.Rule{
		validation.Required("name", "Name is required"),
		validation.Required("postal_code", "Postcode please"),
		validation.MinItems("hobbies", 2, "Select at least 2 hobbies"),
		validation.MinItems("tags", 1, "Select at least 1 tag"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"name", "postal_code", "hobbies", "tags"}, validation.FromModel(form).Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestMissing(t *testing.T) {
	if missing := validation.Default().Missing(validation.Default()); len(missing) != 0 {
		t.Fatalf("default schema should enforce itself, missing %v", missing)
	}

	weaker := validation.New(
		validation.Required("name", "x"),
		validation.Required("address", "x"),
		validation.Required("gender", "x"),
		validation.MinItems("hobbies", 0, "x"),
	)
	var got []string
	for _, rule := range weaker.Missing(validation.Default()) {
		got = append(got, rule.Field)
	}
	if diff := cmp.Diff([]string{"country", "hobbies"}, got); diff != "" {
		t.Fatalf("missing rules mismatch (-want +got):\n%s", diff)
	}

	stricter := validation.New(append(validation.Default().Rules(), validation.MinItems("hobbies", 2, "x"))...)
	if missing := stricter.Missing(validation.Default()); len(missing) != 0 {
		t.Fatalf("stricter schema reported missing %v", missing)
	}
}

func TestErrors_AddKeepsFirstMessage(t *testing.T) {
	schema := validation.New(
		validation.Required("name", "first"),
		validation.Required("name", "second"),
		validation.Rule{Kind: validation.KindRequired, Message: "no field"},
	)
	errs := schema.Validate(mapTarget{})
	if diff := cmp.Diff(validation.Errors{"name": "first"}, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors_Only(t *testing.T) {
	errs := validation.Errors{"name": "a", "gender": "b"}
	visible := errs.Only(func(field string) bool { return field == "gender" })
	if diff := cmp.Diff(validation.Errors{"gender": "b"}, visible); diff != "" {
		t.Fatalf("only mismatch (-want +got):\n%s", diff)
	}
	if len(errs.Only(nil)) != 0 {
		t.Fatalf("nil predicate keeps nothing")
	}
	clone := errs.Clone()
	clone["name"] = "changed"
	if errs.Get("name") != "a" {
		t.Fatalf("clone must not alias the source")
	}
}

func cloneText(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sorted(in []string) []string {
	out := append([]string{}, in...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
