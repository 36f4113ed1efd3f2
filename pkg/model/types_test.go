package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-userform/pkg/model"
)

func TestDefaultLabel(t *testing.T) {
	cases := map[string]string{
		"name":         "Name",
		"postal_code":  "Postal Code",
		"favoriteFood": "Favorite Food",
		"":             "",
	}
	for input, want := range cases {
		if got := model.DefaultLabel(input); got != want {
			t.Fatalf("DefaultLabel(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestField_RuleAndMessage(t *testing.T) {
	field := model.Field{
		Name: "hobbies",
		Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleMinItems, Params: map[string]string{"value": "1"}},
		},
		Metadata: map[string]string{
			"message.minItems": " Select at least one hobby ",
		},
	}

	rule, ok := field.Rule(model.ValidationRuleMinItems)
	if !ok {
		t.Fatalf("expected minItems rule")
	}
	if n, ok := rule.IntParam("value"); !ok || n != 1 {
		t.Fatalf("expected minItems value 1, got %d (ok=%v)", n, ok)
	}
	if _, ok := field.Rule(model.ValidationRuleRequired); ok {
		t.Fatalf("did not expect required rule")
	}
	if got := field.Message(model.ValidationRuleMinItems); got != "Select at least one hobby" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestField_Options(t *testing.T) {
	field := model.Field{
		Options: []model.Option{
			{Value: "male", Label: "Male"},
			{Value: "female"},
		},
	}
	if diff := cmp.Diff([]string{"male", "female"}, field.OptionValues()); diff != "" {
		t.Fatalf("option values mismatch (-want +got):\n%s", diff)
	}
	if got := field.OptionLabel("male"); got != "Male" {
		t.Fatalf("expected label Male, got %q", got)
	}
	if got := field.OptionLabel("female"); got != "female" {
		t.Fatalf("expected fallback label, got %q", got)
	}
	if got := field.OptionLabel("other"); got != "other" {
		t.Fatalf("expected unknown value echoed, got %q", got)
	}
}

func TestFormModel_Lookup(t *testing.T) {
	form := model.FormModel{
		Fields: []model.Field{
			{Name: "name", Metadata: map[string]string{"rows": "x"}},
			{Name: "address", Metadata: map[string]string{"rows": "3"}},
		},
		Metadata: map[string]string{model.FormMetadataSuccessMessage: "Done"},
	}

	field, ok := form.Field("address")
	if !ok || field.Rows() != 3 {
		t.Fatalf("expected address with 3 rows, got %+v (ok=%v)", field, ok)
	}
	if name, _ := form.Field("name"); name.Rows() != 0 {
		t.Fatalf("expected invalid rows hint to be ignored")
	}
	if _, ok := form.Field("missing"); ok {
		t.Fatalf("did not expect missing field")
	}
	if diff := cmp.Diff([]string{"name", "address"}, form.FieldNames()); diff != "" {
		t.Fatalf("field names mismatch (-want +got):\n%s", diff)
	}
	if got := form.Meta(model.FormMetadataSuccessMessage, "fallback"); got != "Done" {
		t.Fatalf("unexpected meta %q", got)
	}
	if got := form.Meta(model.FormMetadataSubmitLabel, "Submit"); got != "Submit" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestParseWidget(t *testing.T) {
	if widget, ok := model.ParseWidget(" TextArea "); !ok || widget != model.WidgetTextArea {
		t.Fatalf("expected textarea, got %q (ok=%v)", widget, ok)
	}
	if _, ok := model.ParseWidget("slider"); ok {
		t.Fatalf("unknown widget must not parse")
	}
}
