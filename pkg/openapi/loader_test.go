package openapi_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-userform/pkg/model"
	"github.com/goliatone/go-userform/pkg/openapi"
	"github.com/goliatone/go-userform/pkg/validation"
	"github.com/goliatone/go-userform/pkg/widgets"
)

func TestLoadDefault_BuildsUserInfoForm(t *testing.T) {
	form, err := openapi.LoadDefault(context.Background())
	if err != nil {
		t.Fatalf("load default: %v", err)
	}

	if form.OperationID != openapi.DefaultOperationID {
		t.Fatalf("operation id mismatch: %q", form.OperationID)
	}
	if form.Method != "POST" || form.Endpoint != "/" {
		t.Fatalf("endpoint mismatch: %s %s", form.Method, form.Endpoint)
	}
	if form.Title != "User Information Form" {
		t.Fatalf("title mismatch: %q", form.Title)
	}

	wantNames := []string{"name", "address", "country", "gender", "hobbies"}
	if diff := cmp.Diff(wantNames, form.FieldNames()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	type shape struct {
		Widget   model.Widget
		Type     model.FieldType
		Required bool
		Options  []string
	}
	want := map[string]shape{
		"name":    {Widget: model.WidgetInput, Type: model.FieldTypeString, Required: true},
		"address": {Widget: model.WidgetTextArea, Type: model.FieldTypeString, Required: true},
		"country": {Widget: model.WidgetSelect, Type: model.FieldTypeString, Required: true, Options: []string{"USA", "Canada", "UK"}},
		"gender":  {Widget: model.WidgetRadio, Type: model.FieldTypeString, Required: true, Options: []string{"male", "female"}},
		"hobbies": {Widget: model.WidgetCheckboxes, Type: model.FieldTypeArray, Options: []string{"reading", "traveling", "cooking"}},
	}
	for _, field := range form.Fields {
		got := shape{Widget: field.Widget, Type: field.Type, Required: field.Required, Options: field.OptionValues()}
		if diff := cmp.Diff(want[field.Name], got); diff != "" {
			t.Fatalf("field %s mismatch (-want +got):\n%s", field.Name, diff)
		}
	}

	address, _ := form.Field("address")
	if address.Rows() != 3 {
		t.Fatalf("expected 3 address rows, got %d", address.Rows())
	}
	country, _ := form.Field("country")
	if country.Placeholder != "Select Country" {
		t.Fatalf("country placeholder mismatch: %q", country.Placeholder)
	}
	hobbies, _ := form.Field("hobbies")
	if rule, ok := hobbies.Rule(model.ValidationRuleMinItems); !ok || rule.Params["value"] != "1" {
		t.Fatalf("hobbies minItems rule missing: %#v", hobbies.Validations)
	}
}

func TestLoadDefault_MatchesDefaultSchema(t *testing.T) {
	form, err := openapi.LoadDefault(context.Background())
	if err != nil {
		t.Fatalf("load default: %v", err)
	}

	got := validation.FromModel(form).Rules()
	want := validation.Default().Rules()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_UnknownOperation(t *testing.T) {
	_, err := openapi.NewLoader().Load(context.Background(), openapi.DefaultDocument(), "missing")
	if !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestLoad_EmptyPayload(t *testing.T) {
	if _, err := openapi.NewLoader().Load(context.Background(), []byte("  "), openapi.DefaultOperationID); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := openapi.NewLoader().Load(ctx, openapi.DefaultDocument(), openapi.DefaultOperationID)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

const minimalDocument = `
openapi: 3.0.3
info: {title: Contact, version: "1"}
paths:
  /contact:
    post:
      operationId: contact
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [email]
              properties:
                topic:
                  type: string
                  enum: [sales, support]
                email:
                  type: string
                  minLength: 3
                favoriteColor:
                  type: array
                  items: {type: string}
      responses:
        "204": {description: ok}
`

func TestLoadFS_InfersWidgetsAndLabels(t *testing.T) {
	fsys := fstest.MapFS{"contact.yaml": &fstest.MapFile{Data: []byte(minimalDocument)}}

	form, err := openapi.NewLoader().LoadFS(context.Background(), fsys, "contact.yaml", "contact")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"email", "favoriteColor", "topic"}, form.FieldNames()); diff != "" {
		t.Fatalf("lexical order expected without x-formgen-order (-want +got):\n%s", diff)
	}

	email, _ := form.Field("email")
	if !email.Required || email.Widget != model.WidgetInput || email.Label != "Email" {
		t.Fatalf("email field mismatch: %#v", email)
	}
	if _, ok := email.Rule(model.ValidationRuleMinLength); !ok {
		t.Fatalf("email minLength rule missing: %#v", email.Validations)
	}

	color, _ := form.Field("favoriteColor")
	if color.Type != model.FieldTypeArray || color.Widget != model.WidgetCheckboxes || color.Label != "Favorite Color" {
		t.Fatalf("favoriteColor field mismatch: %#v", color)
	}

	topic, _ := form.Field("topic")
	if topic.Widget != model.WidgetSelect || topic.Required {
		t.Fatalf("topic field mismatch: %#v", topic)
	}

	schema := validation.FromModel(form)
	if diff := cmp.Diff([]string{"email"}, schema.Fields()); diff != "" {
		t.Fatalf("schema fields mismatch (-want +got):\n%s", diff)
	}
	if msg := schema.Validate(nil).Get("email"); msg != "Email is required" {
		t.Fatalf("fallback message mismatch: %q", msg)
	}
}

func TestLoadFS_MissingFile(t *testing.T) {
	_, err := openapi.NewLoader().LoadFS(context.Background(), fstest.MapFS{}, "nope.yaml", "contact")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_CustomWidgetRegistry(t *testing.T) {
	registry := &widgets.Registry{}
	registry.Register(model.WidgetRadio, 10, func(field model.Field) bool {
		return len(field.Options) > 0
	})

	loader := openapi.NewLoader(openapi.WithWidgetRegistry(registry))
	form, err := loader.Load(context.Background(), []byte(minimalDocument), "contact")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	topic, _ := form.Field("topic")
	if topic.Widget != model.WidgetRadio {
		t.Fatalf("expected registry to pick radio, got %q", topic.Widget)
	}
	email, _ := form.Field("email")
	if email.Widget != "" {
		t.Fatalf("expected no widget without a matching rule, got %q", email.Widget)
	}
}
