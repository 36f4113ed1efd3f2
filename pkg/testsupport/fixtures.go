package testsupport

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	clocktesting "k8s.io/utils/clock/testing"

	"github.com/goliatone/go-userform/pkg/form"
	pkgmodel "github.com/goliatone/go-userform/pkg/model"
	pkgopenapi "github.com/goliatone/go-userform/pkg/openapi"
	"github.com/goliatone/go-userform/pkg/uischema"
)

// Epoch is the fixed start time of fake clocks handed out by this package.
var Epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// UserInfoForm builds the embedded user information form with the default UI
// overlay applied.
func UserInfoForm(t *testing.T) pkgmodel.FormModel {
	t.Helper()

	formModel, err := pkgopenapi.LoadDefault(Context())
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	store, err := uischema.LoadDefault()
	if err != nil {
		t.Fatalf("load overlay: %v", err)
	}
	if err := uischema.NewDecorator(store).Decorate(&formModel); err != nil {
		t.Fatalf("decorate form: %v", err)
	}
	return formModel
}

// FakeClock returns a fake clock positioned at Epoch.
func FakeClock() *clocktesting.FakeClock {
	return clocktesting.NewFakeClock(Epoch)
}

// FillValid enters the canonical valid submission into c.
func FillValid(t *testing.T, c *form.Controller) {
	t.Helper()

	edits := []struct{ field, value string }{
		{form.FieldName, "Ana"},
		{form.FieldAddress, "1 Rd"},
		{form.FieldCountry, string(form.CountryUSA)},
		{form.FieldGender, string(form.GenderFemale)},
	}
	for _, edit := range edits {
		if err := c.SetField(edit.field, edit.value); err != nil {
			t.Fatalf("set %s: %v", edit.field, err)
		}
	}
	if err := c.SetHobby(string(form.HobbyReading), true); err != nil {
		t.Fatalf("set hobby: %v", err)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
