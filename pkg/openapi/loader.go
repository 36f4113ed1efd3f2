package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-userform/pkg/model"
	"github.com/goliatone/go-userform/pkg/widgets"
)

//go:embed userinfo.yaml
var defaultDocument []byte

// DefaultOperationID identifies the user information form in the embedded
// document.
const DefaultOperationID = "submitUserInfo"

var (
	// ErrOperationNotFound is returned when the document has no operation with
	// the requested id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned when the operation declares no body schema.
	ErrNoRequestBody = errors.New("openapi: operation has no request body schema")
)

// DefaultDocument returns a copy of the embedded user information document.
func DefaultDocument() []byte {
	return append([]byte(nil), defaultDocument...)
}

// Option configures a Loader.
type Option func(*Loader)

// WithValidation toggles OpenAPI document validation (enabled by default).
func WithValidation(enabled bool) Option {
	return func(l *Loader) {
		l.validate = enabled
	}
}

// WithWidgetRegistry replaces the registry choosing widgets for fields whose
// schema names none.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(l *Loader) {
		if registry != nil {
			l.widgets = registry
		}
	}
}

// Loader parses OpenAPI documents with kin-openapi and builds form models.
type Loader struct {
	validate bool
	widgets  *widgets.Registry
}

// NewLoader constructs a Loader.
func NewLoader(options ...Option) *Loader {
	l := &Loader{validate: true, widgets: widgets.NewRegistry()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// LoadDefault builds the embedded user information form.
func LoadDefault(ctx context.Context) (model.FormModel, error) {
	return NewLoader().Load(ctx, defaultDocument, DefaultOperationID)
}

// LoadFS reads a document from fsys and builds the form for operationID.
func (l *Loader) LoadFS(ctx context.Context, fsys fs.FS, path, operationID string) (model.FormModel, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return l.Load(ctx, raw, operationID)
}

// Load parses raw and builds the form for operationID.
func (l *Loader) Load(ctx context.Context, raw []byte, operationID string) (model.FormModel, error) {
	if err := ctx.Err(); err != nil {
		return model.FormModel{}, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return model.FormModel{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if l.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return model.FormModel{}, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	path, method, op := findOperation(doc, operationID)
	if op == nil {
		return model.FormModel{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(op.RequestBody)
	if schema == nil {
		return model.FormModel{}, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}

	return buildForm(operationID, path, method, op, schema, l.widgets), nil
}

func findOperation(doc *openapi3.T, operationID string) (string, string, *openapi3.Operation) {
	if doc == nil || doc.Paths == nil {
		return "", "", nil
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return path, strings.ToUpper(method), op
			}
		}
	}
	return "", "", nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/x-www-form-urlencoded", "multipart/form-data", "application/json"} {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}
