package userform

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-userform/pkg/form"
	"github.com/goliatone/go-userform/pkg/model"
	pkgopenapi "github.com/goliatone/go-userform/pkg/openapi"
	"github.com/goliatone/go-userform/pkg/render"
	"github.com/goliatone/go-userform/pkg/renderers/vanilla"
	"github.com/goliatone/go-userform/pkg/uischema"
	"github.com/goliatone/go-userform/pkg/validation"
)

// RenderOptions describes the per-request state handed to renderers; alias
// exported via the root package for convenience.
type RenderOptions = render.RenderOptions

// Option configures LoadForm.
type Option func(*loadOptions)

type loadOptions struct {
	documentFS   fs.FS
	documentPath string
	operationID  string
	uischemaFS   fs.FS
	decorators   model.Decorators
}

// WithDocumentFS reads the OpenAPI document at path inside fsys instead of the
// bundled one.
func WithDocumentFS(fsys fs.FS, path string) Option {
	return func(o *loadOptions) {
		o.documentFS = fsys
		o.documentPath = path
	}
}

// WithDocumentFile reads the OpenAPI document from disk. An empty path keeps
// the bundled document.
func WithDocumentFile(path string) Option {
	return func(o *loadOptions) {
		if path == "" {
			return
		}
		o.documentFS = os.DirFS(filepath.Dir(path))
		o.documentPath = filepath.Base(path)
	}
}

// WithOperationID selects the operation rendered as the form.
func WithOperationID(id string) Option {
	return func(o *loadOptions) {
		if id != "" {
			o.operationID = id
		}
	}
}

// WithUISchemaFS replaces the bundled UI overlay.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(o *loadOptions) {
		o.uischemaFS = fsys
	}
}

// WithUISchemaDir loads the UI overlay from a directory. An empty dir keeps
// the bundled overlay.
func WithUISchemaDir(dir string) Option {
	return func(o *loadOptions) {
		if dir == "" {
			return
		}
		o.uischemaFS = os.DirFS(dir)
	}
}

// WithDecorators runs extra decorators after the UI overlay.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *loadOptions) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// LoadForm loads the form definition and applies the UI overlay. Without
// options it returns the bundled user information form. Documents that change
// the field set or drop a validation rule fail with ErrIncompatibleForm.
func LoadForm(ctx context.Context, options ...Option) (model.FormModel, error) {
	cfg := loadOptions{operationID: pkgopenapi.DefaultOperationID}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	loader := NewLoader()
	var (
		formModel model.FormModel
		err       error
	)
	if cfg.documentFS != nil {
		formModel, err = loader.LoadFS(ctx, cfg.documentFS, cfg.documentPath, cfg.operationID)
	} else {
		formModel, err = loader.Load(ctx, pkgopenapi.DefaultDocument(), cfg.operationID)
	}
	if err != nil {
		return model.FormModel{}, err
	}

	var store *uischema.Store
	if cfg.uischemaFS != nil {
		store, err = uischema.LoadFS(cfg.uischemaFS)
	} else {
		store, err = uischema.LoadDefault()
	}
	if err != nil {
		return model.FormModel{}, fmt.Errorf("userform: load ui schema: %w", err)
	}
	chain := append(model.Decorators{uischema.NewDecorator(store)}, cfg.decorators...)
	if err := chain.Decorate(&formModel); err != nil {
		return model.FormModel{}, fmt.Errorf("userform: decorate form: %w", err)
	}
	if err := checkCompatible(formModel); err != nil {
		return model.FormModel{}, err
	}
	return formModel, nil
}

// NewController returns a controller validating against the rules declared
// by formModel.
func NewController(formModel model.FormModel, options ...form.Option) *form.Controller {
	opts := make([]form.Option, 0, len(options)+1)
	opts = append(opts, form.WithSchema(validation.FromModel(formModel)))
	opts = append(opts, options...)
	return form.NewController(opts...)
}

// RenderHTML renders formModel with the bundled HTML renderer. It is the
// simplest entry point for callers embedding the page in their own server.
func RenderHTML(ctx context.Context, formModel model.FormModel, options RenderOptions) ([]byte, error) {
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, formModel, options)
}
