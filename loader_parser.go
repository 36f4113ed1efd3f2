package userform

import (
	pkgopenapi "github.com/goliatone/go-userform/pkg/openapi"
)

// NewLoader constructs the OpenAPI form loader with document validation on.
func NewLoader(options ...pkgopenapi.Option) *pkgopenapi.Loader {
	return pkgopenapi.NewLoader(options...)
}
