// Package model defines the typed form model consumed by the validation
// schema, the controller and the renderers. A FormModel is built from the
// OpenAPI form definition (see pkg/openapi) and decorated with the UI overlay
// (see pkg/uischema). Validation rules expose canonical identifiers
// (required, minItems, minLength) with string parameters so renderers can map
// them onto HTML attributes while the validation package maps them onto
// checks. Field widgets (`input`, `textarea`, `select`, `radio`,
// `checkboxes`) tell renderers which control to emit; closed option sets are
// carried as value/label pairs.
package model
