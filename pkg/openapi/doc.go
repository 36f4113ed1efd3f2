// Package openapi turns an OpenAPI 3 document into the form model. The form is
// the request body of a single operation: every body property becomes a field,
// `required` marks mandatory scalars, `enum` (or `items.enum`) becomes the
// option set and `minItems` a selection minimum. Presentation hints live under
// `x-formgen-*` extensions (`widget`, `rows`, `placeholder`, `messages`,
// `order`). The built-in user information document is embedded and served by
// LoadDefault.
package openapi
