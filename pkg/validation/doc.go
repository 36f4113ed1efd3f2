// Package validation derives field-level checks from a form model and applies
// them to a read-only view of the form values. Validate is pure: it never
// mutates its target, never panics, and reports at most one message per field
// (the first failing rule wins). A field missing from the returned Errors is
// valid.
package validation
