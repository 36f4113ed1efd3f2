// Package widgets chooses the control used to render a field when the form
// definition does not name one.
package widgets
