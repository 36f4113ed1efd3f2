package form

import "github.com/goliatone/go-userform/pkg/validation"

// View is an immutable snapshot of a Controller.
type View struct {
	Values        State             `json:"values"`
	Errors        validation.Errors `json:"errors"`
	Visible       validation.Errors `json:"visibleErrors"`
	Touched       []string          `json:"touched"`
	Submitted     bool              `json:"submitted"`
	SubmitSuccess bool              `json:"submitSuccess"`
}

// VisibleError returns the message shown under field, or "".
func (v View) VisibleError(field string) string {
	return v.Visible[field]
}

// IsTouched reports whether field was interacted with.
func (v View) IsTouched(field string) bool {
	for _, f := range v.Touched {
		if f == field {
			return true
		}
	}
	return false
}
