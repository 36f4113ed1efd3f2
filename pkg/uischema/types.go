package uischema

// Store keeps the parsed operations from UI schema documents. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	operations map[string]Operation
}

// Operation describes the UI overrides for a specific form operation.
type Operation struct {
	ID     string
	Source string
	Form   FormConfig
	Order  []string
	Fields map[string]FieldConfig
}

// FormConfig captures form-level copy.
type FormConfig struct {
	Title          string            `json:"title" yaml:"title"`
	Description    string            `json:"description" yaml:"description"`
	SuccessMessage string            `json:"successMessage" yaml:"successMessage"`
	SubmitLabel    string            `json:"submitLabel" yaml:"submitLabel"`
	RefreshLabel   string            `json:"refreshLabel" yaml:"refreshLabel"`
	Metadata       map[string]string `json:"metadata" yaml:"metadata"`
}

// FieldConfig customises how a single field is presented.
type FieldConfig struct {
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string            `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Widget      string            `json:"widget,omitempty" yaml:"widget,omitempty"`
	Rows        int               `json:"rows,omitempty" yaml:"rows,omitempty"`
	Layout      string            `json:"layout,omitempty" yaml:"layout,omitempty"`
	Options     map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
	Messages    map[string]string `json:"messages,omitempty" yaml:"messages,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
