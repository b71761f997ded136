package fieldmeta

// Constraint mirrors the HTML validation attributes the form-state
// engine reports for a single field. Pointer fields and zero values
// distinguish "not set" from a real limit so composers can omit
// attributes instead of emitting spurious zeroes.
type Constraint struct {
	Required  bool   `json:"required,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Min       any    `json:"min,omitempty"`
	Max       any    `json:"max,omitempty"`
	Step      any    `json:"step,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Multiple  bool   `json:"multiple,omitempty"`
}

// Field describes one form field's current state as reported by the
// engine. Key is an identity hint that changes when the engine wants
// the rendered control remounted (for example after a form reset).
// InitialValue holds a string, bool, []string, []any, or nil.
type Field struct {
	Key           string      `json:"key,omitempty"`
	ID            string      `json:"id,omitempty"`
	Name          string      `json:"name,omitempty"`
	FormID        string      `json:"formId,omitempty"`
	ErrorID       string      `json:"errorId,omitempty"`
	DescriptionID string      `json:"descriptionId,omitempty"`
	Valid         bool        `json:"valid"`
	AllValid      bool        `json:"allValid"`
	Constraint    *Constraint `json:"constraint,omitempty"`
	InitialValue  any         `json:"initialValue,omitempty"`
}

// Form describes form-level state. OnSubmit and NoValidate are opaque
// engine handles passed through to the form composer unchanged.
type Form struct {
	ID            string `json:"id,omitempty"`
	ErrorID       string `json:"errorId,omitempty"`
	DescriptionID string `json:"descriptionId,omitempty"`
	Valid         bool   `json:"valid"`
	AllValid      bool   `json:"allValid"`
	OnSubmit      any    `json:"-"`
	NoValidate    bool   `json:"noValidate,omitempty"`
}

// Validity is the slice of metadata the aria deriver needs. Both Field
// and Form project onto it.
type Validity struct {
	Valid         bool
	AllValid      bool
	ErrorID       string
	DescriptionID string
}

// Validity projects the field's validity and identity fields.
func (f Field) Validity() Validity {
	return Validity{
		Valid:         f.Valid,
		AllValid:      f.AllValid,
		ErrorID:       f.ErrorID,
		DescriptionID: f.DescriptionID,
	}
}

// Validity projects the form's validity and identity fields.
func (f Form) Validity() Validity {
	return Validity{
		Valid:         f.Valid,
		AllValid:      f.AllValid,
		ErrorID:       f.ErrorID,
		DescriptionID: f.DescriptionID,
	}
}
