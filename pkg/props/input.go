package props

import (
	"github.com/goliatone/go-formprops/pkg/fieldmeta"
)

// Input derives attributes for an input element: the Control superset,
// the type attribute, the field's validation constraints, and default
// value/checked state.
//
// Checkbox and radio inputs resolve a value attribute (an explicit
// WithValue literal, else "on") and derive defaultChecked from it: a
// boolean InitialValue drives the checkbox directly, anything else is
// compared for strict equality with the resolved value string. The two
// branches are intentionally independent; a boolean-backed checkbox
// keeps its shortcut even when a custom value attribute is set.
//
// Every other type takes InitialValue verbatim as defaultValue when it
// is a scalar. Sequence values are never assigned to a single input;
// use Collection or a multi-select for those fields.
func Input(field fieldmeta.Field, opts InputOptions) Props {
	p := Control(field, opts.AriaOptions)
	if opts.Type != "" {
		p["type"] = opts.Type
	}
	applyConstraint(p, field.Constraint)

	if opts.Value.derive() {
		switch opts.Type {
		case TypeCheckbox, TypeRadio:
			value := "on"
			if literal, ok := opts.Value.Literal(); ok {
				value = literal
			}
			p["value"] = value
			if checked, ok := field.InitialValue.(bool); ok {
				p["defaultChecked"] = checked
			} else {
				p["defaultChecked"] = field.InitialValue == any(value)
			}
		default:
			if _, ok := sequence(field.InitialValue); !ok && field.InitialValue != nil {
				p["defaultValue"] = field.InitialValue
			}
		}
	}
	return Normalize(p)
}
