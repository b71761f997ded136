package props

import (
	"slices"

	"github.com/goliatone/go-formprops/pkg/fieldmeta"
)

// Collection derives one attribute record per option for a checkbox or
// radio group, preserving the caller's option order. Every entry shares
// the parent field's aria and focus state; identity attributes are
// derived per entry so each control remounts independently:
//
//   - key is the field's key (or empty) concatenated with the option,
//   - id is "<field id>-<option>",
//   - value is the option itself.
//
// defaultChecked for a checkbox group with sequence-valued metadata is
// sequence membership; radios, and checkboxes backed by scalar
// metadata, compare the option for strict equality. A required checkbox
// group is not "every box checked", so required is forced absent for
// checkboxes and the caller owns at-least-one-checked validation.
func Collection(field fieldmeta.Field, opts CollectionOptions) []Props {
	values, isSequence := sequence(field.InitialValue)

	out := make([]Props, 0, len(opts.Options))
	for _, option := range opts.Options {
		p := Control(field, opts.AriaOptions)
		p["key"] = field.Key + option
		p["id"] = field.ID + "-" + option
		p["type"] = opts.Type
		p["value"] = option

		if opts.Value.derive() {
			if opts.Type == TypeCheckbox && isSequence {
				p["defaultChecked"] = slices.Contains(values, option)
			} else {
				p["defaultChecked"] = field.InitialValue == any(option)
			}
		}
		if opts.Type == TypeCheckbox {
			delete(p, "required")
		}
		out = append(out, Normalize(p))
	}
	return out
}
