package props

import (
	"github.com/goliatone/go-formprops/pkg/intent"
)

// ControlButton derives attributes for a submit button that carries
// form intents instead of user data. Validation is always bypassed so
// intent-only submissions, such as adding or removing a list row, do
// not trigger full-form validation. If the intents cannot be
// serialized the value attribute is omitted and the button submits an
// empty intent.
func ControlButton(formID string, intents ...intent.Intent) Props {
	p := Props{
		"name":           intent.FieldName,
		"form":           formID,
		"formNoValidate": true,
	}
	if serialized, err := intent.Serialize(intents...); err == nil && serialized != "" {
		p["value"] = serialized
	}
	return Normalize(p)
}
