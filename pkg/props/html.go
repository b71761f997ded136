package props

import (
	"html"
	"html/template"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// attrNames maps DOM-property style keys onto their HTML attribute
// spellings for template rendering.
var attrNames = map[string]string{
	"defaultValue":   "value",
	"defaultChecked": "checked",
	"autoFocus":      "autofocus",
	"noValidate":     "novalidate",
	"formNoValidate": "formnovalidate",
	"minLength":      "minlength",
	"maxLength":      "maxlength",
}

// skipAttrs lists keys that are consumed by the caller rather than
// rendered: key is a remount hint and onSubmit is an engine handle.
var skipAttrs = map[string]struct{}{
	"key":      {},
	"onSubmit": {},
}

// Attr renders a normalized record as an attribute string for use
// inside html/template markup. Keys are emitted in sorted order so
// output is deterministic, values are HTML-escaped, true booleans
// render as bare attributes, and false booleans, sequence values, and
// non-attribute keys are skipped.
func Attr(p Props) template.HTMLAttr {
	if len(p) == 0 {
		return ""
	}

	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	for _, name := range names {
		if _, skip := skipAttrs[name]; skip {
			continue
		}
		value := p[name]
		if value == nil {
			continue
		}

		attr := name
		if mapped, ok := attrNames[name]; ok {
			attr = mapped
		}

		switch v := value.(type) {
		case bool:
			if !v {
				continue
			}
			writeAttr(&builder, attr, "")
		case []string, []any:
			// multi-value defaults have no single-attribute form
			continue
		default:
			writeAttr(&builder, attr, cast.ToString(v))
		}
	}
	return template.HTMLAttr(strings.TrimSpace(builder.String()))
}

func writeAttr(builder *strings.Builder, name, value string) {
	if builder.Len() > 0 {
		builder.WriteByte(' ')
	}
	builder.WriteString(name)
	if value == "" {
		return
	}
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteByte('"')
}
