package props

import (
	"strings"

	"github.com/goliatone/go-formprops/pkg/fieldmeta"
)

// AriaInvalidSource selects which validity flag drives aria-invalid.
type AriaInvalidSource string

const (
	// AriaInvalidField derives invalidity from the field's own Valid
	// flag. This is the default.
	AriaInvalidField AriaInvalidSource = "field"
	// AriaInvalidAll derives invalidity from AllValid, covering the
	// field and its descendants.
	AriaInvalidAll AriaInvalidSource = "all"
)

type describedByKind uint8

const (
	describedByNone describedByKind = iota
	describedByDescription
	describedByLiteral
)

// DescribedBy selects the extra aria-describedby token. The zero value
// contributes no token; DescribeWithDescription uses the metadata's
// DescriptionID; DescribeWith uses the given id verbatim.
type DescribedBy struct {
	kind describedByKind
	id   string
}

// DescribeWithDescription resolves the token from the metadata's
// DescriptionID at derivation time.
func DescribeWithDescription() DescribedBy {
	return DescribedBy{kind: describedByDescription}
}

// DescribeWith uses id as the describedby token verbatim.
func DescribeWith(id string) DescribedBy {
	return DescribedBy{kind: describedByLiteral, id: id}
}

func (d DescribedBy) token(descriptionID string) string {
	switch d.kind {
	case describedByDescription:
		return descriptionID
	case describedByLiteral:
		return d.id
	default:
		return ""
	}
}

// AriaOptions configures the aria attribute deriver.
type AriaOptions struct {
	// Disabled suppresses aria attribute derivation entirely.
	Disabled bool
	// Invalid selects the validity flag behind aria-invalid. The zero
	// value behaves as AriaInvalidField.
	Invalid AriaInvalidSource
	// DescribedBy adds an extra aria-describedby token alongside the
	// error id.
	DescribedBy DescribedBy
}

// Aria derives aria-invalid and aria-describedby from the given
// validity snapshot.
//
// aria-invalid is emitted only when true; an explicitly false value
// would survive caller merges and is deliberately never produced.
// aria-describedby lists the error id first while invalid so assistive
// tech announces the failure before any description.
func Aria(state fieldmeta.Validity, opts AriaOptions) Props {
	if opts.Disabled {
		return Props{}
	}

	invalid := !state.Valid
	if opts.Invalid == AriaInvalidAll {
		invalid = !state.AllValid
	}

	extra := opts.DescribedBy.token(state.DescriptionID)

	p := Props{}
	if invalid {
		p["aria-invalid"] = true
		if joined := strings.TrimSpace(state.ErrorID + " " + extra); joined != "" {
			p["aria-describedby"] = joined
		}
	} else if extra != "" {
		p["aria-describedby"] = extra
	}
	return Normalize(p)
}
