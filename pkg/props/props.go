package props

// Props is a flat attribute record keyed by attribute name. Values are
// primitives (string, bool, int, float) except for defaultValue on
// multi-selects, which holds a []string, and onSubmit, which carries an
// opaque engine handle.
type Props map[string]any

// Normalize removes every key whose value is absent (nil) so the record
// is safe to merge with caller-supplied attributes. The map is filtered
// in place and returned for chaining. Normalize is idempotent.
func Normalize(p Props) Props {
	for key, value := range p {
		if value == nil {
			delete(p, key)
		}
	}
	return p
}

// Merge copies records into a fresh Props map, later entries winning on
// key collisions. Absent values in overrides are dropped rather than
// shadowing earlier entries.
func Merge(records ...Props) Props {
	out := make(Props)
	for _, record := range records {
		for key, value := range record {
			if value == nil {
				continue
			}
			out[key] = value
		}
	}
	return out
}
