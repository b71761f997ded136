// Package fieldmeta defines the data contracts consumed from the
// external form-state engine. The engine owns these records; this
// package only describes their shape so the props composers can derive
// attributes from them without reaching back into engine internals.
package fieldmeta
