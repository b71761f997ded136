// Package props derives ready-to-render HTML form-control attribute
// records from field metadata owned by an external form-state engine.
//
// Every composer is a pure function over its arguments: it reads a
// metadata snapshot, computes accessibility, constraint, and default
// value/checked attributes, and returns a fresh normalized Props map
// containing no absent values. Callers may override any key by merging
// their own attributes afterwards; because absent keys are stripped
// before the record is returned, later-wins merging never resurrects
// an attribute the derivation chose to omit.
package props
