// Package meta provides axis-aligned metadata tables for sample/feature data.
//
// A Table is an ordered collection of named columns describing one axis of a
// data matrix. Columns are typed (numeric, categorical, nested table) and may
// be in an explicit unset state, meaning "declared but unused". The package
// also provides the derived per-field descriptors (unique values, inverse
// index, counts), value matching against roaring bitmap masks, axis slicing
// and table merging that keep metadata in register with the data.
package meta
