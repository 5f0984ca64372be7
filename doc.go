// Package sampleframe provides a metadata-synchronized container for
// two-dimensional scientific measurement data.
//
// A Dataset holds a data matrix (samples × features) together with one
// metadata table per axis. Every operation that slices, filters or
// concatenates the data keeps the metadata in register with it: selecting
// rows slices every sample field, stacking two datasets concatenates every
// shared sample field, and per-field descriptors (unique values, inverse
// indices, counts) are rebuilt whenever metadata changes.
//
// # Quick Start
//
//	data := mat.NewDense(4, 3, nil)
//	samples := meta.NewTable()
//	samples.Set(meta.FieldChunks, meta.Numbers([]float64{1, 1, 2, 2}))
//	samples.Set(meta.FieldLabels, meta.Strings([]string{"A", "B", "A", "B"}))
//
//	ds, _ := sampleframe.New(data, sampleframe.WithSampleMeta(samples))
//
//	run1, _ := ds.SelectByMeta(sampleframe.Criteria{"chunks": meta.Nums(1)})
//	rest, _ := ds.RemoveByMeta(sampleframe.Criteria{"labels": meta.Strs("A")})
//
// # Query Semantics
//
// A Criteria set combines conjunctively across fields: each named field
// constrains the axis it lives on, and the resulting masks are intersected.
// Multiple values for one field are disjunctive: an element matches if it
// equals any of them. Naming a field that exists on neither axis is an
// error, not a silent no-op.
//
// # Ownership
//
// Every derivation (indexing, selection, removal, concatenation) yields a
// fresh, independently owned Dataset; inputs and outputs never share
// storage. The only in-place operations are the chunk-grouped filters
// (DetrendByChunks, ZScoreByChunks, SmoothByChunks), which mutate the data
// matrix alone and leave metadata and descriptors untouched.
package sampleframe
