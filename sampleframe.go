package sampleframe

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/sampleframe/meta"
)

// Dataset is a two-dimensional measurement container: a data matrix of
// nsamples × nfeatures paired with one metadata table per axis and the
// derived per-field descriptors.
//
// Invariants held by every live Dataset:
//   - every set sample field has length nsamples, every set feature field
//     has length nfeatures
//   - the mandatory fields (labels, chunks, names, order) are declared on
//     both tables, and order is never unset after construction
//   - descriptors always reflect the current table contents
//
// All derivations (Get, SelectByMeta, RemoveByMeta, ConcatSamples) produce
// fresh, independently owned datasets.
type Dataset struct {
	data     *mat.Dense
	samples  *meta.Table
	features *meta.Table

	sampleDesc  meta.Descriptors
	featureDesc meta.Descriptors

	factory Factory
	logger  *Logger
}

// New creates a Dataset from a data matrix and optional per-axis metadata.
// Missing mandatory fields are declared unset, an unset order field is
// filled with the identity sequence 1..n, and descriptors are built for
// both axes. A metadata field whose length disagrees with its axis is a
// ShapeMismatchError.
//
// The Dataset takes ownership of data; metadata tables are cloned.
func New(data *mat.Dense, optFns ...Option) (*Dataset, error) {
	if data == nil {
		return nil, ErrNoData
	}

	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	d := &Dataset{
		data:     data,
		samples:  opts.samples.Clone(),
		features: opts.features.Clone(),
		factory:  opts.factory,
		logger:   opts.logger,
	}
	if d.samples == nil {
		d.samples = meta.NewTable()
	}
	if d.features == nil {
		d.features = meta.NewTable()
	}
	if d.factory == nil {
		d.factory = defaultFactory{}
	}

	if err := d.checkMeta(); err != nil {
		return nil, err
	}
	return d, nil
}

// checkMeta enforces the construction invariants: mandatory fields declared,
// order filled, lengths validated, descriptors rebuilt.
func (d *Dataset) checkMeta() error {
	ns, nf := d.data.Dims()

	d.samples.EnsureMandatory()
	d.features.EnsureMandatory()
	fillOrder(d.samples, ns)
	fillOrder(d.features, nf)

	var err error
	if d.sampleDesc, err = meta.BuildDescriptors(d.samples, ns); err != nil {
		return err
	}
	if d.featureDesc, err = meta.BuildDescriptors(d.features, nf); err != nil {
		return err
	}
	return nil
}

func fillOrder(t *meta.Table, n int) {
	if col, _ := t.Get(meta.FieldOrder); col.IsUnset() {
		order := make([]float64, n)
		for i := range order {
			order[i] = float64(i + 1)
		}
		t.Set(meta.FieldOrder, meta.Numbers(order))
	}
}

// NSamples returns the number of samples (rows).
func (d *Dataset) NSamples() int {
	ns, _ := d.data.Dims()
	return ns
}

// NFeatures returns the number of features (columns).
func (d *Dataset) NFeatures() int {
	_, nf := d.data.Dims()
	return nf
}

// Data returns the data matrix. The matrix is owned by the Dataset; callers
// must not resize it. The chunk-grouped in-place filters mutate it directly.
func (d *Dataset) Data() *mat.Dense { return d.data }

// At returns the value at sample i, feature j.
func (d *Dataset) At(i, j int) float64 { return d.data.At(i, j) }

// SampleMeta returns a copy of the sample metadata table. Mutations go
// through SetSampleAttr so descriptors are never stale.
func (d *Dataset) SampleMeta() *meta.Table { return d.samples.Clone() }

// FeatureMeta returns a copy of the feature metadata table. Mutations go
// through SetFeatureAttr so descriptors are never stale.
func (d *Dataset) FeatureMeta() *meta.Table { return d.features.Clone() }

// SampleAttr returns the sample metadata field stored under name.
func (d *Dataset) SampleAttr(name string) (meta.Column, bool) {
	return d.samples.Get(name)
}

// FeatureAttr returns the feature metadata field stored under name.
func (d *Dataset) FeatureAttr(name string) (meta.Column, bool) {
	return d.features.Get(name)
}

// SampleFields returns the declared sample field names in order.
func (d *Dataset) SampleFields() []string { return d.samples.Names() }

// FeatureFields returns the declared feature field names in order.
func (d *Dataset) FeatureFields() []string { return d.features.Names() }

// SampleDescriptor returns the descriptor of a sample field. Unset fields
// and nested tables have none.
func (d *Dataset) SampleDescriptor(name string) (meta.Descriptor, bool) {
	desc, ok := d.sampleDesc[name]
	return desc, ok
}

// FeatureDescriptor returns the descriptor of a feature field.
func (d *Dataset) FeatureDescriptor(name string) (meta.Descriptor, bool) {
	desc, ok := d.featureDesc[name]
	return desc, ok
}

// SetSampleAttr stores col as a sample metadata field and rebuilds the
// sample descriptors. On any violation the Dataset is left unchanged.
func (d *Dataset) SetSampleAttr(name string, col meta.Column) error {
	next := d.samples.Clone()
	next.Set(name, col)
	desc, err := meta.BuildDescriptors(next, d.NSamples())
	if err != nil {
		return err
	}
	d.samples, d.sampleDesc = next, desc
	return nil
}

// SetFeatureAttr stores col as a feature metadata field and rebuilds the
// feature descriptors. On any violation the Dataset is left unchanged.
func (d *Dataset) SetFeatureAttr(name string, col meta.Column) error {
	next := d.features.Clone()
	next.Set(name, col)
	desc, err := meta.BuildDescriptors(next, d.NFeatures())
	if err != nil {
		return err
	}
	d.features, d.featureDesc = next, desc
	return nil
}

// Get slices the Dataset to the requested submatrix and slices both
// metadata tables with the same indices, building the result through the
// factory. It is the single primitive underlying SelectByMeta and
// RemoveByMeta.
func (d *Dataset) Get(rows, cols meta.Index) (*Dataset, error) {
	ns, nf := d.data.Dims()

	rpos := rows.Resolve(ns)
	if err := checkBounds(rpos, ns, "sample"); err != nil {
		return nil, err
	}
	cpos := cols.Resolve(nf)
	if err := checkBounds(cpos, nf, "feature"); err != nil {
		return nil, err
	}

	out := mat.NewDense(len(rpos), len(cpos), nil)
	for i, r := range rpos {
		for j, c := range cpos {
			out.Set(i, j, d.data.At(r, c))
		}
	}

	return d.factory.FromParts(d, out, d.samples.Slice(rows), d.features.Slice(cols))
}

// GetSamples slices the sample axis only; the one-index form implicitly
// means "all features".
func (d *Dataset) GetSamples(rows meta.Index) (*Dataset, error) {
	return d.Get(rows, meta.All())
}

func checkBounds(pos []int, n int, axis string) error {
	for _, p := range pos {
		if p < 0 || p >= n {
			return fmt.Errorf("%w: %s position %d, axis length %d", ErrIndexOutOfRange, axis, p, n)
		}
	}
	return nil
}
