package sampleframe

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/sampleframe/meta"
)

// Factory builds datasets derived from an existing one. Concrete variants
// implement it so that indexing and concatenation construct the variant
// through its own constructor, letting it rebuild any variant-specific
// derived fields from the operands instead of having generic code paste
// arrays together.
type Factory interface {
	// FromParts builds a dataset of the parent's variant from already
	// sliced data and metadata tables.
	FromParts(parent *Dataset, data *mat.Dense, samples, features *meta.Table) (*Dataset, error)

	// FromOperands builds a dataset of the first operand's variant by
	// stacking all operands along the sample axis.
	FromOperands(operands []*Dataset) (*Dataset, error)
}

// defaultFactory is the base-variant factory: plain construction, sample
// metadata merged field-wise, feature metadata taken from the first operand.
type defaultFactory struct{}

func (defaultFactory) FromParts(parent *Dataset, data *mat.Dense, samples, features *meta.Table) (*Dataset, error) {
	return New(data,
		WithSampleMeta(samples),
		WithFeatureMeta(features),
		WithLogger(parent.logger),
		WithFactory(parent.factory),
	)
}

func (defaultFactory) FromOperands(operands []*Dataset) (*Dataset, error) {
	base := operands[0]
	nf := base.NFeatures()

	rows := 0
	for _, o := range operands {
		rows += o.NSamples()
	}

	data := mat.NewDense(rows, nf, nil)
	r := 0
	for _, o := range operands {
		ns := o.NSamples()
		for i := 0; i < ns; i++ {
			data.SetRow(r+i, o.data.RawRowView(i))
		}
		r += ns
	}

	samples := base.samples
	for _, o := range operands[1:] {
		merged, err := meta.Append(samples, o.samples)
		if err != nil {
			return nil, err
		}
		samples = merged
	}

	return New(data,
		WithSampleMeta(samples),
		WithFeatureMeta(base.features),
		WithLogger(base.logger),
		WithFactory(base.factory),
	)
}

// ConcatSamples stacks d and the others row-wise along the sample axis,
// dispatching to the factory with all operands. Sample metadata is combined
// field by field (nested tables recursively); feature metadata is taken
// from the receiver. Operand feature counts must agree.
func (d *Dataset) ConcatSamples(others ...*Dataset) (*Dataset, error) {
	ctx := context.Background()
	nf := d.NFeatures()

	for _, o := range others {
		if o.NFeatures() != nf {
			err := &ShapeMismatchError{Field: "data", Want: nf, Got: o.NFeatures()}
			d.logger.LogConcat(ctx, len(others)+1, 0, err)
			return nil, err
		}
	}

	operands := make([]*Dataset, 0, len(others)+1)
	operands = append(operands, d)
	operands = append(operands, others...)

	out, err := d.factory.FromOperands(operands)
	if err != nil {
		d.logger.LogConcat(ctx, len(operands), 0, err)
		return nil, err
	}

	d.logger.LogConcat(ctx, len(operands), out.NSamples(), nil)
	return out, nil
}

// ConcatFeatures is not supported: two containers' feature axes are not
// guaranteed to describe the same physical quantities, so feature-axis
// identity is never merged automatically.
func (d *Dataset) ConcatFeatures(others ...*Dataset) (*Dataset, error) {
	return nil, &UnsupportedOperationError{Op: "feature-axis concatenation"}
}
