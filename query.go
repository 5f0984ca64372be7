package sampleframe

import (
	"context"
	"errors"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/sampleframe/meta"
)

// Criteria maps field names to the values they must match. Fields combine
// conjunctively; multiple values for one field are disjunctive.
type Criteria map[string]meta.Query

// Fields returns the criterion field names.
func (c Criteria) Fields() []string {
	fields := make([]string, 0, len(c))
	for name := range c {
		fields = append(fields, name)
	}
	return fields
}

// FindByMeta resolves criteria into one mask per axis. Each mask starts
// all-true; every criterion whose field lives on an axis intersects that
// axis's mask with the field's match result. A field found on neither axis
// is a FieldNotFoundError; a value domain disagreement is a
// TypeMismatchError naming the field.
func (d *Dataset) FindByMeta(c Criteria) (sampleMask, featureMask *roaring.Bitmap, err error) {
	ns, nf := d.data.Dims()

	sampleMask = roaring.New()
	sampleMask.AddRange(0, uint64(ns))
	featureMask = roaring.New()
	featureMask.AddRange(0, uint64(nf))

	for name, q := range c {
		found := false

		// A declared-but-unset field satisfies the existence check without
		// constraining its axis: the mandatory fields are declared on both
		// tables, and an unset one must not wipe the other axis.
		if col, ok := d.samples.Get(name); ok {
			found = true
			if !col.IsUnset() {
				m, err := meta.Match(col, q)
				if err != nil {
					return nil, nil, tagField(err, name)
				}
				sampleMask.And(m)
			}
		}
		if col, ok := d.features.Get(name); ok {
			found = true
			if !col.IsUnset() {
				m, err := meta.Match(col, q)
				if err != nil {
					return nil, nil, tagField(err, name)
				}
				featureMask.And(m)
			}
		}

		if !found {
			return nil, nil, &FieldNotFoundError{Field: name}
		}
	}
	return sampleMask, featureMask, nil
}

// SelectByMeta returns a new Dataset containing exactly the samples and
// features matching the criteria. Both axes are applied in one step
// through the indexing primitive.
func (d *Dataset) SelectByMeta(c Criteria) (*Dataset, error) {
	ctx := context.Background()

	sampleMask, featureMask, err := d.FindByMeta(c)
	if err != nil {
		d.logger.LogSelect(ctx, "select", c.Fields(), 0, 0, err)
		return nil, err
	}

	out, err := d.Get(meta.Mask(sampleMask), meta.Mask(featureMask))
	if err != nil {
		d.logger.LogSelect(ctx, "select", c.Fields(), 0, 0, err)
		return nil, err
	}

	d.logger.LogSelect(ctx, "select", c.Fields(), out.NSamples(), out.NFeatures(), nil)
	return out, nil
}

// RemoveByMeta returns a new Dataset with the matching samples and features
// removed. An axis whose mask the criteria left all-true is kept intact
// rather than inverted, so removal never silently drops an entire
// unconstrained axis.
func (d *Dataset) RemoveByMeta(c Criteria) (*Dataset, error) {
	ctx := context.Background()
	ns, nf := d.data.Dims()

	sampleMask, featureMask, err := d.FindByMeta(c)
	if err != nil {
		d.logger.LogSelect(ctx, "remove", c.Fields(), 0, 0, err)
		return nil, err
	}

	if sampleMask.GetCardinality() != uint64(ns) {
		sampleMask.Flip(0, uint64(ns))
	}
	if featureMask.GetCardinality() != uint64(nf) {
		featureMask.Flip(0, uint64(nf))
	}

	out, err := d.Get(meta.Mask(sampleMask), meta.Mask(featureMask))
	if err != nil {
		d.logger.LogSelect(ctx, "remove", c.Fields(), 0, 0, err)
		return nil, err
	}

	d.logger.LogSelect(ctx, "remove", c.Fields(), out.NSamples(), out.NFeatures(), nil)
	return out, nil
}

func tagField(err error, name string) error {
	var tm *meta.TypeMismatchError
	if errors.As(err, &tm) {
		tm.Field = name
	}
	return err
}
