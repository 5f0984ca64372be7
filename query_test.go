package sampleframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sampleframe/meta"
)

func TestFindByMeta_Masks(t *testing.T) {
	ds := newTestDataset(t)

	sampleMask, featureMask, err := ds.FindByMeta(Criteria{"chunks": meta.Nums(1)})
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 1}, sampleMask.ToArray())
	// Features are unconstrained: mask stays all-true
	assert.Equal(t, uint64(3), featureMask.GetCardinality())
}

func TestFindByMeta_ConjunctionAcrossFields(t *testing.T) {
	ds := newTestDataset(t)

	sampleMask, _, err := ds.FindByMeta(Criteria{
		"chunks": meta.Nums(1),
		"labels": meta.Strs("A"),
	})
	require.NoError(t, err)

	// chunks==1 selects {0,1}; labels==A selects {0,2}; AND -> {0}
	assert.Equal(t, []uint32{0}, sampleMask.ToArray())
}

func TestFindByMeta_DisjunctionWithinField(t *testing.T) {
	ds := newTestDataset(t)

	sampleMask, _, err := ds.FindByMeta(Criteria{"chunks": meta.Nums(1, 2)})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), sampleMask.GetCardinality())
}

func TestFindByMeta_FieldNotFound(t *testing.T) {
	ds := newTestDataset(t)

	_, _, err := ds.FindByMeta(Criteria{"lables": meta.Strs("A")})
	var fnf *FieldNotFoundError
	require.ErrorAs(t, err, &fnf)
	assert.Equal(t, "lables", fnf.Field)
}

func TestFindByMeta_TypeMismatchNamesField(t *testing.T) {
	ds := newTestDataset(t)

	_, _, err := ds.FindByMeta(Criteria{"labels": meta.Nums(1)})
	var tm *TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, "labels", tm.Field)
}

func TestSelectByMeta(t *testing.T) {
	ds := newTestDataset(t)

	out, err := ds.SelectByMeta(Criteria{"chunks": meta.Nums(1)})
	require.NoError(t, err)

	assert.Equal(t, 2, out.NSamples())
	assert.Equal(t, 3, out.NFeatures())
	chunks, _ := out.SampleAttr(meta.FieldChunks)
	nums, _ := chunks.Numbers()
	assert.Equal(t, []float64{1, 1}, nums)

	out, err = ds.SelectByMeta(Criteria{"labels": meta.Strs("A")})
	require.NoError(t, err)
	assert.Equal(t, 2, out.NSamples())
	// Rows 0 and 2 of the original data
	assert.Equal(t, 0.0, out.At(0, 0))
	assert.Equal(t, 20.0, out.At(1, 0))
}

func TestRemoveByMeta(t *testing.T) {
	ds := newTestDataset(t)

	out, err := ds.RemoveByMeta(Criteria{"labels": meta.Strs("A")})
	require.NoError(t, err)

	assert.Equal(t, 2, out.NSamples())
	labels, _ := out.SampleAttr(meta.FieldLabels)
	strs, _ := labels.Strings()
	assert.Equal(t, []string{"B", "B"}, strs)
	// Rows 1 and 3 of the original data
	assert.Equal(t, 10.0, out.At(0, 0))
	assert.Equal(t, 30.0, out.At(1, 0))
}

func TestRemoveByMeta_UnconstrainedAxisKeptIntact(t *testing.T) {
	ds := newTestDataset(t)

	// The criterion only constrains the sample axis; removal must leave
	// the feature axis fully intact instead of inverting its all-true mask.
	out, err := ds.RemoveByMeta(Criteria{"chunks": meta.Nums(1)})
	require.NoError(t, err)

	assert.Equal(t, 2, out.NSamples())
	assert.Equal(t, 3, out.NFeatures())
}

func TestSelectRemove_Complementarity(t *testing.T) {
	ds := newTestDataset(t)
	c := Criteria{"labels": meta.Strs("A")}

	selected, err := ds.SelectByMeta(c)
	require.NoError(t, err)
	removed, err := ds.RemoveByMeta(c)
	require.NoError(t, err)

	// Disjoint, exhaustive partition of the sample axis
	assert.Equal(t, ds.NSamples(), selected.NSamples()+removed.NSamples())

	selOrder, _ := selected.SampleAttr(meta.FieldOrder)
	remOrder, _ := removed.SampleAttr(meta.FieldOrder)
	selNums, _ := selOrder.Numbers()
	remNums, _ := remOrder.Numbers()

	seen := make(map[float64]bool)
	for _, v := range selNums {
		seen[v] = true
	}
	for _, v := range remNums {
		assert.False(t, seen[v], "order %v selected twice", v)
		seen[v] = true
	}
	assert.Len(t, seen, ds.NSamples())
}

func TestSelectByMeta_FeatureAxis(t *testing.T) {
	data := newTestDataset(t)

	features := meta.NewTable()
	features.Set(meta.FieldNames, meta.Strings([]string{"c1", "c2", "c3"}))
	ds, err := New(data.Data(), WithSampleMeta(data.SampleMeta()), WithFeatureMeta(features))
	require.NoError(t, err)

	out, err := ds.SelectByMeta(Criteria{"names": meta.Strs("c2")})
	require.NoError(t, err)

	// Feature axis constrained, sample axis untouched
	assert.Equal(t, 4, out.NSamples())
	assert.Equal(t, 1, out.NFeatures())
	assert.Equal(t, 1.0, out.At(0, 0))
}
