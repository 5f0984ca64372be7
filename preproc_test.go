package sampleframe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/sampleframe/meta"
)

func newChunkedColumn(t *testing.T, vals []float64, chunks []float64) *Dataset {
	t.Helper()

	data := mat.NewDense(len(vals), 1, vals)
	samples := meta.NewTable()
	samples.Set(meta.FieldChunks, meta.Numbers(chunks))

	ds, err := New(data, WithSampleMeta(samples))
	require.NoError(t, err)
	return ds
}

func TestDetrendByChunks(t *testing.T) {
	// Each chunk is perfectly linear, so detrending zeroes it out.
	ds := newChunkedColumn(t, []float64{1, 3, 5, 9}, []float64{1, 1, 2, 2})

	require.NoError(t, ds.DetrendByChunks(context.Background()))

	for i := 0; i < 4; i++ {
		assert.InDelta(t, 0, ds.At(i, 0), 1e-12, "row %d", i)
	}
}

func TestDetrendByChunks_ScopedToChunk(t *testing.T) {
	// A step between chunks is not a trend within either chunk.
	ds := newChunkedColumn(t, []float64{1, 1, 5, 5}, []float64{1, 1, 2, 2})

	require.NoError(t, ds.DetrendByChunks(context.Background()))

	for i := 0; i < 4; i++ {
		assert.InDelta(t, 0, ds.At(i, 0), 1e-12, "row %d", i)
	}
}

func TestZScoreByChunks(t *testing.T) {
	ds := newChunkedColumn(t, []float64{1, 3, 10, 30}, []float64{1, 1, 2, 2})

	require.NoError(t, ds.ZScoreByChunks(context.Background()))

	// Each chunk centered and scaled independently (sample standard deviation)
	assert.InDelta(t, -0.70710678, ds.At(0, 0), 1e-6)
	assert.InDelta(t, 0.70710678, ds.At(1, 0), 1e-6)
	assert.InDelta(t, -0.70710678, ds.At(2, 0), 1e-6)
	assert.InDelta(t, 0.70710678, ds.At(3, 0), 1e-6)
}

func TestZScoreByChunks_ConstantFeatureCenteredOnly(t *testing.T) {
	ds := newChunkedColumn(t, []float64{4, 4, 4}, []float64{1, 1, 1})

	require.NoError(t, ds.ZScoreByChunks(context.Background()))

	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, ds.At(i, 0))
	}
}

func TestSmoothByChunks(t *testing.T) {
	ds := newChunkedColumn(t, []float64{1, 2, 3, 4}, []float64{1, 1, 1, 1})

	require.NoError(t, ds.SmoothByChunks(context.Background(), 3))

	// Boxcar of width 3, window clipped at the chunk edges
	assert.InDelta(t, 1.5, ds.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, ds.At(1, 0), 1e-12)
	assert.InDelta(t, 3.0, ds.At(2, 0), 1e-12)
	assert.InDelta(t, 3.5, ds.At(3, 0), 1e-12)
}

func TestSmoothByChunks_DoesNotLeakAcrossChunks(t *testing.T) {
	ds := newChunkedColumn(t, []float64{1, 1, 9, 9}, []float64{1, 1, 2, 2})

	require.NoError(t, ds.SmoothByChunks(context.Background(), 3))

	// Values in chunk 1 never see chunk 2's samples
	assert.Equal(t, 1.0, ds.At(0, 0))
	assert.Equal(t, 1.0, ds.At(1, 0))
	assert.Equal(t, 9.0, ds.At(2, 0))
	assert.Equal(t, 9.0, ds.At(3, 0))
}

func TestSmoothByChunks_InvalidWidth(t *testing.T) {
	ds := newChunkedColumn(t, []float64{1, 2}, []float64{1, 1})

	err := ds.SmoothByChunks(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidWidth)
}

func TestApplyByChunks_Canceled(t *testing.T) {
	ds := newChunkedColumn(t, []float64{1, 2, 3, 4}, []float64{1, 1, 2, 2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ds.ZScoreByChunks(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPreproc_MetadataUntouched(t *testing.T) {
	ds := newChunkedColumn(t, []float64{1, 3, 5, 9}, []float64{1, 1, 2, 2})

	before, _ := ds.SampleAttr(meta.FieldChunks)
	require.NoError(t, ds.DetrendByChunks(context.Background()))
	after, _ := ds.SampleAttr(meta.FieldChunks)

	assert.Equal(t, before, after)
	desc, ok := ds.SampleDescriptor(meta.FieldChunks)
	require.True(t, ok)
	assert.Equal(t, 2, desc.Count)
}

func TestChunkGroups_UnsetChunksSingleGroup(t *testing.T) {
	ds, err := New(mat.NewDense(3, 1, []float64{1, 2, 3}))
	require.NoError(t, err)

	// With chunks unset the whole axis is one group
	require.NoError(t, ds.SmoothByChunks(context.Background(), 3))
	assert.InDelta(t, 1.5, ds.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, ds.At(1, 0), 1e-12)
	assert.InDelta(t, 2.5, ds.At(2, 0), 1e-12)
}
