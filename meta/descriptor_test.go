package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDescriptors(t *testing.T) {
	tab := NewTable()
	tab.Set(FieldLabels, Strings([]string{"B", "A", "B", "A"}))
	tab.Set(FieldChunks, Numbers([]float64{2, 2, 1, 1}))
	tab.Set(FieldNames, Unset())

	desc, err := BuildDescriptors(tab, 4)
	require.NoError(t, err)

	labels := desc[FieldLabels]
	assert.Equal(t, []string{"A", "B"}, labels.UniqueStrs)
	assert.Equal(t, []int{1, 0, 1, 0}, labels.Inverse)
	assert.Equal(t, 2, labels.Count)

	chunks := desc[FieldChunks]
	assert.Equal(t, []float64{1, 2}, chunks.UniqueNums)
	assert.Equal(t, []int{1, 1, 0, 0}, chunks.Inverse)
	assert.Equal(t, 2, chunks.Count)

	// Unset fields have no descriptor
	_, ok := desc[FieldNames]
	assert.False(t, ok)
}

func TestBuildDescriptors_ShapeMismatch(t *testing.T) {
	tab := NewTable()
	tab.Set(FieldChunks, Numbers([]float64{1, 1, 2}))

	_, err := BuildDescriptors(tab, 4)
	require.Error(t, err)

	var sm *ShapeMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, FieldChunks, sm.Field)
	assert.Equal(t, 3, sm.Got)
	assert.Equal(t, 4, sm.Want)
}

func TestBuildDescriptors_DoesNotMutateTable(t *testing.T) {
	tab := NewTable()
	tab.Set(FieldOrder, Unset())

	_, err := BuildDescriptors(tab, 3)
	require.NoError(t, err)

	// The builder never fills fields on the caller's table
	col, _ := tab.Get(FieldOrder)
	assert.True(t, col.IsUnset())
}
