package meta

import (
	"slices"
)

// Descriptor is the derived summary of one metadata field: its sorted
// distinct values, a per-element index into them, and their count. It is
// recomputed whenever the owning table changes and never edited directly.
type Descriptor struct {
	// UniqueNums holds the sorted distinct values of a numeric field.
	UniqueNums []float64
	// UniqueStrs holds the sorted distinct values of a categorical field.
	UniqueStrs []string
	// Inverse maps each element to its position in the unique values.
	Inverse []int
	// Count is the number of distinct values.
	Count int
}

// Descriptors maps field names to their descriptors. Unset fields and
// nested tables have no entry.
type Descriptors map[string]Descriptor

// BuildDescriptors validates t against axis length n and derives a
// descriptor for every set flat field. The table itself is not modified.
func BuildDescriptors(t *Table, n int) (Descriptors, error) {
	if err := t.Validate(n); err != nil {
		return nil, err
	}

	desc := make(Descriptors, t.NumFields())
	for _, name := range t.names {
		col := t.cols[name]
		switch col.Kind() {
		case KindNumeric:
			nums, _ := col.Numbers()
			desc[name] = describeNumbers(nums)
		case KindString:
			strs, _ := col.Strings()
			desc[name] = describeStrings(strs)
		}
	}
	return desc, nil
}

func describeNumbers(vals []float64) Descriptor {
	unique := make([]float64, len(vals))
	copy(unique, vals)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	at := make(map[float64]int, len(unique))
	for i, v := range unique {
		at[v] = i
	}
	inverse := make([]int, len(vals))
	for i, v := range vals {
		inverse[i] = at[v]
	}
	return Descriptor{UniqueNums: unique, Inverse: inverse, Count: len(unique)}
}

func describeStrings(vals []string) Descriptor {
	unique := make([]string, len(vals))
	copy(unique, vals)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	at := make(map[string]int, len(unique))
	for i, v := range unique {
		at[v] = i
	}
	inverse := make([]int, len(vals))
	for i, v := range vals {
		inverse[i] = at[v]
	}
	return Descriptor{UniqueStrs: unique, Inverse: inverse, Count: len(unique)}
}
