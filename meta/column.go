package meta

// Kind identifies the concrete type stored in a Column.
type Kind uint8

const (
	// KindUnset marks a column that is declared but carries no values.
	// This is distinct from a numeric or categorical column of length zero.
	KindUnset Kind = iota
	// KindNumeric represents a float64 column.
	KindNumeric
	// KindString represents a categorical (string) column.
	KindString
	// KindTable represents a nested metadata table.
	KindTable
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "Unset"
	case KindNumeric:
		return "Numeric"
	case KindString:
		return "String"
	case KindTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Column is one named field of a Table: a typed array aligned with an axis
// of the data matrix, or an explicit unset placeholder.
//
// The representation is a small tagged union to keep matching and slicing
// fast and predictable: no reflection and no fmt-based stringification.
type Column struct {
	kind Kind
	nums []float64
	strs []string
	tab  *Table
}

// Unset returns the unset placeholder column.
func Unset() Column { return Column{kind: KindUnset} }

// Numbers returns a numeric column over vals. The slice is not copied;
// the caller hands over ownership.
func Numbers(vals []float64) Column {
	return Column{kind: KindNumeric, nums: vals}
}

// Strings returns a categorical column over vals. The slice is not copied;
// the caller hands over ownership.
func Strings(vals []string) Column {
	return Column{kind: KindString, strs: vals}
}

// Nested returns a column holding a nested table.
func Nested(t *Table) Column {
	return Column{kind: KindTable, tab: t}
}

// Kind returns the column's kind.
func (c Column) Kind() Kind { return c.kind }

// IsUnset reports whether the column is the unset placeholder.
func (c Column) IsUnset() bool { return c.kind == KindUnset }

// Len returns the number of elements in the column. Unset columns and
// nested tables have length zero.
func (c Column) Len() int {
	switch c.kind {
	case KindNumeric:
		return len(c.nums)
	case KindString:
		return len(c.strs)
	default:
		return 0
	}
}

// Numbers returns the numeric values if Kind is KindNumeric.
func (c Column) Numbers() ([]float64, bool) {
	if c.kind != KindNumeric {
		return nil, false
	}
	return c.nums, true
}

// Strings returns the categorical values if Kind is KindString.
func (c Column) Strings() ([]string, bool) {
	if c.kind != KindString {
		return nil, false
	}
	return c.strs, true
}

// Table returns the nested table if Kind is KindTable.
func (c Column) Table() (*Table, bool) {
	if c.kind != KindTable {
		return nil, false
	}
	return c.tab, true
}

// Clone creates a deep copy of the column.
func (c Column) Clone() Column {
	switch c.kind {
	case KindNumeric:
		nums := make([]float64, len(c.nums))
		copy(nums, c.nums)
		return Column{kind: KindNumeric, nums: nums}
	case KindString:
		strs := make([]string, len(c.strs))
		copy(strs, c.strs)
		return Column{kind: KindString, strs: strs}
	case KindTable:
		return Column{kind: KindTable, tab: c.tab.Clone()}
	default:
		return c
	}
}

// slice returns a new column holding the elements selected by ix.
// Unset columns pass through unchanged; nested tables are sliced
// field by field with the same index.
func (c Column) slice(ix Index) Column {
	switch c.kind {
	case KindNumeric:
		pos := ix.Resolve(len(c.nums))
		nums := make([]float64, len(pos))
		for i, p := range pos {
			nums[i] = c.nums[p]
		}
		return Column{kind: KindNumeric, nums: nums}
	case KindString:
		pos := ix.Resolve(len(c.strs))
		strs := make([]string, len(pos))
		for i, p := range pos {
			strs[i] = c.strs[p]
		}
		return Column{kind: KindString, strs: strs}
	case KindTable:
		return Column{kind: KindTable, tab: c.tab.Slice(ix)}
	default:
		return c
	}
}

// concat returns base values followed by incoming values. An unset side
// contributes nothing; two unset sides stay unset. Kind disagreement
// between two set columns is a type mismatch.
func (c Column) concat(other Column) (Column, error) {
	if c.kind == KindUnset && other.kind == KindUnset {
		return Unset(), nil
	}
	if c.kind == KindUnset {
		return other.Clone(), nil
	}
	if other.kind == KindUnset {
		return c.Clone(), nil
	}
	if c.kind != other.kind {
		return Column{}, &TypeMismatchError{Have: c.kind, Want: other.kind}
	}

	switch c.kind {
	case KindNumeric:
		nums := make([]float64, 0, len(c.nums)+len(other.nums))
		nums = append(nums, c.nums...)
		nums = append(nums, other.nums...)
		return Column{kind: KindNumeric, nums: nums}, nil
	case KindString:
		strs := make([]string, 0, len(c.strs)+len(other.strs))
		strs = append(strs, c.strs...)
		strs = append(strs, other.strs...)
		return Column{kind: KindString, strs: strs}, nil
	default:
		// Nested tables are merged by Append, not concatenated here.
		return Column{}, &TypeMismatchError{Have: c.kind, Want: other.kind}
	}
}
