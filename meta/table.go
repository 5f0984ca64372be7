package meta

// Names of the mandatory fields every axis table carries. They are always
// present, possibly unset.
const (
	// FieldLabels is the categorical condition label per element.
	FieldLabels = "labels"
	// FieldChunks is the numeric grouping id per element.
	FieldChunks = "chunks"
	// FieldNames is the categorical name per element.
	FieldNames = "names"
	// FieldOrder is the numeric acquisition order per element. It is
	// auto-filled with the identity sequence 1..n when left unset.
	FieldOrder = "order"
)

// MandatoryFields lists the mandatory field names in their canonical order.
var MandatoryFields = []string{FieldLabels, FieldChunks, FieldNames, FieldOrder}

// Table is an ordered, named collection of columns describing one axis of a
// data matrix. Every set column must have the axis length; unset columns are
// declared placeholders exempt from that rule.
type Table struct {
	names []string
	cols  map[string]Column
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{cols: make(map[string]Column)}
}

// Set stores col under name, preserving first-insertion order for new names.
func (t *Table) Set(name string, col Column) {
	if _, ok := t.cols[name]; !ok {
		t.names = append(t.names, name)
	}
	t.cols[name] = col
}

// Get returns the column stored under name.
func (t *Table) Get(name string) (Column, bool) {
	c, ok := t.cols[name]
	return c, ok
}

// Has reports whether a column is declared under name.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Names returns the field names in insertion order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// NumFields returns the number of declared fields.
func (t *Table) NumFields() int { return len(t.names) }

// Clone creates a deep copy of the table.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	clone := &Table{
		names: make([]string, len(t.names)),
		cols:  make(map[string]Column, len(t.cols)),
	}
	copy(clone.names, t.names)
	for name, col := range t.cols {
		clone.cols[name] = col.Clone()
	}
	return clone
}

// EnsureMandatory declares any missing mandatory field as unset.
func (t *Table) EnsureMandatory() {
	for _, name := range MandatoryFields {
		if !t.Has(name) {
			t.Set(name, Unset())
		}
	}
}

// Slice returns a new table with every set column sliced by ix. Unset
// columns are carried through unchanged; a declared-but-unused field never
// becomes set through indexing. The receiver is left unmodified.
func (t *Table) Slice(ix Index) *Table {
	out := &Table{
		names: make([]string, len(t.names)),
		cols:  make(map[string]Column, len(t.cols)),
	}
	copy(out.names, t.names)
	for name, col := range t.cols {
		out.cols[name] = col.slice(ix)
	}
	return out
}

// Validate checks that every set column has length n, recursing into nested
// tables. The first offending field is reported as a ShapeMismatchError.
func (t *Table) Validate(n int) error {
	for _, name := range t.names {
		col := t.cols[name]
		switch col.Kind() {
		case KindUnset:
			continue
		case KindTable:
			nested, _ := col.Table()
			if err := nested.Validate(n); err != nil {
				return err
			}
		default:
			if col.Len() != n {
				return &ShapeMismatchError{Field: name, Want: n, Got: col.Len()}
			}
		}
	}
	return nil
}
