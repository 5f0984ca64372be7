package meta

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Query is one or more values of a single domain to match a column against.
// The constructors enforce that numeric and categorical values are never
// mixed within one query.
type Query struct {
	nums []float64
	strs []string
}

// Nums returns a numeric query.
func Nums(vals ...float64) Query { return Query{nums: vals} }

// Strs returns a categorical query.
func Strs(vals ...string) Query { return Query{strs: vals} }

// Kind returns the query's value domain.
func (q Query) Kind() Kind {
	if q.strs != nil {
		return KindString
	}
	return KindNumeric
}

// Match returns the mask of positions where col equals any of the query
// values (disjunction across values, exact equality per value). An unset
// column matches nothing. A domain disagreement between query and column
// is a TypeMismatchError.
func Match(col Column, q Query) (*roaring.Bitmap, error) {
	mask := roaring.New()

	switch col.Kind() {
	case KindUnset:
		return mask, nil
	case KindNumeric:
		if q.Kind() != KindNumeric {
			return nil, &TypeMismatchError{Have: KindNumeric, Want: q.Kind()}
		}
		vals, _ := col.Numbers()
		for i, v := range vals {
			for _, want := range q.nums {
				if v == want {
					mask.Add(uint32(i))
					break
				}
			}
		}
		return mask, nil
	case KindString:
		if q.Kind() != KindString {
			return nil, &TypeMismatchError{Have: KindString, Want: q.Kind()}
		}
		vals, _ := col.Strings()
		for i, v := range vals {
			for _, want := range q.strs {
				if v == want {
					mask.Add(uint32(i))
					break
				}
			}
		}
		return mask, nil
	default:
		return nil, &TypeMismatchError{Have: col.Kind(), Want: q.Kind()}
	}
}
