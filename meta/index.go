package meta

import (
	"github.com/RoaringBitmap/roaring/v2"
)

type indexKind uint8

const (
	indexAll indexKind = iota
	indexMask
	indexPositions
)

// Index selects a subset of positions along one axis. It is either the
// identity over the full axis, a roaring bitmap mask of selected positions,
// or an explicit position list (which may reorder and repeat).
type Index struct {
	kind indexKind
	mask *roaring.Bitmap
	pos  []int
}

// All returns the identity index over the full axis.
func All() Index { return Index{kind: indexAll} }

// Mask returns an index selecting the positions contained in bm.
func Mask(bm *roaring.Bitmap) Index {
	return Index{kind: indexMask, mask: bm}
}

// MaskBools returns an index selecting the positions where sel is true.
func MaskBools(sel []bool) Index {
	bm := roaring.New()
	for i, ok := range sel {
		if ok {
			bm.Add(uint32(i))
		}
	}
	return Index{kind: indexMask, mask: bm}
}

// Positions returns an index selecting the given positions in order.
func Positions(pos ...int) Index {
	return Index{kind: indexPositions, pos: pos}
}

// Count returns the number of positions the index selects on an axis of
// length n.
func (ix Index) Count(n int) int {
	switch ix.kind {
	case indexMask:
		return int(ix.mask.GetCardinality())
	case indexPositions:
		return len(ix.pos)
	default:
		return n
	}
}

// IsAll reports whether the index selects the full axis of length n in
// its original order.
func (ix Index) IsAll(n int) bool {
	switch ix.kind {
	case indexMask:
		return ix.mask.GetCardinality() == uint64(n)
	case indexPositions:
		if len(ix.pos) != n {
			return false
		}
		for i, p := range ix.pos {
			if p != i {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Resolve expands the index to an explicit position list over an axis of
// length n.
func (ix Index) Resolve(n int) []int {
	switch ix.kind {
	case indexMask:
		pos := make([]int, 0, ix.mask.GetCardinality())
		it := ix.mask.Iterator()
		for it.HasNext() {
			pos = append(pos, int(it.Next()))
		}
		return pos
	case indexPositions:
		return ix.pos
	default:
		pos := make([]int, n)
		for i := range pos {
			pos[i] = i
		}
		return pos
	}
}
