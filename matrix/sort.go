package matrix

import (
	"cmp"
	"slices"
	"sort"
)

// Argsort returns the permutation of indices that sorts the 1-D matrix m
// in the requested direction. Ties keep their original order. It returns
// ErrNotOneDimensional unless m is a single row or a single column.
func Argsort(m *Dense, ascending bool) ([]int, error) {
	if m.channels != 1 || (m.rows != 1 && m.cols != 1) {
		return nil, ErrNotOneDimensional
	}
	indices := make([]int, len(m.data))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		if ascending {
			return m.data[indices[a]] < m.data[indices[b]]
		}
		return m.data[indices[a]] > m.data[indices[b]]
	})
	return indices, nil
}

// SelectColumns returns a new matrix whose i-th column is the source's
// indices[i]-th column. The permutation may be shorter than the number of
// source columns, which reorders and truncates in one step.
func SelectColumns(m *Dense, indices []int) (*Dense, error) {
	if m.channels != 1 {
		return nil, ErrMultiChannel
	}
	out := NewDense(m.rows, len(indices))
	for j, src := range indices {
		if src < 0 || src >= m.cols {
			return nil, &ErrIndexOutOfRange{Op: "matrix.SelectColumns", Index: src, Limit: m.cols}
		}
		for i := 0; i < m.rows; i++ {
			out.data[i*out.cols+j] = m.data[i*m.cols+src]
		}
	}
	return out, nil
}

// SelectRows returns a new matrix whose i-th row is the source's
// indices[i]-th row. Like SelectColumns, the permutation may truncate.
func SelectRows(m *Dense, indices []int) (*Dense, error) {
	if m.channels != 1 {
		return nil, ErrMultiChannel
	}
	out := NewDense(len(indices), m.cols)
	for i, src := range indices {
		if src < 0 || src >= m.rows {
			return nil, &ErrIndexOutOfRange{Op: "matrix.SelectRows", Index: src, Limit: m.rows}
		}
		copy(out.Row(i), m.Row(src))
	}
	return out, nil
}

// Unique returns the sorted distinct values of src.
func Unique[T cmp.Ordered](src []T) []T {
	if len(src) == 0 {
		return nil
	}
	out := slices.Clone(src)
	slices.Sort(out)
	return slices.Compact(out)
}
