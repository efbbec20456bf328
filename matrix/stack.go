package matrix

// Orientation controls whether samples are laid out one per row or one per
// column when a collection of matrices is stacked.
type Orientation int

const (
	// RowSamples lays out one sample per row (the internal layout all
	// computation is normalized to).
	RowSamples Orientation = iota
	// ColumnSamples lays out one sample per column.
	ColumnSamples
)

// Stack flattens each matrix of src into a single row (RowSamples) or
// column (ColumnSamples) of one result matrix, applying the affine rescale
// alpha*x + beta during the copy. All inputs must have the same total
// element count. An empty src yields an empty matrix.
func Stack(src []*Dense, o Orientation, alpha, beta float64) (*Dense, error) {
	if o == ColumnSamples {
		m, err := Stack(src, RowSamples, alpha, beta)
		if err != nil {
			return nil, err
		}
		return m.T(), nil
	}

	n := len(src)
	if n == 0 {
		return NewDense(0, 0), nil
	}

	d := src[0].Total()
	out := NewDense(n, d)
	for i, s := range src {
		if s.Total() != d {
			return nil, &ErrShapeMismatch{Op: "matrix.Stack", Expected: d, Actual: s.Total()}
		}
		row := out.Row(i)
		for j, v := range s.data {
			row[j] = alpha*v + beta
		}
	}
	return out, nil
}
