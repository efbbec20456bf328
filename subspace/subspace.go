package subspace

import (
	"github.com/hupe1980/facerecgo/matrix"
)

// Project projects the row-per-sample matrix src into the subspace spanned
// by the columns of w, as Y = (X - mean) * W. The mean is subtracted from
// every row only when its length matches the sample dimensionality;
// otherwise the input is projected uncentered. The result has src.Rows()
// rows and w.Cols() columns.
func Project(w *matrix.Dense, mean []float64, src *matrix.Dense) (*matrix.Dense, error) {
	x := src.Clone()
	if len(mean) == x.Cols() {
		for i := 0; i < x.Rows(); i++ {
			row := x.Row(i)
			for j, m := range mean {
				row[j] -= m
			}
		}
	}
	return x.Mul(w)
}

// Reconstruct maps subspace coefficients back to the original feature
// space, as X = Y * Wᵗ + mean. The mean is added to every row only when
// its length matches the output dimensionality w.Rows(); otherwise no
// offset is applied. The result has src.Rows() rows and w.Rows() columns.
func Reconstruct(w *matrix.Dense, mean []float64, src *matrix.Dense) (*matrix.Dense, error) {
	x, err := src.Mul(w.T())
	if err != nil {
		return nil, err
	}
	if len(mean) == x.Cols() {
		for i := 0; i < x.Rows(); i++ {
			row := x.Row(i)
			for j, m := range mean {
				row[j] += m
			}
		}
	}
	return x, nil
}
