package eigen

import (
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/facerecgo/matrix"
)

// Gonum is the default Solver, backed by gonum's dense non-symmetric
// eigendecomposition (QR algorithm on the real Schur form).
type Gonum struct{}

// NewGonum creates the default gonum-backed solver.
func NewGonum() *Gonum { return &Gonum{} }

// Decompose computes the right eigenpairs of the square matrix m.
func (g *Gonum) Decompose(m *matrix.Dense) (*Decomposition, error) {
	if m.Rows() != m.Cols() {
		return nil, ErrNotSquare
	}
	n := m.Rows()

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, m.Data()), mat.EigenRight); !ok {
		return nil, ErrFailed
	}

	dec := &Decomposition{
		N:       n,
		Values:  eig.Values(nil),
		Vectors: make([]complex128, n*n),
	}

	var vectors mat.CDense
	eig.VectorsTo(&vectors)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dec.Vectors[i*n+j] = vectors.At(i, j)
		}
	}

	return dec, nil
}
