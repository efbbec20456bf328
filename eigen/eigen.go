package eigen

import (
	"errors"

	"github.com/hupe1980/facerecgo/matrix"
)

var (
	// ErrNotSquare is returned when the input matrix is not square.
	ErrNotSquare = errors.New("eigen: input matrix must be square")

	// ErrFailed is returned when the factorization does not converge.
	ErrFailed = errors.New("eigen: factorization failed")
)

// Decomposition holds the eigenvalues and right eigenvectors of a square
// matrix. Values and vector columns correspond by index and carry no
// ordering guarantee; callers rank them as needed.
//
// For non-symmetric inputs both may be complex. Vectors is row-major with
// Vectors[i*N+j] holding component i of the eigenvector belonging to
// Values[j].
type Decomposition struct {
	N       int
	Values  []complex128
	Vectors []complex128
}

// RealValues returns the real parts of the eigenvalues as a 1 x N row
// vector. Imaginary parts are discarded.
func (d *Decomposition) RealValues() *matrix.Dense {
	data := make([]float64, d.N)
	for i, v := range d.Values {
		data[i] = real(v)
	}
	return matrix.NewDenseData(1, d.N, data)
}

// RealVectors returns the real parts of the eigenvectors as an N x N
// matrix whose columns correspond to RealValues entry-wise. Imaginary
// parts are discarded.
func (d *Decomposition) RealVectors() *matrix.Dense {
	data := make([]float64, d.N*d.N)
	for i, v := range d.Vectors {
		data[i] = real(v)
	}
	return matrix.NewDenseData(d.N, d.N, data)
}

// Solver decomposes a square matrix into eigenvalues and right
// eigenvectors. Implementations must accept non-symmetric input and may
// return complex eigenpairs.
type Solver interface {
	Decompose(m *matrix.Dense) (*Decomposition, error)
}
