package eigen

import (
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/facerecgo/matrix"
)

func TestGonumDecompose(t *testing.T) {
	// Upper triangular, eigenvalues on the diagonal.
	m := matrix.NewDenseData(2, 2, []float64{
		2, 1,
		0, 3,
	})

	dec, err := NewGonum().Decompose(m)
	require.NoError(t, err)
	require.Equal(t, 2, dec.N)
	require.Len(t, dec.Values, 2)

	got := []float64{real(dec.Values[0]), real(dec.Values[1])}
	sort.Float64s(got)
	assert.InDelta(t, 2.0, got[0], 1e-9)
	assert.InDelta(t, 3.0, got[1], 1e-9)
	for _, v := range dec.Values {
		assert.InDelta(t, 0, imag(v), 1e-9)
	}
}

// Every returned pair must satisfy A v = λ v, independent of ordering.
func TestGonumEigenpairsConsistent(t *testing.T) {
	data := []float64{
		4, 1, 0,
		2, 3, 1,
		0, 1, 2,
	}
	m := matrix.NewDenseData(3, 3, data)

	dec, err := NewGonum().Decompose(m)
	require.NoError(t, err)

	n := dec.N
	for j := 0; j < n; j++ {
		lambda := dec.Values[j]
		for i := 0; i < n; i++ {
			var av complex128
			for k := 0; k < n; k++ {
				av += complex(data[i*n+k], 0) * dec.Vectors[k*n+j]
			}
			lv := lambda * dec.Vectors[i*n+j]
			assert.InDelta(t, 0, cmplx.Abs(av-lv), 1e-8, "pair %d component %d", j, i)
		}
	}
}

func TestGonumNotSquare(t *testing.T) {
	_, err := NewGonum().Decompose(matrix.NewDense(2, 3))
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestDecompositionRealParts(t *testing.T) {
	dec := &Decomposition{
		N:       2,
		Values:  []complex128{complex(1, 0.5), complex(2, -0.5)},
		Vectors: []complex128{1, 2, 3, 4},
	}

	values := dec.RealValues()
	assert.Equal(t, []float64{1, 2}, values.Data())

	vectors := dec.RealVectors()
	assert.Equal(t, []float64{1, 2, 3, 4}, vectors.Data())
}
