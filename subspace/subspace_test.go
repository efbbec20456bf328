package subspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/facerecgo/matrix"
)

func TestProject(t *testing.T) {
	w := matrix.NewDenseData(2, 1, []float64{1, 0}) // project onto first axis
	src := matrix.NewDenseData(3, 2, []float64{
		1, 9,
		2, 9,
		3, 9,
	})

	got, err := Project(w, nil, src)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Rows())
	assert.Equal(t, 1, got.Cols())
	assert.Equal(t, []float64{1, 2, 3}, got.Data())
}

func TestProjectWithMean(t *testing.T) {
	w := matrix.NewDenseData(2, 2, []float64{
		1, 0,
		0, 1,
	})
	src := matrix.NewDenseData(1, 2, []float64{3, 4})

	got, err := Project(w, []float64{1, 2}, src)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, got.Data())

	// A mean of mismatched length is ignored, not an error.
	got, err = Project(w, []float64{1}, src)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, got.Data())
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	w := matrix.NewDenseData(2, 2, []float64{1, 0, 0, 1})
	src := matrix.NewDenseData(1, 2, []float64{3, 4})

	_, err := Project(w, []float64{1, 1}, src)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, src.Data())
}

func TestReconstruct(t *testing.T) {
	w := matrix.NewDenseData(2, 1, []float64{1, 0})
	coeffs := matrix.NewDenseData(2, 1, []float64{5, 6})

	got, err := Reconstruct(w, nil, coeffs)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rows())
	assert.Equal(t, 2, got.Cols())
	assert.Equal(t, []float64{5, 0, 6, 0}, got.Data())

	// Mean is added only when it matches the output dimensionality.
	got, err = Reconstruct(w, []float64{10, 20}, coeffs)
	require.NoError(t, err)
	assert.Equal(t, []float64{15, 20, 16, 20}, got.Data())

	got, err = Reconstruct(w, []float64{10, 20, 30}, coeffs)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 6, 0}, got.Data())
}

// Round-trip error through an orthonormal basis must not increase as more
// components are kept, and must vanish when all of them are.
func TestRoundTripErrorDecreases(t *testing.T) {
	s3 := math.Sqrt(3)
	s2 := math.Sqrt(2)
	s6 := math.Sqrt(6)
	// Orthonormal columns.
	basis := matrix.NewDenseData(3, 3, []float64{
		1 / s3, 1 / s2, 1 / s6,
		1 / s3, -1 / s2, 1 / s6,
		1 / s3, 0, -2 / s6,
	})

	src := matrix.NewDenseData(4, 3, []float64{
		1, 2, 3,
		-1, 0.5, 2,
		4, 4, -4,
		0.25, -3, 1,
	})

	var prev float64 = math.Inf(1)
	for k := 1; k <= 3; k++ {
		keep := make([]int, k)
		for i := range keep {
			keep[i] = i
		}
		wk, err := matrix.SelectColumns(basis, keep)
		require.NoError(t, err)

		projected, err := Project(wk, nil, src)
		require.NoError(t, err)
		rec, err := Reconstruct(wk, nil, projected)
		require.NoError(t, err)

		var errSum float64
		for i, v := range rec.Data() {
			d := v - src.Data()[i]
			errSum += d * d
		}
		assert.LessOrEqual(t, errSum, prev+1e-12, "k=%d", k)
		prev = errSum
	}
	assert.InDelta(t, 0, prev, 1e-9)
}
