package feature

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/facerecgo/matrix"
)

func constant(rows, cols int, v float64) *matrix.Dense {
	m := matrix.NewDense(rows, cols)
	for i := range m.Data() {
		m.Data()[i] = v
	}
	return m
}

func TestOLBP(t *testing.T) {
	// All neighbors equal the center: every comparison is >=, code 255.
	src := constant(3, 3, 5)
	dst, err := OLBP(src)
	require.NoError(t, err)
	require.Equal(t, 1, dst.Rows())
	require.Equal(t, 1, dst.Cols())
	assert.Equal(t, 255.0, dst.At(0, 0))

	// Lowering the top-left neighbor clears the highest bit.
	src.Set(0, 0, 4)
	dst, err = OLBP(src)
	require.NoError(t, err)
	assert.Equal(t, 127.0, dst.At(0, 0))
}

func TestOLBPShape(t *testing.T) {
	dst, err := OLBP(constant(6, 5, 1))
	require.NoError(t, err)
	assert.Equal(t, 4, dst.Rows())
	assert.Equal(t, 3, dst.Cols())
}

func TestOLBPMultiChannel(t *testing.T) {
	_, err := OLBP(matrix.NewDenseChannels(3, 3, 3))
	assert.ErrorIs(t, err, matrix.ErrMultiChannel)
}

func TestELBP(t *testing.T) {
	// On a constant image the interpolated values equal the center within
	// epsilon, so every neighbor bit is set.
	dst, err := ELBP(constant(6, 6, 3), 1, 8)
	require.NoError(t, err)
	require.Equal(t, 4, dst.Rows())
	require.Equal(t, 4, dst.Cols())
	for i := 0; i < dst.Rows(); i++ {
		for j := 0; j < dst.Cols(); j++ {
			assert.Equal(t, 255.0, dst.At(i, j))
		}
	}
}

func TestELBPShape(t *testing.T) {
	dst, err := ELBP(constant(10, 8, 1), 2, 8)
	require.NoError(t, err)
	assert.Equal(t, 6, dst.Rows())
	assert.Equal(t, 4, dst.Cols())

	// Degenerate when the radius eats the whole image.
	dst, err = ELBP(constant(4, 4, 1), 2, 8)
	require.NoError(t, err)
	assert.True(t, dst.Empty())
}

func TestVarLBPConstantImage(t *testing.T) {
	dst, err := VarLBP(constant(8, 8, 42), 1, 8)
	require.NoError(t, err)
	require.Equal(t, 6, dst.Rows())
	for _, v := range dst.Data() {
		assert.InDelta(t, 0, v, 1e-9)
	}
}

func TestHistc(t *testing.T) {
	src := matrix.NewDenseData(1, 5, []float64{2, 1, 2, 3, 1})

	hist, err := Histc(src, 0, 3, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 2, 1}, hist.Row(0))

	normed, err := Histc(src, 0, 3, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, normed.At(0, 1), 1e-12)
	assert.InDelta(t, 0.2, normed.At(0, 3), 1e-12)
}

func TestHistcIgnoresOutOfRange(t *testing.T) {
	src := matrix.NewDenseData(1, 4, []float64{-1, 0, 5, 1})
	hist, err := Histc(src, 0, 1, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, hist.Row(0))
}

func TestHistcMultiChannel(t *testing.T) {
	_, err := Histc(matrix.NewDenseChannels(2, 2, 3), 0, 3, false)
	assert.ErrorIs(t, err, matrix.ErrMultiChannel)
}

func TestSpatialHistogram(t *testing.T) {
	src := matrix.NewDenseData(4, 4, []float64{
		0, 0, 1, 1,
		0, 0, 1, 1,
		2, 2, 3, 3,
		2, 2, 3, 3,
	})

	hist, err := SpatialHistogram(src, 4, 2, 2, false)
	require.NoError(t, err)
	require.Equal(t, 1, hist.Rows())
	require.Equal(t, 16, hist.Cols())

	// Cell order is row by row; each cell holds four identical codes.
	expected := []float64{
		4, 0, 0, 0,
		0, 4, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 4,
	}
	assert.Equal(t, expected, hist.Row(0))
}

func TestGrayscale(t *testing.T) {
	src := matrix.NewDenseData(1, 3, []float64{1, 2, 3})
	dst, err := Grayscale(src)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 128, 255}, dst.Row(0))

	flat, err := Grayscale(constant(2, 2, 9))
	require.NoError(t, err)
	for _, v := range flat.Data() {
		assert.Equal(t, 0.0, v)
	}
}

func TestExtractorExtract(t *testing.T) {
	e := NewExtractor()
	out, err := e.Extract(constant(10, 10, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Rows())
	assert.Equal(t, 8*8*256, out.Cols())
}

func TestExtractorExtractAll(t *testing.T) {
	e := NewExtractor(func(o *ExtractorOptions) {
		o.Concurrency = 2
	})

	images := []*matrix.Dense{
		constant(10, 10, 1),
		constant(10, 10, 2),
		constant(10, 10, 3),
	}
	results, err := e.ExtractAll(context.Background(), images)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		require.NotNil(t, r, "result %d", i)
		assert.Equal(t, 8*8*256, r.Cols())
	}
}

func TestExtractorExtractAllPropagatesError(t *testing.T) {
	e := NewExtractor()
	images := []*matrix.Dense{
		constant(10, 10, 1),
		matrix.NewDenseChannels(10, 10, 3),
	}
	_, err := e.ExtractAll(context.Background(), images)
	assert.ErrorIs(t, err, matrix.ErrMultiChannel)
}
