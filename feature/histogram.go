package feature

import (
	"math"

	"github.com/hupe1980/facerecgo/matrix"
)

// Histc computes a dense histogram of the integral values in src over the
// inclusive range [minVal, maxVal], one bin per value. Values outside the
// range are ignored. With normed the counts are divided by the total
// element count of src. The result is a 1 x (maxVal-minVal+1) row vector.
func Histc(src *matrix.Dense, minVal, maxVal int, normed bool) (*matrix.Dense, error) {
	if src.Channels() != 1 {
		return nil, matrix.ErrMultiChannel
	}
	histSize := maxVal - minVal + 1
	if histSize <= 0 {
		return matrix.NewDense(0, 0), nil
	}

	dst := matrix.NewDense(1, histSize)
	bins := dst.Row(0)
	for _, v := range src.Data() {
		bin := int(v) - minVal
		if bin < 0 || bin >= histSize {
			continue
		}
		bins[bin]++
	}

	if normed && src.Total() > 0 {
		total := float64(src.Total())
		for i := range bins {
			bins[i] /= total
		}
	}
	return dst, nil
}

// SpatialHistogram divides an LBP map into a gridX x gridY grid, computes
// a numPatterns-bin histogram per cell and concatenates the cell
// histograms into a single 1 x (gridX*gridY*numPatterns) feature vector.
// Cell order is row by row, matching the spatially enhanced histogram of
// Ahonen et al.
func SpatialHistogram(src *matrix.Dense, numPatterns, gridX, gridY int, normed bool) (*matrix.Dense, error) {
	if src.Channels() != 1 {
		return nil, matrix.ErrMultiChannel
	}
	result := matrix.NewDense(1, gridX*gridY*numPatterns)
	if src.Empty() {
		return result, nil
	}

	width := src.Cols() / gridX
	height := src.Rows() / gridY

	out := result.Row(0)
	cell := 0
	for i := 0; i < gridY; i++ {
		for j := 0; j < gridX; j++ {
			sub := subRect(src, i*height, (i+1)*height, j*width, (j+1)*width)
			hist, err := Histc(sub, 0, numPatterns-1, normed)
			if err != nil {
				return nil, err
			}
			copy(out[cell*numPatterns:(cell+1)*numPatterns], hist.Row(0))
			cell++
		}
	}
	return result, nil
}

// Grayscale rescales a single-channel matrix to the [0,255] range by
// min-max normalization. A constant matrix maps to all zeros.
func Grayscale(src *matrix.Dense) (*matrix.Dense, error) {
	if src.Channels() != 1 {
		return nil, matrix.ErrMultiChannel
	}
	dst := src.Clone()
	if dst.Empty() {
		return dst, nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range dst.Data() {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	data := dst.Data()
	if hi == lo {
		for i := range data {
			data[i] = 0
		}
		return dst, nil
	}
	scale := 255 / (hi - lo)
	for i := range data {
		data[i] = math.Round((data[i] - lo) * scale)
	}
	return dst, nil
}

func subRect(m *matrix.Dense, rowStart, rowEnd, colStart, colEnd int) *matrix.Dense {
	sub := matrix.NewDense(rowEnd-rowStart, colEnd-colStart)
	for i := rowStart; i < rowEnd; i++ {
		for j := colStart; j < colEnd; j++ {
			sub.Set(i-rowStart, j-colStart, m.At(i, j))
		}
	}
	return sub
}
