package feature

import (
	"math"

	"github.com/hupe1980/facerecgo/matrix"
)

// OLBP computes the original 3x3 local binary pattern of a single-channel
// matrix. Each output cell holds an 8-bit code comparing the eight
// neighbors against the center pixel; the result is (rows-2) x (cols-2).
func OLBP(src *matrix.Dense) (*matrix.Dense, error) {
	if src.Channels() != 1 {
		return nil, matrix.ErrMultiChannel
	}
	rows, cols := src.Rows(), src.Cols()
	if rows < 3 || cols < 3 {
		return matrix.NewDense(0, 0), nil
	}

	dst := matrix.NewDense(rows-2, cols-2)
	for i := 1; i < rows-1; i++ {
		for j := 1; j < cols-1; j++ {
			center := src.At(i, j)
			var code uint8
			if src.At(i-1, j-1) >= center {
				code |= 1 << 7
			}
			if src.At(i-1, j) >= center {
				code |= 1 << 6
			}
			if src.At(i-1, j+1) >= center {
				code |= 1 << 5
			}
			if src.At(i, j+1) >= center {
				code |= 1 << 4
			}
			if src.At(i+1, j+1) >= center {
				code |= 1 << 3
			}
			if src.At(i+1, j) >= center {
				code |= 1 << 2
			}
			if src.At(i+1, j-1) >= center {
				code |= 1 << 1
			}
			if src.At(i, j-1) >= center {
				code |= 1
			}
			dst.Set(i-1, j-1, float64(code))
		}
	}
	return dst, nil
}

// ELBP computes the extended (circular) local binary pattern with the
// given radius and neighbor count. Sample points off the pixel grid are
// bilinearly interpolated; the comparison against the center tolerates a
// machine epsilon. The result is (rows-2*radius) x (cols-2*radius) with
// codes in [0, 2^neighbors).
func ELBP(src *matrix.Dense, radius, neighbors int) (*matrix.Dense, error) {
	if src.Channels() != 1 {
		return nil, matrix.ErrMultiChannel
	}
	rows, cols := src.Rows(), src.Cols()
	if rows <= 2*radius || cols <= 2*radius {
		return matrix.NewDense(0, 0), nil
	}

	dst := matrix.NewDense(rows-2*radius, cols-2*radius)
	for n := 0; n < neighbors; n++ {
		// Sample point on the circle.
		x := float64(-radius) * math.Sin(2.0*math.Pi*float64(n)/float64(neighbors))
		y := float64(radius) * math.Cos(2.0*math.Pi*float64(n)/float64(neighbors))

		fx := int(math.Floor(x))
		fy := int(math.Floor(y))
		cx := int(math.Ceil(x))
		cy := int(math.Ceil(y))

		tx := x - float64(fx)
		ty := y - float64(fy)

		// Bilinear interpolation weights.
		w1 := (1 - tx) * (1 - ty)
		w2 := tx * (1 - ty)
		w3 := (1 - tx) * ty
		w4 := tx * ty

		for i := radius; i < rows-radius; i++ {
			for j := radius; j < cols-radius; j++ {
				t := w1*src.At(i+fy, j+fx) + w2*src.At(i+fy, j+cx) +
					w3*src.At(i+cy, j+fx) + w4*src.At(i+cy, j+cx)
				center := src.At(i, j)
				if t > center || math.Abs(t-center) < epsilon {
					dst.Set(i-radius, j-radius, dst.At(i-radius, j-radius)+float64(int(1)<<n))
				}
			}
		}
	}
	return dst, nil
}

// VarLBP computes the rotation invariant variance measure over the
// circular neighborhood, using an online (Welford) variance accumulation.
// The result is (rows-2*radius) x (cols-2*radius).
func VarLBP(src *matrix.Dense, radius, neighbors int) (*matrix.Dense, error) {
	if src.Channels() != 1 {
		return nil, matrix.ErrMultiChannel
	}
	rows, cols := src.Rows(), src.Cols()
	if rows <= 2*radius || cols <= 2*radius || neighbors < 2 {
		return matrix.NewDense(0, 0), nil
	}

	mean := matrix.NewDense(rows, cols)
	delta := matrix.NewDense(rows, cols)
	m2 := matrix.NewDense(rows, cols)

	for n := 0; n < neighbors; n++ {
		x := float64(radius) * math.Cos(2.0*math.Pi*float64(n)/float64(neighbors))
		y := float64(radius) * -math.Sin(2.0*math.Pi*float64(n)/float64(neighbors))

		fx := int(math.Floor(x))
		fy := int(math.Floor(y))
		cx := int(math.Ceil(x))
		cy := int(math.Ceil(y))

		tx := x - float64(fx)
		ty := y - float64(fy)

		w1 := (1 - tx) * (1 - ty)
		w2 := tx * (1 - ty)
		w3 := (1 - tx) * ty
		w4 := tx * ty

		for i := radius; i < rows-radius; i++ {
			for j := radius; j < cols-radius; j++ {
				t := w1*src.At(i+fy, j+fx) + w2*src.At(i+fy, j+cx) +
					w3*src.At(i+cy, j+fx) + w4*src.At(i+cy, j+cx)
				d := t - mean.At(i, j)
				delta.Set(i, j, d)
				mean.Set(i, j, mean.At(i, j)+d/float64(n+1))
				m2.Set(i, j, m2.At(i, j)+d*(t-mean.At(i, j)))
			}
		}
	}

	dst := matrix.NewDense(rows-2*radius, cols-2*radius)
	for i := radius; i < rows-radius; i++ {
		for j := radius; j < cols-radius; j++ {
			dst.Set(i-radius, j-radius, m2.At(i, j)/float64(neighbors-1))
		}
	}
	return dst, nil
}

// epsilon is the float32 machine epsilon, the precision bound of the
// bilinear interpolation the comparison has to tolerate.
const epsilon = 1.1920928955078125e-07
