package matrix

// Number covers the element types accepted at the conversion boundary.
// Internally everything is float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Dense is a row-major float64 matrix with interleaved channels.
// The zero value is an empty matrix. Channels default to 1; multi-channel
// matrices only occur as raw image-like inputs and are rejected by the
// numeric operations below.
type Dense struct {
	rows     int
	cols     int
	channels int
	data     []float64
}

// NewDense creates a zeroed rows x cols single-channel matrix.
func NewDense(rows, cols int) *Dense {
	return NewDenseChannels(rows, cols, 1)
}

// NewDenseChannels creates a zeroed rows x cols matrix with the given
// number of interleaved channels.
func NewDenseChannels(rows, cols, channels int) *Dense {
	if rows < 0 || cols < 0 || channels < 1 {
		panic("matrix: negative dimension")
	}
	return &Dense{
		rows:     rows,
		cols:     cols,
		channels: channels,
		data:     make([]float64, rows*cols*channels),
	}
}

// NewDenseData creates a rows x cols single-channel matrix backed by data.
// The slice is used directly, not copied.
func NewDenseData(rows, cols int, data []float64) *Dense {
	if len(data) != rows*cols {
		panic("matrix: data length does not match dimensions")
	}
	return &Dense{rows: rows, cols: cols, channels: 1, data: data}
}

// FromRows converts a rows x cols slice of any supported numeric element
// type into a single-channel float64 matrix. src is read row by row.
func FromRows[T Number](rows, cols int, src []T) *Dense {
	if len(src) != rows*cols {
		panic("matrix: data length does not match dimensions")
	}
	m := NewDense(rows, cols)
	for i, v := range src {
		m.data[i] = float64(v)
	}
	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// Channels returns the number of interleaved channels.
func (m *Dense) Channels() int { return m.channels }

// Total returns the total number of elements across all channels.
func (m *Dense) Total() int { return m.rows * m.cols * m.channels }

// Empty reports whether the matrix has no elements.
func (m *Dense) Empty() bool { return m == nil || len(m.data) == 0 }

// At returns the element at row i, column j, channel 0.
func (m *Dense) At(i, j int) float64 {
	return m.data[(i*m.cols+j)*m.channels]
}

// AtChan returns the element at row i, column j, channel c.
func (m *Dense) AtChan(i, j, c int) float64 {
	return m.data[(i*m.cols+j)*m.channels+c]
}

// Set assigns the element at row i, column j, channel 0.
func (m *Dense) Set(i, j int, v float64) {
	m.data[(i*m.cols+j)*m.channels] = v
}

// Row returns a mutable view of row i, including all channels.
func (m *Dense) Row(i int) []float64 {
	w := m.cols * m.channels
	return m.data[i*w : (i+1)*w]
}

// Data returns the backing slice. Mutations are visible to the matrix.
func (m *Dense) Data() []float64 { return m.data }

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, channels: m.channels, data: data}
}

// T returns the transpose as a new matrix.
func (m *Dense) T() *Dense {
	t := NewDenseChannels(m.cols, m.rows, m.channels)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			for c := 0; c < m.channels; c++ {
				t.data[(j*m.rows+i)*m.channels+c] = m.data[(i*m.cols+j)*m.channels+c]
			}
		}
	}
	return t
}

// Mul returns the matrix product m * b.
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if m.channels != 1 || b.channels != 1 {
		return nil, ErrMultiChannel
	}
	if m.cols != b.rows {
		return nil, &ErrShapeMismatch{Op: "matrix.Mul", Expected: m.cols, Actual: b.rows}
	}
	out := NewDense(m.rows, b.cols)
	for i := 0; i < m.rows; i++ {
		mi := m.data[i*m.cols : (i+1)*m.cols]
		oi := out.data[i*b.cols : (i+1)*b.cols]
		for k, mv := range mi {
			if mv == 0 {
				continue
			}
			bk := b.data[k*b.cols : (k+1)*b.cols]
			for j, bv := range bk {
				oi[j] += mv * bv
			}
		}
	}
	return out, nil
}

// MulTransposed returns mᵗ * m, the sum of the outer products of every row
// with itself. The result is cols x cols and symmetric.
func (m *Dense) MulTransposed() *Dense {
	out := NewDense(m.cols, m.cols)
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		for a, va := range row {
			if va == 0 {
				continue
			}
			oa := out.data[a*m.cols : (a+1)*m.cols]
			for b, vb := range row {
				oa[b] += va * vb
			}
		}
	}
	return out
}

// Inverse returns the inverse of a square matrix computed by Gauss-Jordan
// elimination with partial pivoting. It returns ErrSingular when a zero
// pivot is encountered; there is no pseudo-inverse fallback.
func (m *Dense) Inverse() (*Dense, error) {
	if m.channels != 1 {
		return nil, ErrMultiChannel
	}
	if m.rows != m.cols {
		return nil, &ErrShapeMismatch{Op: "matrix.Inverse", Expected: m.rows, Actual: m.cols}
	}
	n := m.rows

	// Work on an augmented copy [A | I].
	a := m.Clone()
	inv := NewDense(n, n)
	for i := 0; i < n; i++ {
		inv.data[i*n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if abs(a.data[r*n+col]) > abs(a.data[pivot*n+col]) {
				pivot = r
			}
		}
		if a.data[pivot*n+col] == 0 {
			return nil, ErrSingular
		}
		if pivot != col {
			swapRows(a.data, n, pivot, col)
			swapRows(inv.data, n, pivot, col)
		}

		p := a.data[col*n+col]
		for j := 0; j < n; j++ {
			a.data[col*n+j] /= p
			inv.data[col*n+j] /= p
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := a.data[r*n+col]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a.data[r*n+j] -= f * a.data[col*n+j]
				inv.data[r*n+j] -= f * inv.data[col*n+j]
			}
		}
	}

	return inv, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func swapRows(data []float64, cols, a, b int) {
	ra := data[a*cols : (a+1)*cols]
	rb := data[b*cols : (b+1)*cols]
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}
