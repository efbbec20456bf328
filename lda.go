package facerecgo

import (
	"fmt"

	"github.com/hupe1980/facerecgo/eigen"
	"github.com/hupe1980/facerecgo/matrix"
	"github.com/hupe1980/facerecgo/subspace"
)

// LDA performs a linear discriminant analysis with Fisher's optimization
// criterion: it learns the directions that maximize the ratio of
// between-class to within-class variance for labeled sample data.
//
// The learned subspace (eigenvector basis plus eigenvalues) is replaced
// wholesale by every Compute call. A single instance must not be mutated
// via Compute concurrently with reads; after Compute returns, read-only
// sharing across goroutines is safe.
type LDA struct {
	numComponents int
	dataAsRow     bool
	solver        eigen.Solver
	logger        *Logger

	eigenvectors *matrix.Dense // D x k, columns ordered by descending eigenvalue
	eigenvalues  []float64     // len k, non-increasing
}

// New creates an LDA engine. By default samples are one per row, the
// component count is determined automatically (C-1) and eigendecomposition
// is delegated to the gonum backend.
func New(opts ...Option) *LDA {
	l := &LDA{
		dataAsRow: true,
		solver:    eigen.NewGonum(),
		logger:    NewLogger(nil),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Compute learns the discriminant subspace for the samples in src and
// their class labels. src must be single-channel; it is transposed first
// when the instance was configured with WithColumnSamples, so all internal
// processing operates on one sample per row in double precision.
//
// The between-class scatter sums one outer product per class, unweighted
// by class size: every class contributes equally regardless of how many
// samples it has. Genuinely complex eigenpairs of the (generally
// non-symmetric) discriminant matrix are handled by discarding their
// imaginary parts before ranking.
//
// Compute replaces any previously learned subspace.
func (l *LDA) Compute(src *matrix.Dense, labels []int) error {
	if src.Channels() != 1 {
		return fmt.Errorf("%w: only single channel matrices allowed", ErrInvalidArgument)
	}

	var data *matrix.Dense
	if l.dataAsRow {
		data = src.Clone()
	} else {
		data = src.T()
	}

	n := data.Rows()
	d := data.Cols()

	if len(labels) != n {
		return fmt.Errorf("%w: the number of samples (%d) must equal the number of labels (%d)", ErrInvalidArgument, n, len(labels))
	}
	if n < d {
		l.logger.Warn("fewer observations than feature dimensions, within-class scatter is likely singular",
			"samples", n,
			"dimensions", d,
		)
	}

	// Map labels to ascending class indices [0,C).
	distinct := matrix.Unique(labels)
	c := len(distinct)

	labelToClass := make(map[int]int, c)
	for i, v := range distinct {
		labelToClass[v] = i
	}
	mapped := make([]int, len(labels))
	for i, v := range labels {
		mapped[i] = labelToClass[v]
	}

	// At most C-1 meaningful discriminant directions exist.
	numComponents := l.numComponents
	if numComponents <= 0 || numComponents > c-1 {
		numComponents = c - 1
	}

	// Accumulate sums in sample order, then divide.
	meanTotal := make([]float64, d)
	meanClass := make([][]float64, c)
	numClass := make([]int, c)
	for i := range meanClass {
		meanClass[i] = make([]float64, d)
	}
	for i := 0; i < n; i++ {
		row := data.Row(i)
		class := mapped[i]
		for j, v := range row {
			meanTotal[j] += v
			meanClass[class][j] += v
		}
		numClass[class]++
	}
	for j := range meanTotal {
		meanTotal[j] /= float64(n)
	}
	for i := range meanClass {
		for j := range meanClass[i] {
			meanClass[i][j] /= float64(numClass[i])
		}
	}

	// Center every sample in place by its own class mean. No global mean
	// is retained afterwards.
	for i := 0; i < n; i++ {
		row := data.Row(i)
		for j, m := range meanClass[mapped[i]] {
			row[j] -= m
		}
	}

	// Within-class scatter over the centered data.
	sw := data.MulTransposed()

	// Between-class scatter, one outer product per class.
	sb := matrix.NewDense(d, d)
	diff := make([]float64, d)
	for i := 0; i < c; i++ {
		for j := range diff {
			diff[j] = meanClass[i][j] - meanTotal[j]
		}
		for a, va := range diff {
			if va == 0 {
				continue
			}
			row := sb.Row(a)
			for b, vb := range diff {
				row[b] += va * vb
			}
		}
	}

	swi, err := sw.Inverse()
	if err != nil {
		return translateError(err)
	}
	m, err := swi.Mul(sb)
	if err != nil {
		return translateError(err)
	}

	dec, err := l.solver.Decompose(m)
	if err != nil {
		return err
	}

	values := dec.RealValues()
	vectors := dec.RealVectors()

	// Rank eigenpairs by eigenvalue descending, then truncate.
	perm, err := matrix.Argsort(values, false)
	if err != nil {
		return translateError(err)
	}
	sortedValues, err := matrix.SelectColumns(values, perm)
	if err != nil {
		return translateError(err)
	}
	sortedVectors, err := matrix.SelectColumns(vectors, perm)
	if err != nil {
		return translateError(err)
	}

	keep := make([]int, numComponents)
	for i := range keep {
		keep[i] = i
	}
	l.eigenvectors, err = matrix.SelectColumns(sortedVectors, keep)
	if err != nil {
		return translateError(err)
	}
	l.eigenvalues = make([]float64, numComponents)
	copy(l.eigenvalues, sortedValues.Data()[:numComponents])

	return nil
}

// ComputeSlice stacks a collection of individual sample matrices into one
// matrix, respecting the configured orientation, and delegates to Compute.
func (l *LDA) ComputeSlice(src []*matrix.Dense, labels []int) error {
	orientation := matrix.RowSamples
	if !l.dataAsRow {
		orientation = matrix.ColumnSamples
	}
	stacked, err := matrix.Stack(src, orientation, 1, 0)
	if err != nil {
		return translateError(err)
	}
	return l.Compute(stacked, labels)
}

// Project projects samples into the learned discriminant subspace.
//
// Projection is performed without any centering offset, even though the
// discriminant itself was computed from class-centered data; this mirrors
// the subspace definition and is intentional.
func (l *LDA) Project(src *matrix.Dense) (*matrix.Dense, error) {
	if l.eigenvectors == nil {
		return nil, fmt.Errorf("%w: no discriminant subspace computed", ErrInvalidArgument)
	}
	in := src
	if !l.dataAsRow {
		in = src.T()
	}
	out, err := subspace.Project(l.eigenvectors, nil, in)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// Reconstruct maps subspace coefficients back to the original feature
// space. Like Project it applies no mean offset; reconstructions
// approximate the class-centered samples, not the raw inputs.
func (l *LDA) Reconstruct(src *matrix.Dense) (*matrix.Dense, error) {
	if l.eigenvectors == nil {
		return nil, fmt.Errorf("%w: no discriminant subspace computed", ErrInvalidArgument)
	}
	in := src
	if !l.dataAsRow {
		in = src.T()
	}
	out, err := subspace.Reconstruct(l.eigenvectors, nil, in)
	if err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// Eigenvectors returns the learned basis, one column per discriminant
// direction, ordered by descending eigenvalue. It is nil before the first
// successful Compute. The returned matrix must be treated as read-only.
func (l *LDA) Eigenvectors() *matrix.Dense { return l.eigenvectors }

// Eigenvalues returns the eigenvalues belonging to Eigenvectors, in
// non-increasing order. It is nil before the first successful Compute.
func (l *LDA) Eigenvalues() []float64 { return l.eigenvalues }

// NumComponents returns the configured component count (0 means automatic).
func (l *LDA) NumComponents() int { return l.numComponents }

// DataAsRow reports whether inputs carry one sample per row.
func (l *LDA) DataAsRow() bool { return l.dataAsRow }
