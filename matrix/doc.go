// Package matrix provides the dense float64 sample matrix used throughout
// facerecgo, together with the small set of operations the subspace methods
// need: multiplication, transposition, inversion, stacking sample
// collections into a single matrix, index-permutation sorting and column
// reordering.
//
// All computation is double precision. Inputs of other numeric element
// types are converted once at the boundary via the generic constructors.
package matrix
