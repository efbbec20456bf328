// Package eigen defines the eigendecomposition capability consumed by the
// subspace engines and provides the default implementation backed by
// gonum. The engines only depend on the Solver interface, so their own
// logic (centering, scatter computation, ranking, truncation) can be
// tested against a stub solver with known eigenpairs.
package eigen
