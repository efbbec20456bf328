package facerecgo

import (
	"github.com/hupe1980/facerecgo/eigen"
)

// Option configures an LDA instance at construction time.
type Option func(*LDA)

// WithComponents sets the number of discriminant directions to retain.
// Values <= 0, or greater than C-1 for the data seen by Compute, are
// clamped to C-1 (the rank bound of the between-class scatter).
func WithComponents(n int) Option {
	return func(l *LDA) {
		l.numComponents = n
	}
}

// WithColumnSamples declares that sample matrices carry one sample per
// column instead of the default one sample per row. The orientation is
// fixed for the lifetime of the instance and applies to Compute, Project
// and Reconstruct inputs alike.
func WithColumnSamples() Option {
	return func(l *LDA) {
		l.dataAsRow = false
	}
}

// WithSolver replaces the eigendecomposition backend. The default is the
// gonum-backed solver; tests inject stubs with known eigenpairs.
func WithSolver(s eigen.Solver) Option {
	return func(l *LDA) {
		if s != nil {
			l.solver = s
		}
	}
}

// WithLogger replaces the default stderr logger.
func WithLogger(logger *Logger) Option {
	return func(l *LDA) {
		if logger != nil {
			l.logger = logger
		}
	}
}
