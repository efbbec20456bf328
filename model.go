package facerecgo

import (
	"github.com/hupe1980/facerecgo/persistence"
)

// Snapshot captures the learned subspace and configuration for
// serialization via package persistence. The snapshot owns copies of the
// engine state, so a later Compute does not mutate it.
func (l *LDA) Snapshot() *persistence.Model {
	m := &persistence.Model{
		NumComponents: l.numComponents,
		DataAsRow:     l.dataAsRow,
	}
	if l.eigenvectors != nil {
		m.Eigenvectors = l.eigenvectors.Clone()
	}
	if l.eigenvalues != nil {
		m.Eigenvalues = make([]float64, len(l.eigenvalues))
		copy(m.Eigenvalues, l.eigenvalues)
	}
	return m
}

// FromModel restores an engine from a persisted snapshot. Options are
// applied after the snapshot configuration, so they can override the
// solver or logger without touching the learned subspace.
func FromModel(m *persistence.Model, opts ...Option) *LDA {
	l := New(opts...)
	l.numComponents = m.NumComponents
	l.dataAsRow = m.DataAsRow
	if m.Eigenvectors != nil {
		l.eigenvectors = m.Eigenvectors.Clone()
	}
	if m.Eigenvalues != nil {
		l.eigenvalues = make([]float64, len(m.Eigenvalues))
		copy(l.eigenvalues, m.Eigenvalues)
	}
	return l
}
