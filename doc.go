// Package facerecgo provides appearance-based face recognition building
// blocks for Go: a Fisher linear discriminant subspace engine, generic
// subspace projection, local binary pattern texture features, labeled
// dataset handling and model persistence with pluggable artifact storage.
//
// # Quick Start
//
//	lda := facerecgo.New(facerecgo.WithComponents(0)) // auto: C-1
//	if err := lda.Compute(samples, labels); err != nil {
//	    log.Fatal(err)
//	}
//	projected, _ := lda.Project(samples)
//
// Samples are dense float64 matrices (see package matrix), one sample per
// row by default. The number of discriminant directions is bounded by
// C-1, where C is the number of distinct labels.
//
// # Learned Subspace
//
// Compute replaces the learned subspace wholesale; it is not incremental.
// Eigenvectors() and Eigenvalues() expose the basis ordered by descending
// eigenvalue. A single LDA instance must not run Compute concurrently
// with reads; after Compute returns, read-only sharing is safe.
//
// # Storage
//
// Learned subspaces serialize to a compact binary format (package
// persistence) and can be kept on the local filesystem, in memory, or in
// S3-compatible object storage (package blobstore).
package facerecgo
