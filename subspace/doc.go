// Package subspace provides the generic linear projection between an
// original feature space and a learned subspace. Any method that produces
// a basis matrix and an optional mean (discriminant analysis, principal
// component analysis, ...) can reuse these transforms.
package subspace
