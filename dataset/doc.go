// Package dataset collects labeled samples for subspace training. It keeps
// a roaring bitmap of sample indices per class, so class membership
// queries and per-class statistics stay cheap even for large galleries,
// and stacks the collection into the single matrix Compute expects.
package dataset
