package dataset

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/facerecgo/matrix"
)

// Dataset is an append-only collection of (sample, label) pairs.
// It is not safe for concurrent mutation.
type Dataset struct {
	samples []*matrix.Dense
	labels  []int
	classes map[int]*roaring.Bitmap
}

// New creates an empty dataset.
func New() *Dataset {
	return &Dataset{
		classes: make(map[int]*roaring.Bitmap),
	}
}

// Add appends a sample with its class label.
func (d *Dataset) Add(sample *matrix.Dense, label int) {
	idx := uint32(len(d.samples))
	d.samples = append(d.samples, sample)
	d.labels = append(d.labels, label)

	rb, ok := d.classes[label]
	if !ok {
		rb = roaring.New()
		d.classes[label] = rb
	}
	rb.Add(idx)
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.samples) }

// NumClasses returns the number of distinct labels seen so far.
func (d *Dataset) NumClasses() int { return len(d.classes) }

// Labels returns a copy of the label vector, one entry per sample in
// insertion order.
func (d *Dataset) Labels() []int {
	out := make([]int, len(d.labels))
	copy(out, d.labels)
	return out
}

// Samples returns the samples in insertion order. The slice is shared;
// treat it as read-only.
func (d *Dataset) Samples() []*matrix.Dense { return d.samples }

// Distinct returns the sorted distinct labels.
func (d *Dataset) Distinct() []int {
	return matrix.Unique(d.labels)
}

// ClassIndices returns the sample indices belonging to label, ascending.
// It returns nil for an unknown label.
func (d *Dataset) ClassIndices(label int) []uint32 {
	rb, ok := d.classes[label]
	if !ok {
		return nil
	}
	return rb.ToArray()
}

// ClassCount returns the number of samples carrying label.
func (d *Dataset) ClassCount(label int) int {
	rb, ok := d.classes[label]
	if !ok {
		return 0
	}
	return int(rb.GetCardinality())
}

// Contains reports whether sample index idx belongs to label.
func (d *Dataset) Contains(label int, idx uint32) bool {
	rb, ok := d.classes[label]
	return ok && rb.Contains(idx)
}

// Matrix stacks all samples into a single matrix with the given
// orientation, one flattened sample per row or column.
func (d *Dataset) Matrix(o matrix.Orientation) (*matrix.Dense, error) {
	return matrix.Stack(d.samples, o, 1, 0)
}
