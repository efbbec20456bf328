package feature

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/facerecgo/matrix"
)

// ExtractorOptions configures an Extractor.
type ExtractorOptions struct {
	// Radius of the circular LBP neighborhood.
	Radius int
	// Neighbors is the number of sample points on the circle.
	Neighbors int
	// GridX and GridY control the spatial histogram grid.
	GridX int
	GridY int
	// Normed divides each cell histogram by the cell element count.
	Normed bool
	// Concurrency bounds the number of images processed in parallel by
	// ExtractAll. Defaults to GOMAXPROCS.
	Concurrency int
}

// DefaultExtractorOptions are the parameters from the original LBP face
// description paper.
var DefaultExtractorOptions = ExtractorOptions{
	Radius:    1,
	Neighbors: 8,
	GridX:     8,
	GridY:     8,
	Normed:    true,
}

// Extractor turns grayscale images into spatially enhanced LBP histogram
// feature vectors, the usual input to a discriminant subspace.
type Extractor struct {
	opts ExtractorOptions
}

// NewExtractor creates an Extractor with the given option overrides.
func NewExtractor(optFns ...func(*ExtractorOptions)) *Extractor {
	opts := DefaultExtractorOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}
	return &Extractor{opts: opts}
}

// Extract computes the ELBP map of a single image and returns its spatial
// histogram as a row vector.
func (e *Extractor) Extract(src *matrix.Dense) (*matrix.Dense, error) {
	lbp, err := ELBP(src, e.opts.Radius, e.opts.Neighbors)
	if err != nil {
		return nil, err
	}
	numPatterns := 1 << e.opts.Neighbors
	return SpatialHistogram(lbp, numPatterns, e.opts.GridX, e.opts.GridY, e.opts.Normed)
}

// ExtractAll extracts feature vectors for all images concurrently,
// preserving input order. The first error cancels the remaining work.
func (e *Extractor) ExtractAll(ctx context.Context, images []*matrix.Dense) ([]*matrix.Dense, error) {
	results := make([]*matrix.Dense, len(images))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Concurrency)
	for i, img := range images {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := e.Extract(img)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
