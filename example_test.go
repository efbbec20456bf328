package facerecgo_test

import (
	"fmt"
	"log"

	facerecgo "github.com/hupe1980/facerecgo"
	"github.com/hupe1980/facerecgo/matrix"
)

func Example() {
	// Two classes of 2D points, separated along the first feature.
	samples := matrix.NewDenseData(6, 2, []float64{
		1.0, 1.0,
		1.2, 0.9,
		0.8, 1.1,
		8.0, 1.0,
		8.2, 1.1,
		7.8, 0.9,
	})
	labels := []int{0, 0, 0, 1, 1, 1}

	lda := facerecgo.New()
	if err := lda.Compute(samples, labels); err != nil {
		log.Fatal(err)
	}

	projected, err := lda.Project(samples)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("components:", len(lda.Eigenvalues()))
	fmt.Println("projected shape:", projected.Rows(), "x", projected.Cols())
	// Output:
	// components: 1
	// projected shape: 6 x 1
}
