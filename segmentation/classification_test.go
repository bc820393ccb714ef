package segmentation

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	pc "go.viam.com/planeseg/pointcloud"
)

func TestClassifyPoints(t *testing.T) {
	// plane z = 0
	plane := pc.NewPlane(nil, [4]float64{0, 0, 1, 0})
	cloud := cloudFromVectors(t,
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 1, Y: 1, Z: 0.05},
		r3.Vector{X: 2, Y: 2, Z: -0.2},
		r3.Vector{X: 3, Y: 3, Z: 5},
	)

	classification, err := ClassifyPoints(cloud, plane, 0.25)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, classification.Distances, test.ShouldHaveLength, 4)
	test.That(t, classification.Inliers, test.ShouldResemble, []bool{true, true, true, false})
	test.That(t, classification.InlierCount, test.ShouldEqual, 3)
	test.That(t, classification.Distances[2], test.ShouldAlmostEqual, 0.2)
	test.That(t, classification.Distances[3], test.ShouldAlmostEqual, 5)

	// the count always matches the flags
	count := 0
	for _, inlier := range classification.Inliers {
		if inlier {
			count++
		}
	}
	test.That(t, classification.InlierCount, test.ShouldEqual, count)
}

func TestClassifyPointsBoundary(t *testing.T) {
	plane := pc.NewPlane(nil, [4]float64{0, 0, 1, 0})
	cloud := cloudFromVectors(t,
		r3.Vector{X: 0, Y: 0, Z: 0.5},
		r3.Vector{X: 1, Y: 1, Z: math.Nextafter(0.5, 0)},
	)

	// a point exactly at the threshold is an outlier; strictly closer is an inlier
	classification, err := ClassifyPoints(cloud, plane, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, classification.Inliers, test.ShouldResemble, []bool{false, true})
	test.That(t, classification.InlierCount, test.ShouldEqual, 1)
}

func TestClassifyPointsInvalidThreshold(t *testing.T) {
	plane := pc.NewPlane(nil, [4]float64{0, 0, 1, 0})
	cloud := cloudFromVectors(t, r3.Vector{X: 0, Y: 0, Z: 0})

	_, err := ClassifyPoints(cloud, plane, 0)
	test.That(t, errors.Is(err, ErrInvalidParameter), test.ShouldBeTrue)
	_, err = ClassifyPoints(cloud, plane, -0.1)
	test.That(t, errors.Is(err, ErrInvalidParameter), test.ShouldBeTrue)
}
