package segmentation

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	pc "go.viam.com/planeseg/pointcloud"
)

func cloudFromVectors(t *testing.T, points ...r3.Vector) pc.PointCloud {
	t.Helper()
	cloud := pc.NewWithPrealloc(len(points))
	for _, p := range points {
		test.That(t, cloud.Set(p, nil), test.ShouldBeNil)
	}
	return cloud
}

func TestFitPlaneThreePoints(t *testing.T) {
	cloud := cloudFromVectors(t,
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 1.5, Y: 0.2, Z: -3},
		r3.Vector{X: -0.5, Y: 2, Z: 1},
	)
	plane, err := FitPlaneLeastSquares(cloud)
	test.That(t, err, test.ShouldBeNil)

	// all three points lie on the fitted plane
	for _, p := range GetPointCloudPositions(cloud) {
		test.That(t, math.Abs(plane.Distance(p)), test.ShouldBeLessThan, 1e-4)
	}
	// the normal is unit length
	test.That(t, plane.Normal().Norm(), test.ShouldAlmostEqual, 1, 1e-5)
}

func TestFitPlaneNoisyCloud(t *testing.T) {
	// points near the plane z = 2x - y + 1, i.e. 2x - y - z + 1 = 0
	cloud := pc.New()
	noise := []float64{0.001, -0.002, 0.0015, -0.0005}
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			x, y := float64(i), float64(j)
			z := 2*x - y + 1 + noise[(i+j)%len(noise)]
			test.That(t, cloud.Set(pc.NewVector(x, y, z), nil), test.ShouldBeNil)
		}
	}
	plane, err := FitPlaneLeastSquares(cloud)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, plane.Normal().Norm(), test.ShouldAlmostEqual, 1, 1e-5)

	wanted := r3.Vector{X: 2, Y: -1, Z: -1}.Normalize()
	cos := math.Abs(plane.Normal().Dot(wanted))
	test.That(t, cos, test.ShouldAlmostEqual, 1, 1e-4)
	// the plane passes through the centroid of the cloud
	test.That(t, math.Abs(plane.Distance(pc.CloudCentroid(cloud))), test.ShouldBeLessThan, 1e-10)
}

func TestFitPlaneIdempotent(t *testing.T) {
	cloud := cloudFromVectors(t,
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 4, Y: 1, Z: 2},
		r3.Vector{X: -2, Y: 3, Z: 0.5},
		r3.Vector{X: 1, Y: 1, Z: 7},
	)
	plane1, err := FitPlaneLeastSquares(cloud)
	test.That(t, err, test.ShouldBeNil)
	plane2, err := FitPlaneLeastSquares(cloud)
	test.That(t, err, test.ShouldBeNil)

	// same input produces the same plane up to the sign of the normal
	cos := plane1.Normal().Dot(plane2.Normal())
	test.That(t, math.Abs(cos), test.ShouldAlmostEqual, 1, 1e-12)
	test.That(t, math.Abs(plane1.Offset()), test.ShouldAlmostEqual, math.Abs(plane2.Offset()), 1e-12)
}

func TestFitPlaneInsufficientPoints(t *testing.T) {
	cloud := cloudFromVectors(t, r3.Vector{X: 0, Y: 0, Z: 0}, r3.Vector{X: 1, Y: 1, Z: 1})
	_, err := FitPlaneLeastSquares(cloud)
	test.That(t, errors.Is(err, ErrInsufficientPoints), test.ShouldBeTrue)
}

func TestFitPlaneDegenerateGeometry(t *testing.T) {
	// collinear points
	collinear := cloudFromVectors(t,
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 1, Y: 2, Z: 3},
		r3.Vector{X: 2, Y: 4, Z: 6},
		r3.Vector{X: 3, Y: 6, Z: 9},
	)
	_, err := FitPlaneLeastSquares(collinear)
	test.That(t, errors.Is(err, ErrDegenerateGeometry), test.ShouldBeTrue)

	// coincident points: the cloud dedupes positions, so feed the fitter directly
	_, err = fitPlaneToPoints([]r3.Vector{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}})
	test.That(t, errors.Is(err, ErrDegenerateGeometry), test.ShouldBeTrue)
}
