package segmentation

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	pc "go.viam.com/planeseg/pointcloud"
)

// Classification is the per-point result of separating a cloud against a
// plane. Distances and Inliers are aligned by index with the cloud's
// iteration order; InlierCount is the number of true Inliers flags.
type Classification struct {
	Distances   []float64
	Inliers     []bool
	InlierCount int
}

// ClassifyPoints computes the distance of every point in the cloud to the
// given plane and flags the points closer than the threshold as inliers.
// A point exactly at the threshold is an outlier. The plane's normal is
// assumed to already have unit magnitude; it is not re-validated here.
func ClassifyPoints(cloud pc.PointCloud, plane pc.Plane, threshold float64) (*Classification, error) {
	if threshold <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "threshold must be positive, got %v", threshold)
	}
	return classifyPositions(GetPointCloudPositions(cloud), plane.Equation(), threshold), nil
}

// classifyPositions is the allocation-conscious core of ClassifyPoints reused
// by the RANSAC trial loop.
func classifyPositions(positions []r3.Vector, equation [4]float64, threshold float64) *Classification {
	result := &Classification{
		Distances: make([]float64, len(positions)),
		Inliers:   make([]bool, len(positions)),
	}
	for i, p := range positions {
		dist := math.Abs(equation[0]*p.X + equation[1]*p.Y + equation[2]*p.Z + equation[3])
		result.Distances[i] = dist
		if dist < threshold {
			result.Inliers[i] = true
			result.InlierCount++
		}
	}
	return result
}

// countInliers scores a candidate plane without materializing distances.
func countInliers(positions []r3.Vector, equation [4]float64, threshold float64) int {
	count := 0
	for _, p := range positions {
		dist := math.Abs(equation[0]*p.X + equation[1]*p.Y + equation[2]*p.Z + equation[3])
		if dist < threshold {
			count++
		}
	}
	return count
}
