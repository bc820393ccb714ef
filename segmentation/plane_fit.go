// Package segmentation implements plane fitting and inlier/outlier separation
// for 3D point clouds.
package segmentation

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	pc "go.viam.com/planeseg/pointcloud"
)

// A plane is determined by 3 points, so any fit needs at least that many.
const minPointsForPlane = 3

// A fit is degenerate when the two smallest eigenvalues of the scatter matrix
// cannot be told apart: the direction of least variance is then ambiguous.
const degenerateEigenRatio = 1e-12

// GetPointCloudPositions extracts the positions of the points from the
// pointcloud into a Vector slice, in cloud iteration order.
func GetPointCloudPositions(cloud pc.PointCloud) []r3.Vector {
	positions := make([]r3.Vector, 0, cloud.Size())
	cloud.Iterate(0, 0, func(p r3.Vector, d pc.Data) bool {
		positions = append(positions, p)
		return true
	})
	return positions
}

// FitPlaneLeastSquares fits a plane to all points of the given cloud in the
// total-least-squares sense, minimizing the sum of squared point-plane
// distances. The returned plane passes through the centroid of the cloud and
// its normal vector has unit magnitude; the sign of the normal is arbitrary.
func FitPlaneLeastSquares(cloud pc.PointCloud) (pc.Plane, error) {
	positions := GetPointCloudPositions(cloud)
	equation, err := fitPlaneToPoints(positions)
	if err != nil {
		return nil, err
	}
	return pc.NewPlane(cloud, equation), nil
}

// fitPlaneToPoints computes the least-squares plane equation of a point set.
// The normal is the eigenvector associated with the smallest eigenvalue of the
// scatter matrix of the centered points, i.e. the direction of least variance.
func fitPlaneToPoints(points []r3.Vector) ([4]float64, error) {
	n := len(points)
	if n < minPointsForPlane {
		return [4]float64{}, errors.Wrapf(ErrInsufficientPoints, "got %d point(s), need at least %d", n, minPointsForPlane)
	}

	var centroid r3.Vector
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1. / float64(n))

	centered := mat.NewDense(n, 3, nil)
	for i, p := range points {
		centered.Set(i, 0, p.X-centroid.X)
		centered.Set(i, 1, p.Y-centroid.Y)
		centered.Set(i, 2, p.Z-centroid.Z)
	}

	var scatter mat.SymDense
	scatter.SymOuterK(1, centered.T())

	var eigen mat.EigenSym
	if !eigen.Factorize(&scatter, true) {
		return [4]float64{}, errors.Wrap(ErrDegenerateGeometry, "eigendecomposition of the scatter matrix failed")
	}
	eigenvalues := eigen.Values(nil)
	// eigenvalues are in ascending order; the scatter matrix is positive
	// semi-definite so all of them are non-negative up to roundoff
	if eigenvalues[2] <= 0 || eigenvalues[1] <= degenerateEigenRatio*eigenvalues[2] {
		return [4]float64{}, errors.Wrap(ErrDegenerateGeometry, "points are collinear or coincident")
	}

	var eigenvectors mat.Dense
	eigen.VectorsTo(&eigenvectors)
	normal := r3.Vector{
		X: eigenvectors.At(0, 0),
		Y: eigenvectors.At(1, 0),
		Z: eigenvectors.At(2, 0),
	}

	offset := -normal.Dot(centroid)
	return [4]float64{normal.X, normal.Y, normal.Z, offset}, nil
}
