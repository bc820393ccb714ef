package pointcloud

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Plane defines a planar object in a point cloud.
// The equation of a plane is Ax + By + Cz + D = 0, with (A, B, C) the normal vector.
type Plane interface {
	// Equation returns the plane equation as [4]float64{A, B, C, D}.
	Equation() [4]float64
	// Normal returns the normal vector (A, B, C) of the plane.
	Normal() r3.Vector
	// Center returns the center of the points that make up the plane.
	Center() r3.Vector
	// Offset returns the D term of the plane equation.
	Offset() float64
	// PointCloud returns the underlying point cloud of the plane.
	PointCloud() (PointCloud, error)
	// Distance returns the signed distance of the given point to the plane,
	// normalized by the magnitude of the normal vector.
	Distance(p r3.Vector) float64
	// Intersect returns the point of intersection of the plane with the line
	// defined by the two given points, or nil if the line is parallel to the plane.
	Intersect(p0, p1 r3.Vector) *r3.Vector
}

type pointPlane struct {
	cloud    PointCloud
	equation [4]float64
}

// NewPlane creates a Plane from a point cloud of points on it and its equation.
func NewPlane(cloud PointCloud, equation [4]float64) Plane {
	return &pointPlane{cloud: cloud, equation: equation}
}

// NewEmptyPlane initializes an empty plane object.
func NewEmptyPlane() Plane {
	return &pointPlane{cloud: New(), equation: [4]float64{}}
}

func (pp *pointPlane) Equation() [4]float64 {
	return pp.equation
}

func (pp *pointPlane) Normal() r3.Vector {
	return r3.Vector{X: pp.equation[0], Y: pp.equation[1], Z: pp.equation[2]}
}

func (pp *pointPlane) Center() r3.Vector {
	if pp.cloud == nil {
		return r3.Vector{}
	}
	return CloudCentroid(pp.cloud)
}

func (pp *pointPlane) Offset() float64 {
	return pp.equation[3]
}

func (pp *pointPlane) PointCloud() (PointCloud, error) {
	if pp.cloud == nil {
		return nil, errors.New("plane does not have an underlying point cloud")
	}
	return pp.cloud, nil
}

func (pp *pointPlane) Distance(p r3.Vector) float64 {
	norm := pp.Normal().Norm()
	if norm == 0 {
		return 0
	}
	return (pp.equation[0]*p.X + pp.equation[1]*p.Y + pp.equation[2]*p.Z + pp.equation[3]) / norm
}

func (pp *pointPlane) Intersect(p0, p1 r3.Vector) *r3.Vector {
	line := p1.Sub(p0)
	parallel := pp.Normal().Dot(line)
	if math.Abs(parallel) < 1e-10 { // the line is parallel to the plane
		return nil
	}
	w := pp.Normal().Dot(p0) + pp.equation[3]
	fraction := -w / parallel
	result := p0.Add(line.Mul(fraction))
	return &result
}
