package segmentation

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	pc "go.viam.com/planeseg/pointcloud"
)

// SplitPointCloudByPlane divides the point cloud in two point clouds, given the equation of a plane.
// One point cloud will have all the points above the plane and the other with all the points below the plane.
// Points exactly on the plane are not included!
func SplitPointCloudByPlane(cloud pc.PointCloud, plane pc.Plane) (pc.PointCloud, pc.PointCloud, error) {
	aboveCloud, belowCloud := pc.New(), pc.New()
	var err error
	cloud.Iterate(0, 0, func(p r3.Vector, d pc.Data) bool {
		dist := plane.Distance(p)
		if plane.Equation()[2] > 0.0 {
			dist = -dist
		}
		if dist > 0.0 {
			err = aboveCloud.Set(p, d)
		} else if dist < 0.0 {
			err = belowCloud.Set(p, d)
		}
		return err == nil
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "error splitting the cloud by the plane")
	}
	return aboveCloud, belowCloud, nil
}

// ThresholdPointCloudByPlane returns a pointcloud with the points less than or equal to a given distance from a given plane.
func ThresholdPointCloudByPlane(cloud pc.PointCloud, plane pc.Plane, threshold float64) (pc.PointCloud, error) {
	thresholdCloud := pc.New()
	var err error
	cloud.Iterate(0, 0, func(p r3.Vector, d pc.Data) bool {
		dist := plane.Distance(p)
		if math.Abs(dist) <= threshold {
			err = thresholdCloud.Set(p, d)
		}
		return err == nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "error thresholding the cloud by the plane")
	}
	return thresholdCloud, nil
}
