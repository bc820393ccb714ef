package pointcloud

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// CloudCentroid returns the centroid of a pointcloud as a vector.
func CloudCentroid(pc PointCloud) r3.Vector {
	if pc.Size() == 0 {
		// cloudCentroid of an empty cloud is not well defined
		return r3.Vector{}
	}
	meta := pc.MetaData()
	return r3.Vector{
		X: meta.totalX / float64(pc.Size()),
		Y: meta.totalY / float64(pc.Size()),
		Z: meta.totalZ / float64(pc.Size()),
	}
}

// CloudContains checks if the given cloud has a point at the given position.
func CloudContains(cloud PointCloud, x, y, z float64) bool {
	_, got := cloud.At(x, y, z)
	return got
}

// CloudMatrixCol is a type that represents the columns of a CloudMatrix.
type CloudMatrixCol int

const (
	// CloudMatrixColX is the x column in the cloud matrix.
	CloudMatrixColX CloudMatrixCol = 0
	// CloudMatrixColY is the y column in the cloud matrix.
	CloudMatrixColY CloudMatrixCol = 1
	// CloudMatrixColZ is the z column in the cloud matrix.
	CloudMatrixColZ CloudMatrixCol = 2
	// CloudMatrixColR is the r column in the cloud matrix.
	CloudMatrixColR CloudMatrixCol = 3
	// CloudMatrixColG is the g column in the cloud matrix.
	CloudMatrixColG CloudMatrixCol = 4
	// CloudMatrixColB is the b column in the cloud matrix.
	CloudMatrixColB CloudMatrixCol = 5
	// CloudMatrixColV is the value column in the cloud matrix.
	CloudMatrixColV CloudMatrixCol = 6
)

// CloudMatrix Returns a Matrix representation of a Cloud along with a Header list.
// The Header list is a list of CloudMatrixCols that correspond to the columns in the matrix.
// CloudMatrix is not guaranteed to return points in the same order as the cloud.
func CloudMatrix(pc PointCloud) (*mat.Dense, []CloudMatrixCol) {
	if pc.Size() == 0 {
		return nil, nil
	}
	header := []CloudMatrixCol{CloudMatrixColX, CloudMatrixColY, CloudMatrixColZ}
	pointSize := 3 // x, y, z
	if pc.MetaData().HasColor {
		header = append(header, CloudMatrixColR, CloudMatrixColG, CloudMatrixColB)
		pointSize += 3
	}
	if pc.MetaData().HasValue {
		header = append(header, CloudMatrixColV)
		pointSize++
	}

	matData := make([]float64, 0, pc.Size()*pointSize)
	pc.Iterate(0, 0, func(p r3.Vector, d Data) bool {
		matData = append(matData, p.X, p.Y, p.Z)
		if pc.MetaData().HasColor {
			r, g, b := d.RGB255()
			matData = append(matData, float64(r), float64(g), float64(b))
		}
		if pc.MetaData().HasValue {
			matData = append(matData, float64(d.Value()))
		}
		return true
	})
	return mat.NewDense(pc.Size(), pointSize, matData), header
}
