package segmentation

import (
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	pc "go.viam.com/planeseg/pointcloud"
	"go.viam.com/planeseg/utils"
)

// FitPlaneRobust estimates the dominant plane of the cloud with RANSAC:
// iterations rounds of fitting a plane to a random minimal sample of 3
// distinct points, scoring it by the number of points within threshold of it,
// and keeping the candidate with the strictly largest consensus set. The
// winner is then refit to its whole consensus set and that refit is returned;
// its underlying point cloud is the consensus set.
//
// The random generator is supplied by the caller, so a fixed seed yields a
// fixed sequence of samples and a fixed output.
func FitPlaneRobust(cloud pc.PointCloud, threshold float64, iterations int, r *rand.Rand) (pc.Plane, error) {
	plane, _, err := SegmentPlane(cloud, iterations, threshold, r)
	return plane, err
}

// SegmentPlane finds the biggest plane in the cloud the same way as
// FitPlaneRobust and additionally returns the remaining points as a second
// cloud. nIterations to choose? nIter = log(1-p)/log(1-(1-e)^s), where p is
// prob of success, e is outlier ratio, s is subset size (3 for a plane).
func SegmentPlane(cloud pc.PointCloud, nIterations int, threshold float64, r *rand.Rand) (pc.Plane, pc.PointCloud, error) {
	if err := validateRobustArgs(cloud, threshold, nIterations); err != nil {
		return nil, nil, err
	}
	if r == nil {
		return nil, nil, errors.Wrap(ErrInvalidParameter, "a random generator must be supplied")
	}

	positions := GetPointCloudPositions(cloud)

	var bestEquation [4]float64
	bestScore := 0

	for i := 0; i < nIterations; i++ {
		equation, err := fitMinimalSample(positions, r)
		if err != nil {
			if errors.Is(err, ErrDegenerateGeometry) {
				// collinear sample, cannot support a candidate; later rounds correct for it
				continue
			}
			return nil, nil, err
		}
		if score := countInliers(positions, equation, threshold); score > bestScore {
			bestScore = score
			bestEquation = equation
		}
	}

	return refitBestCandidate(cloud, positions, bestEquation, bestScore, threshold)
}

func validateRobustArgs(cloud pc.PointCloud, threshold float64, iterations int) error {
	if cloud.Size() < minPointsForPlane {
		return errors.Wrapf(ErrInsufficientPoints, "cloud has %d point(s), need at least %d", cloud.Size(), minPointsForPlane)
	}
	if threshold <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "threshold must be positive, got %v", threshold)
	}
	if iterations <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "iterations must be positive, got %d", iterations)
	}
	return nil
}

// fitMinimalSample draws 3 distinct random indices and fits a plane to
// exactly those points.
func fitMinimalSample(positions []r3.Vector, r *rand.Rand) ([4]float64, error) {
	sample := utils.SampleNDistinctIntRange(minPointsForPlane, 0, len(positions)-1, r)
	return fitPlaneToPoints([]r3.Vector{
		positions[sample[0]],
		positions[sample[1]],
		positions[sample[2]],
	})
}

// refitBestCandidate recomputes the winning candidate's consensus set, splits
// the cloud on it and refits the plane to the consensus set alone.
func refitBestCandidate(
	cloud pc.PointCloud,
	positions []r3.Vector,
	bestEquation [4]float64,
	bestScore int,
	threshold float64,
) (pc.Plane, pc.PointCloud, error) {
	if bestScore < minPointsForPlane {
		return nil, nil, errors.Wrapf(ErrDegenerateGeometry,
			"best consensus set has %d point(s), need at least %d to refit", bestScore, minPointsForPlane)
	}

	classification := classifyPositions(positions, bestEquation, threshold)

	planeCloud := pc.NewWithPrealloc(classification.InlierCount)
	nonPlaneCloud := pc.NewWithPrealloc(len(positions) - classification.InlierCount)
	inlierPositions := make([]r3.Vector, 0, classification.InlierCount)

	var setErr error
	i := 0
	cloud.Iterate(0, 0, func(p r3.Vector, d pc.Data) bool {
		if classification.Inliers[i] {
			inlierPositions = append(inlierPositions, p)
			setErr = planeCloud.Set(p, d)
		} else {
			setErr = nonPlaneCloud.Set(p, d)
		}
		i++
		return setErr == nil
	})
	if setErr != nil {
		return nil, nil, errors.Wrap(setErr, "error splitting the cloud on the consensus set")
	}

	finalEquation, err := fitPlaneToPoints(inlierPositions)
	if err != nil {
		return nil, nil, err
	}
	return pc.NewPlane(planeCloud, finalEquation), nonPlaneCloud, nil
}
