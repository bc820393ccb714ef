package segmentation

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	pc "go.viam.com/planeseg/pointcloud"
	"go.viam.com/planeseg/utils"
)

// FitPlaneRobustParallel is FitPlaneRobust with the trials spread over
// parallel workers. Each trial draws its samples from a generator seeded with
// seed + the trial's index, and candidates are merged in trial-index order,
// so the output for a given seed does not depend on the level of parallelism
// or on scheduling: a strictly better score wins, the earliest trial wins
// ties.
func FitPlaneRobustParallel(
	ctx context.Context,
	cloud pc.PointCloud,
	threshold float64,
	iterations int,
	seed int64,
) (pc.Plane, error) {
	if err := validateRobustArgs(cloud, threshold, iterations); err != nil {
		return nil, err
	}

	positions := GetPointCloudPositions(cloud)

	equations := make([][4]float64, iterations)
	scores := make([]int, iterations)
	trialErrs := make([]error, iterations)

	err := utils.GroupWorkParallel(
		ctx,
		iterations,
		func(groupSize int) {},
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
				trialRand := rand.New(rand.NewSource(seed + int64(workNum)))
				equation, err := fitMinimalSample(positions, trialRand)
				if err != nil {
					if !errors.Is(err, ErrDegenerateGeometry) {
						trialErrs[workNum] = err
					}
					// a collinear sample scores zero and never becomes the incumbent
					return
				}
				equations[workNum] = equation
				scores[workNum] = countInliers(positions, equation, threshold)
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}
	if err := multierr.Combine(trialErrs...); err != nil {
		return nil, err
	}

	var bestEquation [4]float64
	bestScore := 0
	for i := 0; i < iterations; i++ {
		if scores[i] > bestScore {
			bestScore = scores[i]
			bestEquation = equations[i]
		}
	}

	plane, _, err := refitBestCandidate(cloud, positions, bestEquation, bestScore, threshold)
	return plane, err
}
