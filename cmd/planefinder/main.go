// Package main is a command that finds the dominant plane in a point cloud
// file and writes the cloud back out with inliers green and outliers red.
package main

import (
	"flag"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	pc "go.viam.com/planeseg/pointcloud"
	"go.viam.com/planeseg/segmentation"
)

var (
	inlierColor  = color.NRGBA{0, 255, 0, 255}
	outlierColor = color.NRGBA{255, 0, 0, 255}
)

func main() {
	threshold := flag.Float64("threshold", 10, "maximum distance to the plane for a point to belong to it")
	iterations := flag.Int("iterations", 2000, "number of RANSAC iterations")
	seed := flag.Int64("seed", 1, "seed for the RANSAC sampler")
	flag.Parse()
	logger := golog.NewLogger("planefinder")

	if flag.NArg() < 2 {
		logger.Fatal("need two args <in.pcd|in.las> <out.pcd>")
	}

	if err := findPlane(flag.Arg(0), flag.Arg(1), *threshold, *iterations, *seed, logger); err != nil {
		logger.Fatal(err)
	}
	os.Exit(0)
}

func findPlane(inFile, outFile string, threshold float64, iterations int, seed int64, logger golog.Logger) error {
	cloud, err := pc.NewFromFile(inFile, logger)
	if err != nil {
		return err
	}
	logger.Infow("loaded cloud", "file", inFile, "points", cloud.Size())

	// plane fitting results for the whole data, without robustification
	naive, err := segmentation.FitPlaneLeastSquares(cloud)
	if err != nil {
		return err
	}
	eq := naive.Equation()
	logger.Infof("least-squares plane: A:%f B:%f C:%f D:%f", eq[0], eq[1], eq[2], eq[3])

	robust, err := segmentation.FitPlaneRobust(cloud, threshold, iterations, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	eq = robust.Equation()
	logger.Infof("RANSAC plane: A:%f B:%f C:%f D:%f", eq[0], eq[1], eq[2], eq[3])

	classification, err := segmentation.ClassifyPoints(cloud, robust, threshold)
	if err != nil {
		return err
	}
	logger.Infow("classified cloud", "inliers", classification.InlierCount,
		"outliers", cloud.Size()-classification.InlierCount)

	colored, err := colorByClassification(cloud, classification)
	if err != nil {
		return err
	}

	//nolint:gosec
	out, err := os.Create(filepath.Clean(outFile))
	if err != nil {
		return err
	}
	if err := pc.ToPCD(colored, out, pc.PCDBinary); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// colorByClassification returns a copy of the cloud with inliers green and
// outliers red.
func colorByClassification(cloud pc.PointCloud, classification *segmentation.Classification) (pc.PointCloud, error) {
	colored := pc.NewWithPrealloc(cloud.Size())
	var err error
	i := 0
	cloud.Iterate(0, 0, func(p r3.Vector, d pc.Data) bool {
		c := outlierColor
		if classification.Inliers[i] {
			c = inlierColor
		}
		i++
		err = colored.Set(p, pc.NewColoredData(c))
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return colored, nil
}
