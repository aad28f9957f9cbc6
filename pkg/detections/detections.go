package detections

// Package detections converts the test results of an mmdetection model into KITTI label files.
//
// The results are a list with one entry per test image. Each entry is a list with one table
// per class, and each table has one row per detected object: [left, top, right, bottom, score].
// mmdetection saves this as a pickle of numpy arrays, which we can't read from Go, so we
// read the same structure as JSON instead (eg json.dump of [[a.tolist() for a in r] for r in results]).

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cyclopcam/dsconv/pkg/iox"
	"github.com/cyclopcam/dsconv/pkg/kitti"
	"github.com/cyclopcam/dsconv/pkg/nn"
	"github.com/cyclopcam/logs"
	"github.com/samber/lo"
)

var ErrClassCountMismatch = errors.New("number of result tables does not match number of classes")

// Results holds the detector output of every sample, in test order
type Results [][]nn.Table

// LoadResults reads detector results from a JSON file (optionally gzipped, with a .gz suffix)
func LoadResults(filename string) (Results, error) {
	r, err := iox.OpenReader(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	results := Results{}
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("Failed to decode detection results %v: %w", filename, err)
	}
	return results, nil
}

// Validate checks that every sample has one table per class, and that every row has 5 columns
func (r Results) Validate(numClasses int) error {
	for i, tables := range r {
		if len(tables) != numClasses {
			return fmt.Errorf("%w: sample %v has %v tables, but there are %v classes", ErrClassCountMismatch, i, len(tables), numClasses)
		}
		for c, table := range tables {
			if err := table.Validate(); err != nil {
				return fmt.Errorf("Sample %v, class %v: %w", i, c, err)
			}
		}
	}
	return nil
}

// LabelFilename returns the KITTI label file name of the i'th sample, eg 7 -> dir/000007.txt
func LabelFilename(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("%06d%v", i, kitti.LabelFileExtension))
}

// Objects returns the detections of one sample whose score is strictly greater than threshold.
// Objects are grouped by class, in class order, and then in row order.
func Objects(tables []nn.Table, classNames []string, threshold float64) ([]kitti.Object, error) {
	if len(tables) != len(classNames) {
		return nil, fmt.Errorf("%w: %v tables, %v classes", ErrClassCountMismatch, len(tables), len(classNames))
	}
	objs := []kitti.Object{}
	for c, table := range tables {
		dets, err := table.Detections()
		if err != nil {
			return nil, err
		}
		strong := lo.Filter(dets, func(d nn.ObjectDetection, _ int) bool {
			return d.Confidence > threshold
		})
		for _, d := range strong {
			objs = append(objs, kitti.NewDetection(classNames[c], d.Box, d.Confidence))
		}
	}
	return objs, nil
}

// WriteKITTI writes one label file per sample into outputDir, which is created if necessary.
// The i'th sample is written to 000000i.txt, so the results must be in the same order as the test images.
// A file is written for every sample, even if it has no detections above the threshold.
// The results are validated before anything is written.
// Returns the number of objects written.
func WriteKITTI(log logs.Log, results Results, outputDir string, threshold float64, classNames []string) (int, error) {
	if err := results.Validate(len(classNames)); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, err
	}
	nObjects := 0
	for i, tables := range results {
		objs, err := Objects(tables, classNames, threshold)
		if err != nil {
			return nObjects, err
		}
		filename := LabelFilename(outputDir, i)
		if err := kitti.WriteLabelFile(filename, objs); err != nil {
			return nObjects, fmt.Errorf("Failed to write %v: %w", filename, err)
		}
		nObjects += len(objs)
	}
	log.Infof("Wrote %v label files with %v objects to %v", len(results), nObjects, outputDir)
	return nObjects, nil
}

// Convert loads the results file, and writes the KITTI label files
func Convert(log logs.Log, resultFile, outputDir string, threshold float64, classNames []string) error {
	results, err := LoadResults(resultFile)
	if err != nil {
		return err
	}
	log.Infof("Loaded results of %v samples from %v", len(results), resultFile)
	_, err = WriteKITTI(log, results, outputDir, threshold, classNames)
	return err
}
