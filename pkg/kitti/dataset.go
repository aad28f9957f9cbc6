package kitti

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var ErrSampleMismatch = errors.New("image and label files do not match")

// Sample is one image of a KITTI split, and its label file
type Sample struct {
	Stem      string // eg "000123"
	ImageFile string // full path to the image
	LabelFile string // full path to the label file
}

// Stem returns the file name up to the first dot, eg "000123.png" -> "000123"
func Stem(filename string) string {
	name := filepath.Base(filename)
	stem, _, _ := strings.Cut(name, ".")
	return stem
}

// ListFiles returns the sorted names of the regular files in dir/image_2 and dir/label_2.
// Names are sorted by byte order, so "10.png" comes before "9.png".
func ListFiles(dir string) (images, labels []string, err error) {
	images, err = listDir(filepath.Join(dir, DirImages))
	if err != nil {
		return nil, nil, err
	}
	labels, err = listDir(filepath.Join(dir, DirLabels))
	if err != nil {
		return nil, nil, err
	}
	return images, labels, nil
}

func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// PairSamples applies the inclusion mask to the sorted image and label lists, pairs them up, and
// returns at most outputCount samples.
// The mask is positional over the sorted lists, so it must have the same length as both of them.
// After filtering, every image must have a label file with the same stem, at the same position.
func PairSamples(dir string, images, labels []string, mask []bool, outputCount int) ([]Sample, error) {
	if len(images) != len(labels) {
		return nil, fmt.Errorf("%w: %v has %v images, but %v has %v label files", ErrSampleMismatch,
			filepath.Join(dir, DirImages), len(images), filepath.Join(dir, DirLabels), len(labels))
	}
	if len(mask) != len(images) {
		return nil, fmt.Errorf("Split mask has %v entries, but there are %v images", len(mask), len(images))
	}
	selected := func(_ string, i int) bool { return mask[i] }
	images = lo.Filter(images, selected)
	labels = lo.Filter(labels, selected)

	outputCount = max(0, min(outputCount, len(images)))
	samples := make([]Sample, 0, outputCount)
	for i := 0; i < outputCount; i++ {
		stem := Stem(images[i])
		if Stem(labels[i]) != stem {
			return nil, fmt.Errorf("%w: image %v is paired with label file %v", ErrSampleMismatch, images[i], labels[i])
		}
		samples = append(samples, Sample{
			Stem:      stem,
			ImageFile: filepath.Join(dir, DirImages, images[i]),
			LabelFile: filepath.Join(dir, DirLabels, labels[i]),
		})
	}
	return samples, nil
}

// LoadDataset lists the samples of a KITTI split directory, selecting only the samples in
// splitFile (or all samples if splitFile is empty), and returning at most outputCount of them.
func LoadDataset(dir, splitFile string, outputCount int) ([]Sample, error) {
	images, labels, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	mask, err := ReadSplitMask(splitFile, len(images))
	if err != nil {
		return nil, err
	}
	return PairSamples(dir, images, labels, mask, outputCount)
}
