package custom

// Package custom builds the "custom" detection dataset format of mmdetection out of KITTI labels.
//
// The dataset is a JSON array, with one record per image:
//
//	[{"filename": "a.png", "width": 1242, "height": 375, "ann": {"bboxes": [[l,t,r,b], ...], "labels": [1, ...]}}, ...]
//
// Labels are 1-based indices into kitti.Classes, because 0 is background.

import (
	"fmt"

	"github.com/cyclopcam/dsconv/pkg/imagesize"
	"github.com/cyclopcam/dsconv/pkg/iox"
	"github.com/cyclopcam/dsconv/pkg/kitti"
	"github.com/cyclopcam/logs"
)

type Annotation struct {
	BBoxes [][4]float64 `json:"bboxes"` // [left, top, right, bottom]
	Labels []int        `json:"labels"`
}

type Record struct {
	Filename string     `json:"filename"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Ann      Annotation `json:"ann"`
}

type Options struct {
	KittiPath   string
	OutputFile  string
	SplitFile   string
	OutputCount int
}

// NewRecord decodes the image of the sample, and reads its labels.
// Objects that are not one of kitti.Classes are dropped. Occlusion is ignored.
func NewRecord(sample kitti.Sample) (Record, error) {
	width, height, err := imagesize.Decode(sample.ImageFile)
	if err != nil {
		return Record{}, err
	}
	objs, err := kitti.ReadLabelFile(sample.LabelFile)
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		Filename: sample.ImageFile,
		Width:    width,
		Height:   height,
		Ann: Annotation{
			BBoxes: [][4]float64{},
			Labels: []int{},
		},
	}
	for _, obj := range objs {
		label := kitti.CategoryID(obj.Type)
		if label == 0 {
			continue
		}
		rec.Ann.BBoxes = append(rec.Ann.BBoxes, obj.Box.LTRB())
		rec.Ann.Labels = append(rec.Ann.Labels, label)
	}
	return rec, nil
}

// FromKITTI creates one record per sample, in order
func FromKITTI(log logs.Log, samples []kitti.Sample) ([]Record, error) {
	records := make([]Record, 0, len(samples))
	nObjects := 0
	for _, sample := range samples {
		rec, err := NewRecord(sample)
		if err != nil {
			return nil, err
		}
		nObjects += len(rec.Ann.Labels)
		records = append(records, rec)
	}
	log.Infof("Converted %v images with %v objects", len(records), nObjects)
	return records, nil
}

// Convert reads a KITTI split directory, and writes a custom dataset JSON file.
// Nothing is written if any sample fails to convert.
func Convert(log logs.Log, opt Options) error {
	samples, err := kitti.LoadDataset(opt.KittiPath, opt.SplitFile, opt.OutputCount)
	if err != nil {
		return err
	}
	log.Infof("The number of output images will be %v", len(samples))
	records, err := FromKITTI(log, samples)
	if err != nil {
		return err
	}
	if err := iox.WriteJSONFile(opt.OutputFile, records); err != nil {
		return fmt.Errorf("Failed to write %v: %w", opt.OutputFile, err)
	}
	log.Infof("Wrote %v", opt.OutputFile)
	return nil
}
