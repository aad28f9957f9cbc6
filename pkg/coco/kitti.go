package coco

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cyclopcam/dsconv/pkg/imagesize"
	"github.com/cyclopcam/dsconv/pkg/iox"
	"github.com/cyclopcam/dsconv/pkg/kitti"
	"github.com/cyclopcam/logs"
)

type Options struct {
	KittiPath   string           // KITTI split directory, containing image_2 and label_2
	OutputFile  string           // JSON file to write
	SplitFile   string           // Optional label split file
	OutputCount int              // Upper bound on the number of images
	Now         func() time.Time // Override the clock (for tests). nil = time.Now
}

// NewDataset creates an empty dataset with the KITTI categories.
// outputCount is the actual number of images that will be added, and is only used for the description.
func NewDataset(opt Options, outputCount int) *Dataset {
	now := time.Now
	if opt.Now != nil {
		now = opt.Now
	}
	splitFile := opt.SplitFile
	if splitFile == "" {
		splitFile = "none"
	}
	return &Dataset{
		Info: Info{
			Year: now().Year(),
			Description: fmt.Sprintf("Transformed from KITTI dataset with kitti_path: %v, output_path: %v, label_split_file: %v, output_count: %v",
				opt.KittiPath, opt.OutputFile, splitFile, outputCount),
		},
		Images:      []Image{},
		Annotations: []Annotation{},
		Categories:  Categories(kitti.Classes),
	}
}

// ImageID parses the numeric stem of a KITTI file name, eg "000123.png" -> 123
func ImageID(filename string) (int, error) {
	stem := kitti.Stem(filename)
	id, err := strconv.Atoi(stem)
	if err != nil {
		return 0, fmt.Errorf("Image file name %v is not numeric, so it can't be used as a COCO image id", filename)
	}
	return id, nil
}

// AddSample appends the image and its annotations to the dataset.
// Annotation ids are assigned sequentially, starting at nextID.
// Returns the next unused annotation id.
func (d *Dataset) AddSample(sample kitti.Sample, nextID int) (int, error) {
	imageID, err := ImageID(sample.ImageFile)
	if err != nil {
		return nextID, err
	}
	width, height, err := imagesize.ReadConfig(sample.ImageFile)
	if err != nil {
		return nextID, err
	}
	objs, err := kitti.ReadLabelFile(sample.LabelFile)
	if err != nil {
		return nextID, err
	}

	d.Images = append(d.Images, Image{
		ID:       imageID,
		Width:    width,
		Height:   height,
		FileName: sample.ImageFile,
	})

	for _, obj := range objs {
		categoryID := kitti.CategoryID(obj.Type)
		if categoryID == 0 || obj.Occluded > kitti.MaxOccluded {
			continue
		}
		d.Annotations = append(d.Annotations, Annotation{
			ID:           nextID,
			ImageID:      imageID,
			CategoryID:   categoryID,
			Segmentation: [][]float64{},
			Area:         obj.Box.Area(),
			BBox:         obj.Box.XYWH(),
			IsCrowd:      0,
		})
		nextID++
	}
	return nextID, nil
}

// FromKITTI builds a COCO dataset out of the given samples, in order.
// Returns the dataset and the number of annotations, which is also the next unused annotation id.
func FromKITTI(log logs.Log, samples []kitti.Sample, opt Options) (*Dataset, int, error) {
	ds := NewDataset(opt, len(samples))
	nextID := 0
	for _, sample := range samples {
		var err error
		if nextID, err = ds.AddSample(sample, nextID); err != nil {
			return nil, 0, err
		}
	}
	log.Infof("Converted %v images with %v annotations", len(ds.Images), len(ds.Annotations))
	return ds, nextID, nil
}

// Convert reads a KITTI split directory, and writes a COCO JSON file.
// Nothing is written if any sample fails to convert.
func Convert(log logs.Log, opt Options) error {
	samples, err := kitti.LoadDataset(opt.KittiPath, opt.SplitFile, opt.OutputCount)
	if err != nil {
		return err
	}
	log.Infof("The number of output images will be %v", len(samples))
	ds, _, err := FromKITTI(log, samples, opt)
	if err != nil {
		return err
	}
	if err := iox.WriteJSONFile(opt.OutputFile, ds); err != nil {
		return fmt.Errorf("Failed to write %v: %w", opt.OutputFile, err)
	}
	log.Infof("Wrote %v", opt.OutputFile)
	return nil
}
