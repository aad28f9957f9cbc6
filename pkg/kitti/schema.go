package kitti

// Package kitti reads and writes the KITTI 2D object detection label format.
//
// A KITTI split directory looks like this:
//
//	training/
//	  image_2/000000.png, 000001.png, ...
//	  label_2/000000.txt, 000001.txt, ...
//
// Each label file has one object per line, with space separated fields:
//
//	type truncated occluded alpha left top right bottom h w l x y z rotation_y [score]

// Classes are the object types that we convert. Other types (eg 'Misc' or 'DontCare') are dropped.
// Category/label ids are 1-based indices into this list, because 0 is reserved for background.
var Classes = []string{"Car", "Van", "Truck", "Pedestrian", "Person_sitting", "Cyclist", "Tram"}

// Occlusion states
const (
	OccludedFullyVisible = 0
	OccludedPartly       = 1
	OccludedLargely      = 2
	OccludedUnknown      = 3
)

// Objects that are more occluded than this are unreliable, and are excluded from COCO output.
// This matches the KITTI evaluation, which drops them even for the 'hard' difficulty.
const MaxOccluded = OccludedLargely

const (
	DirImages          = "image_2"
	DirLabels          = "label_2"
	LabelFileExtension = ".txt"
)

const (
	minFields           = 8  // type, truncated, occluded, alpha, bbox
	fullFields          = 15 // ... + dimensions, location, rotation_y
	fullFieldsWithScore = 16
)

// Values written for fields that a 2D detector knows nothing about
const (
	placeholderTruncated = -1
	placeholderOccluded  = -1
	placeholderAlpha     = -10
	placeholderDimension = -1
	placeholderLocation  = -1000
	placeholderRotationY = -10
)

// ClassIndex returns the 0-based index of the class in Classes
func ClassIndex(class string) (int, bool) {
	for i, c := range Classes {
		if c == class {
			return i, true
		}
	}
	return -1, false
}

// CategoryID returns the 1-based id of the class, or 0 (background) if the class is not one of Classes
func CategoryID(class string) int {
	i, ok := ClassIndex(class)
	if !ok {
		return 0
	}
	return i + 1
}
