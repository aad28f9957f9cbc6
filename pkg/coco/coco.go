package coco

// Package coco builds COCO object detection datasets out of KITTI labels.
//
// The output follows the COCO "instances" JSON layout:
//
//	{"info": {...}, "images": [...], "annotations": [...], "categories": [...]}
//
// Licenses and segmentation masks are not produced.

type Info struct {
	Year        int    `json:"year"`
	Description string `json:"description"`
}

type Image struct {
	ID       int    `json:"id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FileName string `json:"file_name"`
}

type Annotation struct {
	ID           int         `json:"id"`
	ImageID      int         `json:"image_id"`
	CategoryID   int         `json:"category_id"`
	Segmentation [][]float64 `json:"segmentation"` // Always empty, because KITTI only has boxes
	Area         float64     `json:"area"`
	BBox         [4]float64  `json:"bbox"` // [x, y, width, height]
	IsCrowd      int         `json:"iscrowd"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Dataset struct {
	Info        Info         `json:"info"`
	Images      []Image      `json:"images"`
	Annotations []Annotation `json:"annotations"`
	Categories  []Category   `json:"categories"`
}

// Categories returns one category per class, with 1-based ids in list order
func Categories(classes []string) []Category {
	cats := make([]Category, len(classes))
	for i, name := range classes {
		cats[i] = Category{
			ID:   i + 1,
			Name: name,
		}
	}
	return cats
}
