package dsdoc

// Tool and flag names. The flag names match the original Python tools, so that
// existing scripts only need the binary name changed.
const (
	ToolKitti2Coco   = "kitti2coco"
	ToolKitti2Custom = "kitti2custom"
	ToolMmdet2Kitti  = "mmdet2kitti"
	ToolKittiViz     = "kittiviz"
	ToolHelp         = "dshelp"
)

var Default = NewDefaultRegistry()

func kittiInputFlags() []*Topic {
	return []*Topic{
		{Name: "kitti_path", Summary: "Path to a KITTI training or test directory, containing image_2 and label_2"},
		{Name: "output_file", Summary: "Output JSON file"},
		{Name: "label_split_file", Summary: "Optional text file with one sample index per line. Only these samples are converted."},
		{Name: "output_count", Summary: "Upper bound on the number of images to convert"},
	}
}

// NewDefaultRegistry creates a registry with the documentation of all our tools and formats
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&Topic{
		Name:    ToolKitti2Coco,
		Summary: "Convert a KITTI 2D detection dataset into a COCO detection dataset",
		Doc: `
Images and label files are sorted by name, and paired up. Every image must have a
label file with the same stem. The image file name must be numeric, because it is
used as the COCO image id.

Only objects of the classes Car, Van, Truck, Pedestrian, Person_sitting, Cyclist and
Tram are converted, and objects with occluded > 2 are dropped. Category ids are
1-based, in that order.

Example:
  kitti2coco --kitti_path kitti/training --output_file train.json --label_split_file train.txt --output_count 1000`,
		Children: kittiInputFlags(),
	})
	r.Register(&Topic{
		Name:    ToolKitti2Custom,
		Summary: "Convert a KITTI 2D detection dataset into an mmdetection 'custom' dataset",
		Doc: `
Produces a JSON array with one record per image:
  {"filename": ..., "width": ..., "height": ..., "ann": {"bboxes": [[l,t,r,b], ...], "labels": [...]}}

Labels are 1-based indices into Car, Van, Truck, Pedestrian, Person_sitting, Cyclist, Tram.
Occluded objects are kept.

Example:
  kitti2custom --kitti_path kitti/training --output_file train.json --output_count 1000`,
		Children: kittiInputFlags(),
	})
	r.Register(&Topic{
		Name:    ToolMmdet2Kitti,
		Summary: "Convert mmdetection test results into KITTI label files",
		Doc: `
The results file is a JSON list with one entry per test image. Each entry is a list of
tables, one per class, and each table is a list of [left, top, right, bottom, score] rows.
Export the mmdetection pickle with:
  json.dump([[a.tolist() for a in r] for r in results], f)

Label files are named 000000.txt, 000001.txt, ... in the order of the results, and a
file is created for every image, even when it has no detections.

Example:
  mmdet2kitti --result_file results.json --output_dir_path pred/data --score_threshold 0.4`,
		Children: []*Topic{
			{Name: "result_file", Summary: "JSON file with detection results (.json or .json.gz)"},
			{Name: "output_dir_path", Summary: "Directory to write KITTI label files into. Created if necessary."},
			{Name: "score_threshold", Summary: "Only detections with a score greater than this are written"},
			{Name: "class_names", Summary: "Comma-separated class names, in the order of the detector's output tables"},
			{Name: "class_file", Summary: "Text file with one class name per line. Overrides class_names."},
		},
	})
	r.Register(&Topic{
		Name:    ToolKittiViz,
		Summary: "Draw the boxes of a KITTI label file onto its image",
		Doc: `
Example:
  kittiviz --image image_2/000000.png --label label_2/000000.txt --output 000000-boxes.png`,
		Children: []*Topic{
			{Name: "image", Summary: "Input image"},
			{Name: "label", Summary: "KITTI label file"},
			{Name: "output", Summary: "Output image. The format is chosen from the extension."},
		},
	})
	r.Register(&Topic{
		Name:    ToolHelp,
		Summary: "Show help for a tool or format, eg 'dshelp kitti2coco' or 'dshelp kitti.label.occluded'",
	})
	r.Register(&Topic{
		Name:    "kitti",
		Summary: "KITTI 2D object detection format",
		Doc: `
  training/
    image_2/000000.png, 000001.png, ...
    label_2/000000.txt, 000001.txt, ...`,
		Children: []*Topic{
			{
				Name:    "label",
				Summary: "One object per line, fields separated by spaces",
				Children: []*Topic{
					{Name: "type", Summary: "Car, Van, Truck, Pedestrian, Person_sitting, Cyclist, Tram, Misc or DontCare"},
					{Name: "truncated", Summary: "Float from 0 (non-truncated) to 1 (truncated), where truncated means leaving the image"},
					{Name: "occluded", Summary: "0 = fully visible, 1 = partly occluded, 2 = largely occluded, 3 = unknown"},
					{Name: "alpha", Summary: "Observation angle of object, [-pi..pi]"},
					{Name: "bbox", Summary: "2D bounding box in pixels: left, top, right, bottom"},
					{Name: "dimensions", Summary: "3D object dimensions: height, width, length (meters)"},
					{Name: "location", Summary: "3D object location x, y, z in camera coordinates (meters)"},
					{Name: "rotation_y", Summary: "Rotation around the Y axis in camera coordinates, [-pi..pi]"},
					{Name: "score", Summary: "Only for results: confidence of the detection, higher is better"},
				},
			},
		},
	})
	r.Register(&Topic{
		Name:    "coco",
		Summary: "COCO detection format: {info, images, annotations, categories}",
		Children: []*Topic{
			{Name: "image", Summary: "{id, width, height, file_name}"},
			{Name: "annotation", Summary: "{id, image_id, category_id, segmentation, area, bbox: [x, y, width, height], iscrowd}"},
			{Name: "category", Summary: "{id, name}, with 1-based ids"},
		},
	})
	return r
}
