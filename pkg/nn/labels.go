package nn

import "fmt"

// Number of columns in a detector output row: left, top, right, bottom, score
const TableColumns = 5

// ObjectDetection is an object that a neural network has found in an image
type ObjectDetection struct {
	Confidence float64 `json:"confidence"`
	Box        Box     `json:"box"`
}

// Table is the raw detector output for one class of one image.
// Each row is [left, top, right, bottom, score].
type Table [][]float64

// Validate returns an error if any row does not have exactly TableColumns values
func (t Table) Validate() error {
	for i, row := range t {
		if len(row) != TableColumns {
			return fmt.Errorf("row %v has %v columns, expected %v", i, len(row), TableColumns)
		}
	}
	return nil
}

// Detections converts the table rows into ObjectDetection values, in row order
func (t Table) Detections() ([]ObjectDetection, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	dets := make([]ObjectDetection, 0, len(t))
	for _, row := range t {
		dets = append(dets, ObjectDetection{
			Confidence: row[4],
			Box:        NewBox(row[0], row[1], row[2], row[3]),
		})
	}
	return dets, nil
}
