package kitti

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cyclopcam/dsconv/pkg/iox"
	"github.com/cyclopcam/dsconv/pkg/nn"
)

// Object is one line of a KITTI label file
type Object struct {
	Type       string
	Truncated  float64 // 0 (non-truncated) to 1 (truncated)
	Occluded   int     // One of the Occluded* constants
	Alpha      float64 // Observation angle [-pi..pi]
	Box        nn.Box
	Dimensions [3]float64 // height, width, length (meters)
	Location   [3]float64 // x, y, z in camera coordinates (meters)
	RotationY  float64
	Score      float64 // Only valid if HasScore is true (detection results)
	HasScore   bool
}

// NewDetection creates an object from 2D detector output.
// All of the 3D fields are set to the KITTI "don't know" placeholders.
func NewDetection(class string, box nn.Box, score float64) Object {
	return Object{
		Type:       class,
		Truncated:  placeholderTruncated,
		Occluded:   placeholderOccluded,
		Alpha:      placeholderAlpha,
		Box:        box,
		Dimensions: [3]float64{placeholderDimension, placeholderDimension, placeholderDimension},
		Location:   [3]float64{placeholderLocation, placeholderLocation, placeholderLocation},
		RotationY:  placeholderRotationY,
		Score:      score,
		HasScore:   true,
	}
}

// IsKnownClass returns true if the object's type is one of Classes
func (o Object) IsKnownClass() bool {
	_, ok := ClassIndex(o.Type)
	return ok
}

// String formats the object as a KITTI label line, without a trailing newline
func (o Object) String() string {
	fields := make([]string, 0, fullFieldsWithScore)
	fields = append(fields,
		o.Type,
		formatFloat(o.Truncated),
		strconv.Itoa(o.Occluded),
		formatFloat(o.Alpha),
		formatFloat(o.Box.Left),
		formatFloat(o.Box.Top),
		formatFloat(o.Box.Right),
		formatFloat(o.Box.Bottom),
	)
	for _, v := range o.Dimensions {
		fields = append(fields, formatFloat(v))
	}
	for _, v := range o.Location {
		fields = append(fields, formatFloat(v))
	}
	fields = append(fields, formatFloat(o.RotationY))
	if o.HasScore {
		fields = append(fields, formatFloat(o.Score))
	}
	return strings.Join(fields, " ")
}

// ParseObject parses a single KITTI label line.
// A line must have at least the 8 fields up to and including the 2D bounding box.
// The 3D fields are optional, but if present, then all of them must be present.
func ParseObject(line string) (Object, error) {
	fields := strings.Fields(line)
	n := len(fields)
	if n < minFields || (n > minFields && n < fullFields) || n > fullFieldsWithScore {
		return Object{}, fmt.Errorf("Invalid KITTI label line, %v fields: %q", n, line)
	}
	p := fieldParser{fields: fields}
	obj := Object{
		Type:      fields[0],
		Truncated: p.float(1, "truncated"),
		Occluded:  p.int(2, "occluded"),
		Alpha:     p.float(3, "alpha"),
		Box:       nn.NewBox(p.float(4, "left"), p.float(5, "top"), p.float(6, "right"), p.float(7, "bottom")),
	}
	if n >= fullFields {
		for i := 0; i < 3; i++ {
			obj.Dimensions[i] = p.float(8+i, "dimensions")
			obj.Location[i] = p.float(11+i, "location")
		}
		obj.RotationY = p.float(14, "rotation_y")
	}
	if n == fullFieldsWithScore {
		obj.Score = p.float(15, "score")
		obj.HasScore = true
	}
	if p.err != nil {
		return Object{}, fmt.Errorf("Invalid KITTI label line %q: %w", line, p.err)
	}
	return obj, nil
}

// ReadLabelFile parses every object in a KITTI label file.
// Blank lines are skipped. Any malformed line fails the whole file.
func ReadLabelFile(filename string) ([]Object, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	objs := []Object{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		obj, err := ParseObject(line)
		if err != nil {
			return nil, fmt.Errorf("%v:%v: %w", filename, lineNo, err)
		}
		objs = append(objs, obj)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Failed to read %v: %w", filename, err)
	}
	return objs, nil
}

// WriteLabelFile writes one line per object. The file is created even if objs is empty.
func WriteLabelFile(filename string, objs []Object) error {
	lines := make([]string, len(objs))
	for i, obj := range objs {
		lines[i] = obj.String()
	}
	return iox.WriteLines(filename, lines)
}

// fieldParser remembers the first parse error, so that a line can be parsed without
// checking every field individually.
type fieldParser struct {
	fields []string
	err    error
}

func (p *fieldParser) float(i int, name string) float64 {
	v, err := strconv.ParseFloat(p.fields[i], 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("field %v (%v) is not a number: %q", i, name, p.fields[i])
	}
	return v
}

func (p *fieldParser) int(i int, name string) int {
	v, err := strconv.Atoi(p.fields[i])
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("field %v (%v) is not an integer: %q", i, name, p.fields[i])
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
