package nn

import (
	"image"
	"math"
)

// Box is an axis-aligned bounding box in pixel coordinates.
// It uses the KITTI/detector layout of left, top, right, bottom.
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

func NewBox(left, top, right, bottom float64) Box {
	return Box{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	}
}

func (b Box) Width() float64 {
	return b.Right - b.Left
}

func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// LTRB returns [left, top, right, bottom]
func (b Box) LTRB() [4]float64 {
	return [4]float64{b.Left, b.Top, b.Right, b.Bottom}
}

// XYWH returns [left, top, width, height], which is the COCO bbox layout
func (b Box) XYWH() [4]float64 {
	return [4]float64{b.Left, b.Top, b.Width(), b.Height()}
}

// Rect rounds the box to the nearest integer pixel rectangle
func (b Box) Rect() image.Rectangle {
	return image.Rect(round(b.Left), round(b.Top), round(b.Right), round(b.Bottom))
}

func (b *Box) Offset(dx, dy float64) {
	b.Left += dx
	b.Right += dx
	b.Top += dy
	b.Bottom += dy
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
