package kittiviz

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/cyclopcam/dsconv/pkg/imagesize"
	"github.com/cyclopcam/dsconv/pkg/iox"
	"github.com/cyclopcam/dsconv/pkg/kitti"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	DefaultLineWidth = 2
	DefaultFontSize  = 12
)

var font *truetype.Font

func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// One color per entry in kitti.Classes
var palette = []color.RGBA{
	{230, 25, 75, 255},  // Car
	{245, 130, 48, 255}, // Van
	{255, 225, 25, 255}, // Truck
	{60, 180, 75, 255},  // Pedestrian
	{70, 240, 240, 255}, // Person_sitting
	{0, 130, 200, 255},  // Cyclist
	{145, 30, 180, 255}, // Tram
}

var otherColor = color.RGBA{128, 128, 128, 255}

// ClassColor returns the color that we draw objects of the given class with
func ClassColor(class string) color.Color {
	if i, ok := kitti.ClassIndex(class); ok && i < len(palette) {
		return palette[i]
	}
	return otherColor
}

// Render draws the box and class name of every object onto a copy of img
func Render(img image.Image, objs []kitti.Object) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: DefaultFontSize}))
	for _, obj := range objs {
		c := ClassColor(obj.Type)
		r := obj.Box.Rect()
		drawRectangleEmpty(dc, r, c, DefaultLineWidth)

		// Put the label above the box, unless that would be off the top of the image
		y := float64(r.Min.Y) - 3
		if y < DefaultFontSize {
			y = float64(r.Min.Y) + DefaultFontSize + 1
		}
		dc.SetColor(c)
		dc.DrawString(obj.Type, float64(r.Min.X)+1, y)
	}
	return dc.Image()
}

func drawRectangleEmpty(dc *gg.Context, r image.Rectangle, c color.Color, width float64) {
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	dc.Stroke()
}

// RenderFile draws the objects of labelFile onto imageFile, and saves the result to outputFile.
// The output format is chosen from the extension of outputFile.
func RenderFile(imageFile, labelFile, outputFile string) error {
	format, err := imaging.FormatFromFilename(outputFile)
	if err != nil {
		return fmt.Errorf("Unsupported output image %v: %w", outputFile, err)
	}
	img, err := imagesize.Open(imageFile)
	if err != nil {
		return err
	}
	objs, err := kitti.ReadLabelFile(labelFile)
	if err != nil {
		return err
	}
	out := Render(img, objs)
	return iox.WriteFileAtomic(outputFile, func(w io.Writer) error {
		return imaging.Encode(w, out, format)
	})
}
