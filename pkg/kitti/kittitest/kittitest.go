package kittitest

// Package kittitest creates small KITTI directories for tests

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSample describes one image and its label lines
type TestSample struct {
	Stem   string
	Width  int
	Height int
	Labels []string
}

// Label lines that are handy for tests. The bbox of CarLine is [10,20,110,220].
const (
	CarLine         = "Car 0.00 0 -1.58 10.00 20.00 110.00 220.00 1.65 1.67 3.64 -0.65 1.71 46.70 -1.59"
	PedestrianLine  = "Pedestrian 0.00 1 0.21 300.50 150.25 340.75 260.00 1.89 0.48 1.20 1.84 1.47 8.41 0.01"
	LargelyOccluded = "Cyclist 0.00 2 -2.10 50.00 60.00 80.00 120.00 1.73 0.60 1.76 -2.65 1.62 17.66 -2.25"
	UnknownOccluded = "Van 0.12 3 -1.00 400.00 170.00 460.00 210.00 2.10 1.90 4.80 5.00 1.70 30.00 -0.90"
	DontCareLine    = "DontCare -1 -1 -10 503.89 169.71 590.61 190.13 -1 -1 -1 -1000 -1000 -1000 -10"
	MiscLine        = "Misc 0.00 0 1.00 1.00 2.00 3.00 4.00 1.00 1.00 1.00 1.00 1.00 1.00 1.00"
	TramShortLine   = "Tram 0 0 0 5 6 7 8"
)

const DefaultImageSize = 16

// WriteImage writes a small PNG image
func WriteImage(t *testing.T, filename string, width, height int) {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	img.Set(0, 0, color.White)
	f, err := os.Create(filename)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// WriteDataset creates image_2 and label_2 inside dir, with one PNG and one label file per sample.
// A zero Width or Height is replaced by DefaultImageSize.
func WriteDataset(t *testing.T, dir string, samples []TestSample) {
	imageDir := filepath.Join(dir, "image_2")
	labelDir := filepath.Join(dir, "label_2")
	require.NoError(t, os.MkdirAll(imageDir, 0755))
	require.NoError(t, os.MkdirAll(labelDir, 0755))
	for _, s := range samples {
		width, height := s.Width, s.Height
		if width == 0 {
			width = DefaultImageSize
		}
		if height == 0 {
			height = DefaultImageSize
		}
		WriteImage(t, filepath.Join(imageDir, s.Stem+".png"), width, height)
		content := ""
		if len(s.Labels) != 0 {
			content = strings.Join(s.Labels, "\n") + "\n"
		}
		require.NoError(t, os.WriteFile(filepath.Join(labelDir, s.Stem+".txt"), []byte(content), 0644))
	}
}

// WriteSplitFile writes a label split file with the given lines
func WriteSplitFile(t *testing.T, filename string, lines ...string) {
	require.NoError(t, os.WriteFile(filename, []byte(strings.Join(lines, "\n")+"\n"), 0644))
}
