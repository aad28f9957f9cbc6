package nn

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBox(t *testing.T) {
	b := NewBox(10, 20, 110, 220)
	require.Equal(t, 100.0, b.Width())
	require.Equal(t, 200.0, b.Height())
	require.Equal(t, 20000.0, b.Area())
	require.Equal(t, [4]float64{10, 20, 100, 200}, b.XYWH())
	require.Equal(t, [4]float64{10, 20, 110, 220}, b.LTRB())

	b = NewBox(1.4, 1.5, 10.49, 10.5)
	require.Equal(t, image.Rect(1, 2, 10, 11), b.Rect())

	b = NewBox(1, 2, 3, 4)
	b.Offset(1, -1)
	require.Equal(t, NewBox(2, 1, 4, 3), b)
}

func TestTable(t *testing.T) {
	table := Table{
		{1, 2, 3, 4, 0.9},
		{5, 6, 7, 8, 0.1},
	}
	dets, err := table.Detections()
	require.NoError(t, err)
	require.Equal(t, []ObjectDetection{
		{Confidence: 0.9, Box: NewBox(1, 2, 3, 4)},
		{Confidence: 0.1, Box: NewBox(5, 6, 7, 8)},
	}, dets)

	dets, err = Table{}.Detections()
	require.NoError(t, err)
	require.Empty(t, dets)

	_, err = Table{{1, 2, 3, 4}}.Detections()
	require.Error(t, err)
}

func TestClassList(t *testing.T) {
	require.Equal(t, []string{"Car", "Pedestrian", "Cyclist"}, ParseClassList("Car, Pedestrian,,Cyclist"))
	require.Equal(t, []string{}, ParseClassList(""))

	filename := filepath.Join(t.TempDir(), "classes.txt")
	require.NoError(t, os.WriteFile(filename, []byte("Car\n\n  Van \nTruck"), 0644))
	classes, err := LoadClassFile(filename)
	require.NoError(t, err)
	require.Equal(t, []string{"Car", "Van", "Truck"}, classes)

	_, err = LoadClassFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
