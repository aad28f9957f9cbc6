package kitti

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cyclopcam/dsconv/pkg/kitti/kittitest"
	"github.com/cyclopcam/dsconv/pkg/nn"
	"github.com/stretchr/testify/require"
)

func TestClasses(t *testing.T) {
	for i, c := range Classes {
		idx, ok := ClassIndex(c)
		require.True(t, ok)
		require.Equal(t, i, idx)
		require.Equal(t, i+1, CategoryID(c))
	}
	_, ok := ClassIndex("DontCare")
	require.False(t, ok)
	require.Equal(t, 0, CategoryID("DontCare"))
	require.Equal(t, 0, CategoryID("car"))
}

func TestParseObject(t *testing.T) {
	obj, err := ParseObject(kittitest.CarLine)
	require.NoError(t, err)
	require.Equal(t, "Car", obj.Type)
	require.Equal(t, 0.0, obj.Truncated)
	require.Equal(t, OccludedFullyVisible, obj.Occluded)
	require.Equal(t, -1.58, obj.Alpha)
	require.Equal(t, nn.NewBox(10, 20, 110, 220), obj.Box)
	require.Equal(t, [3]float64{1.65, 1.67, 3.64}, obj.Dimensions)
	require.Equal(t, [3]float64{-0.65, 1.71, 46.70}, obj.Location)
	require.Equal(t, -1.59, obj.RotationY)
	require.False(t, obj.HasScore)
	require.True(t, obj.IsKnownClass())

	obj, err = ParseObject(kittitest.DontCareLine)
	require.NoError(t, err)
	require.Equal(t, -1, obj.Occluded)
	require.False(t, obj.IsKnownClass())

	// Only the 2D fields
	obj, err = ParseObject(kittitest.TramShortLine)
	require.NoError(t, err)
	require.Equal(t, nn.NewBox(5, 6, 7, 8), obj.Box)
	require.Equal(t, [3]float64{}, obj.Dimensions)

	// Detection result, with score, and a trailing carriage return
	obj, err = ParseObject("Car -1 -1 -10 1 2 3 4 -1 -1 -1 -1000 -1000 -1000 -10 0.75\r")
	require.NoError(t, err)
	require.True(t, obj.HasScore)
	require.Equal(t, 0.75, obj.Score)

	bad := []string{
		"",
		"Car 0 0 0 1 2 3",
		"Car 0 0 0 1 2 3 4 5",
		"Car 0 0 0 1 2 3 4 1 1 1 1 1 1 1 1 1",
		"Car 0 x 0 1 2 3 4",
		"Car 0 1.5 0 1 2 3 4",
		"Car 0 0 0 1 2 three 4",
		"Car 0 0 0 1 2 3 4 1 1 1 1 1 1 ry",
	}
	for _, line := range bad {
		_, err := ParseObject(line)
		require.Error(t, err, "line %q", line)
	}
}

func TestObjectString(t *testing.T) {
	obj := NewDetection("Pedestrian", nn.NewBox(712.4, 143, 810.73, 307.92), 0.9)
	require.Equal(t, "Pedestrian -1 -1 -10 712.4 143 810.73 307.92 -1 -1 -1 -1000 -1000 -1000 -10 0.9", obj.String())

	// Round trip
	parsed, err := ParseObject(obj.String())
	require.NoError(t, err)
	require.Equal(t, obj, parsed)

	obj, err = ParseObject(kittitest.CarLine)
	require.NoError(t, err)
	require.Equal(t, "Car 0 0 -1.58 10 20 110 220 1.65 1.67 3.64 -0.65 1.71 46.7 -1.59", obj.String())
}

func TestLabelFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "000000.txt")
	content := kittitest.CarLine + "\n\n" + kittitest.DontCareLine + "\n   \n" + kittitest.PedestrianLine
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))

	objs, err := ReadLabelFile(filename)
	require.NoError(t, err)
	require.Len(t, objs, 3)
	require.Equal(t, "Car", objs[0].Type)
	require.Equal(t, "DontCare", objs[1].Type)
	require.Equal(t, "Pedestrian", objs[2].Type)

	out := filepath.Join(dir, "out.txt")
	require.NoError(t, WriteLabelFile(out, objs))
	again, err := ReadLabelFile(out)
	require.NoError(t, err)
	require.Equal(t, objs, again)

	require.NoError(t, WriteLabelFile(out, nil))
	again, err = ReadLabelFile(out)
	require.NoError(t, err)
	require.Empty(t, again)

	// The line number is reported
	require.NoError(t, os.WriteFile(filename, []byte(kittitest.CarLine+"\nCar 0 0\n"), 0644))
	_, err = ReadLabelFile(filename)
	require.ErrorContains(t, err, "000000.txt:2")

	_, err = ReadLabelFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestSplitMask(t *testing.T) {
	mask, err := ReadSplitMask("", 4)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true, true}, mask)

	mask, err = ReadSplitMask("", 0)
	require.NoError(t, err)
	require.Empty(t, mask)

	dir := t.TempDir()
	splitFile := filepath.Join(dir, "train.txt")
	kittitest.WriteSplitFile(t, splitFile, "000003", "", "1", "  ", " 5 ", "1")
	mask, err = ReadSplitMask(splitFile, 7)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false, true, false, true, false}, mask)

	// Every subset of indices produces exactly that subset
	n := 6
	for subset := 0; subset < 1<<n; subset++ {
		lines := []string{}
		expect := make([]bool, n)
		for i := 0; i < n; i++ {
			if subset&(1<<i) != 0 {
				lines = append(lines, []string{"0", "1", "2", "3", "4", "5"}[i])
				expect[i] = true
			}
		}
		kittitest.WriteSplitFile(t, splitFile, lines...)
		mask, err := ReadSplitMask(splitFile, n)
		require.NoError(t, err)
		require.Equal(t, expect, mask)
	}

	kittitest.WriteSplitFile(t, splitFile, "1", "7")
	_, err = ReadSplitMask(splitFile, 7)
	require.ErrorIs(t, err, ErrSplitIndexOutOfRange)

	kittitest.WriteSplitFile(t, splitFile, "-1")
	_, err = ReadSplitMask(splitFile, 7)
	require.ErrorIs(t, err, ErrSplitIndexOutOfRange)

	kittitest.WriteSplitFile(t, splitFile, "1", "two")
	_, err = ReadSplitMask(splitFile, 7)
	require.ErrorContains(t, err, "train.txt:2")

	_, err = ReadSplitMask(filepath.Join(dir, "missing.txt"), 7)
	require.Error(t, err)
}

func TestStem(t *testing.T) {
	require.Equal(t, "000123", Stem("000123.png"))
	require.Equal(t, "000123", Stem("/a/b.c/000123.txt"))
	require.Equal(t, "000123", Stem("000123.tar.gz"))
	require.Equal(t, "abc", Stem("abc"))
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()
	kittitest.WriteDataset(t, dir, []kittitest.TestSample{
		{Stem: "000000"},
		{Stem: "000001"},
		{Stem: "000002"},
		{Stem: "000003"},
	})
	// Directories inside image_2 are ignored
	require.NoError(t, os.Mkdir(filepath.Join(dir, DirImages, "thumbs"), 0755))

	samples, err := LoadDataset(dir, "", 10)
	require.NoError(t, err)
	require.Len(t, samples, 4)
	for i, s := range samples {
		stem := []string{"000000", "000001", "000002", "000003"}[i]
		require.Equal(t, stem, s.Stem)
		require.Equal(t, filepath.Join(dir, DirImages, stem+".png"), s.ImageFile)
		require.Equal(t, filepath.Join(dir, DirLabels, stem+".txt"), s.LabelFile)
	}

	// Count capping
	samples, err = LoadDataset(dir, "", 2)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	require.Equal(t, "000001", samples[1].Stem)

	samples, err = LoadDataset(dir, "", 0)
	require.NoError(t, err)
	require.Empty(t, samples)

	// Split file selects samples, and the cap applies after the split
	splitFile := filepath.Join(dir, "val.txt")
	kittitest.WriteSplitFile(t, splitFile, "3", "1")
	samples, err = LoadDataset(dir, splitFile, 10)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	require.Equal(t, "000001", samples[0].Stem)
	require.Equal(t, "000003", samples[1].Stem)

	samples, err = LoadDataset(dir, splitFile, 1)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	require.Equal(t, "000001", samples[0].Stem)

	kittitest.WriteSplitFile(t, splitFile, "4")
	_, err = LoadDataset(dir, splitFile, 10)
	require.ErrorIs(t, err, ErrSplitIndexOutOfRange)

	_, err = LoadDataset(filepath.Join(dir, "nope"), "", 10)
	require.Error(t, err)
}

func TestSortOrder(t *testing.T) {
	// Names are sorted by bytes, not numerically
	dir := t.TempDir()
	kittitest.WriteDataset(t, dir, []kittitest.TestSample{{Stem: "9"}, {Stem: "10"}})
	samples, err := LoadDataset(dir, "", 10)
	require.NoError(t, err)
	require.Equal(t, "10", samples[0].Stem)
	require.Equal(t, "9", samples[1].Stem)
}

func TestSampleMismatch(t *testing.T) {
	dir := t.TempDir()
	kittitest.WriteDataset(t, dir, []kittitest.TestSample{{Stem: "000000"}, {Stem: "000001"}})
	require.NoError(t, os.Rename(filepath.Join(dir, DirLabels, "000001.txt"), filepath.Join(dir, DirLabels, "000002.txt")))

	_, err := LoadDataset(dir, "", 10)
	require.ErrorIs(t, err, ErrSampleMismatch)

	// Only the first sample is selected, so the mismatch doesn't matter
	samples, err := LoadDataset(dir, "", 1)
	require.NoError(t, err)
	require.Len(t, samples, 1)

	// Different number of images and labels
	require.NoError(t, os.Remove(filepath.Join(dir, DirLabels, "000002.txt")))
	_, err = LoadDataset(dir, "", 10)
	require.ErrorIs(t, err, ErrSampleMismatch)

	_, err = PairSamples(dir, []string{"a.png"}, []string{"a.txt"}, []bool{true, false}, 10)
	require.Error(t, err)
}
