package dsdoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(&Topic{Name: "a", Summary: "A", Children: []*Topic{
		{Name: "b", Summary: "AB", Children: []*Topic{{Name: "c", Summary: "ABC"}}},
	}})
	r.Register(&Topic{Name: "a.b", Summary: "registered AB"})
	r.Register(&Topic{Name: "x", Summary: "X"})

	find := func(name, expectSummary string) {
		topic, err := r.Lookup(name)
		require.NoError(t, err, name)
		require.Equal(t, expectSummary, topic.Summary)
	}
	notFound := func(name string) {
		_, err := r.Lookup(name)
		require.ErrorIs(t, err, ErrNotFound, name)
	}

	find("a", "A")
	find("x", "X")
	// The longest registered prefix wins
	find("a.b", "registered AB")
	notFound("a.b.c")
	notFound("a.c")
	notFound("y")
	notFound("")
	notFound("x.y")

	require.Equal(t, []string{"a", "a.b", "x"}, r.Keys())
}

func TestDefaultRegistry(t *testing.T) {
	for _, tool := range []string{ToolKitti2Coco, ToolKitti2Custom, ToolMmdet2Kitti, ToolKittiViz, ToolHelp} {
		topic, err := Default.Lookup(tool)
		require.NoError(t, err)
		require.NotEmpty(t, topic.Summary)
	}
	for _, flag := range []string{"kitti_path", "output_file", "label_split_file", "output_count"} {
		require.NotEmpty(t, Default.Summary(ToolKitti2Coco+"."+flag))
		require.NotEmpty(t, Default.Summary(ToolKitti2Custom+"."+flag))
	}
	require.Contains(t, Default.Summary("kitti.label.occluded"), "largely occluded")
	require.Panics(t, func() { Default.Summary("kitti2coco.nope") })

	text := Default.topics[ToolMmdet2Kitti].Text()
	require.Contains(t, text, "score_threshold")
	require.Contains(t, text, "000000.txt")
}
