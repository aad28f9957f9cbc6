package dsdoc

// Package dsdoc holds the help text of our tools and formats, and looks up topics by
// dotted name, eg "kitti2coco.output_count".

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var ErrNotFound = errors.New("help topic not found")

// Topic is a piece of documentation, which may have named sub-topics (eg the flags of a tool)
type Topic struct {
	Name     string
	Summary  string // One line, used for command line flag help
	Doc      string // Longer description. Optional.
	Children []*Topic
}

// Child returns the sub-topic with the given name, or nil
func (t *Topic) Child(name string) *Topic {
	for _, c := range t.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Text is the full help text of the topic, including a list of its children
func (t *Topic) Text() string {
	s := strings.Builder{}
	s.WriteString(t.Name)
	s.WriteString(": ")
	s.WriteString(t.Summary)
	s.WriteString("\n")
	if t.Doc != "" {
		s.WriteString("\n")
		s.WriteString(strings.TrimSpace(t.Doc))
		s.WriteString("\n")
	}
	if len(t.Children) != 0 {
		s.WriteString("\n")
		width := lo.Max(lo.Map(t.Children, func(c *Topic, _ int) int { return len(c.Name) }))
		for _, c := range t.Children {
			fmt.Fprintf(&s, "  %-*v  %v\n", width, c.Name, c.Summary)
		}
	}
	return s.String()
}

// Registry holds top level topics. A top level name may itself contain dots.
type Registry struct {
	topics map[string]*Topic
}

func NewRegistry() *Registry {
	return &Registry{
		topics: map[string]*Topic{},
	}
}

func (r *Registry) Register(t *Topic) {
	r.topics[t.Name] = t
}

// Keys returns the sorted names of the top level topics
func (r *Registry) Keys() []string {
	keys := lo.Keys(r.topics)
	slices.Sort(keys)
	return keys
}

// Lookup finds a topic by dotted name.
// The longest prefix of the name that is a registered top level topic is found first,
// and then the remaining parts of the name are resolved as children of that topic.
func (r *Registry) Lookup(name string) (*Topic, error) {
	parts := strings.Split(name, ".")
	for i := len(parts); i > 0; i-- {
		top, ok := r.topics[strings.Join(parts[:i], ".")]
		if !ok {
			continue
		}
		t := top
		for _, p := range parts[i:] {
			if t = t.Child(p); t == nil {
				return nil, fmt.Errorf("%w: '%v' has no sub-topic '%v'", ErrNotFound, top.Name, p)
			}
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: '%v'", ErrNotFound, name)
}

// Summary returns the summary of a topic, or panics if the topic does not exist.
// This is intended for static help text, where a missing topic is a programming error.
func (r *Registry) Summary(name string) string {
	t, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return t.Summary
}
