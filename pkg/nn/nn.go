package nn

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Package nn holds the types that describe neural network detector output.

// Detections with a score at or below this are discarded, unless overridden
const DefaultScoreThreshold = 0.4

// The classes of the detector that produced our results, in output order
var DefaultDetectorClasses = []string{"Car", "Pedestrian", "Cyclist"}

// Load a text file with class names on each line
func LoadClassFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	classes := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			classes = append(classes, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Failed to read class file %v: %w", filename, err)
	}
	return classes, nil
}

// ParseClassList splits a comma-separated list of class names, eg "Car,Pedestrian,Cyclist".
// Empty entries are dropped.
func ParseClassList(s string) []string {
	classes := []string{}
	for _, c := range strings.Split(s, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			classes = append(classes, c)
		}
	}
	return classes
}
