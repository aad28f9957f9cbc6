package kitti

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var ErrSplitIndexOutOfRange = errors.New("split index out of range")

// ReadSplitMask reads a label split file, which lists one sample index per line,
// and returns an inclusion mask of length n.
// If splitFile is empty, then every sample is included.
// Blank lines are ignored. Indices must satisfy 0 <= i < n.
func ReadSplitMask(splitFile string, n int) ([]bool, error) {
	mask := make([]bool, n)
	if splitFile == "" {
		for i := range mask {
			mask[i] = true
		}
		return mask, nil
	}

	f, err := os.Open(splitFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		idx, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%v:%v: invalid sample index %q", splitFile, lineNo, line)
		}
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%v:%v: index %v is not in [0, %v): %w", splitFile, lineNo, idx, n, ErrSplitIndexOutOfRange)
		}
		mask[idx] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Failed to read %v: %w", splitFile, err)
	}
	return mask, nil
}
