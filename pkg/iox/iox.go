package iox

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// WriteFileAtomic creates dstFilename with the content produced by 'write'.
// The content is written to a temporary file in the same directory, which is renamed
// over dstFilename only once everything has been flushed. If anything fails, the
// temporary file is removed, and dstFilename is left untouched.
func WriteFileAtomic(dstFilename string, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(dstFilename), filepath.Base(dstFilename)+".*.tmp")
	if err != nil {
		return err
	}
	tempFilename := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tempFilename)
		}
	}()

	buf := bufio.NewWriter(tmp)
	err = write(buf)
	if err == nil {
		err = buf.Flush()
	}
	err = multierr.Append(err, tmp.Close())
	if err != nil {
		return err
	}
	// CreateTemp uses 0600, but output files are meant to be shared
	if err = os.Chmod(tempFilename, 0644); err != nil {
		return err
	}
	return os.Rename(tempFilename, dstFilename)
}

// WriteJSONFile encodes v as compact JSON, and writes it atomically to filename
func WriteJSONFile(filename string, v any) error {
	return WriteFileAtomic(filename, func(w io.Writer) error {
		return json.NewEncoder(w).Encode(v)
	})
}

// WriteLines writes each line, followed by a newline, to a new file.
// The file is created (or truncated) even if there are no lines.
func WriteLines(filename string, lines []string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	buf := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := buf.WriteString(line); err != nil {
			return err
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buf.Flush()
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	return multierr.Append(g.Reader.Close(), g.file.Close())
}

// OpenReader opens filename for reading. If the name ends in ".gz", then the
// content is transparently decompressed.
func OpenReader(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(filename, ".gz") {
		return file, nil
	}
	zr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &gzipFile{Reader: zr, file: file}, nil
}
