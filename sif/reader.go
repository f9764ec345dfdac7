package sif

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ParseReader reads all of r and parses it. The grammar needs the
// complete buffer anyway (a parse is all-or-nothing), so there is no
// streaming mode.
func ParseReader(r io.Reader) (*Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// ParseFile reads and parses the file at path. Files with a .gz
// suffix are decompressed transparently; CUTEst distributes its
// problem collection as .SIF.gz.
func ParseFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return ParseReader(zr)
	}
	return ParseReader(f)
}
