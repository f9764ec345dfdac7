package sif

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReader(t *testing.T) {
	p, err := ParseReader(strings.NewReader(qpText))
	require.NoError(t, err)
	assert.Equal(t, "QPTEST", p.Name)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qptest.sif")
	require.NoError(t, os.WriteFile(path, []byte(qpText), 0o644))

	p, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, mustParse(t, qpText), p)
}

func TestParseFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "QPTEST.SIF.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(qpText))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	p, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, mustParse(t, qpText), p)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.sif"))
	assert.Error(t, err)
}
