package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxFileSize = 10 * 1024 * 1024

func TestProbeMissingFile(t *testing.T) {
	err := Probe(filepath.Join(t.TempDir(), "missing.pdf"), testMaxFileSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestProbeDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports.pdf")
	require.NoError(t, os.Mkdir(dir, 0o750))

	err := Probe(dir, testMaxFileSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestProbeWrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o600))

	err := Probe(path, testMaxFileSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a PDF")
}

func TestProbeOversizeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.pdf")
	require.NoError(t, os.WriteFile(path, make([]byte, 128), 0o600))

	err := Probe(path, 64)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestProbeCorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7 garbage"), 0o600))

	err := Probe(path, testMaxFileSize)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadable))
}

func TestDefaultTableSettings(t *testing.T) {
	settings := DefaultTableSettings()
	assert.Equal(t, "lines", settings.VerticalStrategy)
	assert.Equal(t, "lines", settings.HorizontalStrategy)
}

func TestOpenRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o600))

	_, err := Open(path, DefaultTableSettings())
	require.Error(t, err)
}
