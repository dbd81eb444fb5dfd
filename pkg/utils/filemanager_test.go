package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario: the standard VCI name includes vessel and voyage only when a
// real value was extracted from the manifest header.
func TestVCIFileName(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC)

	assert.Equal(t, "VCI_KRPUS_MSC AURIGA_FA432R_20260830_1015.xml",
		VCIFileName("KRPUS", "MSC AURIGA", "FA432R", now))

	assert.Equal(t, "VCI_KRPUS_20260830_1015.xml",
		VCIFileName("KRPUS", "UNKNOWNVSL", "UNKNOWNVOY", now))

	assert.Equal(t, "VCI_KRPUS_FA432R_20260830_1015.xml",
		VCIFileName("KRPUS", "", "FA432R", now))

	// Blank port falls back to the home port.
	assert.Equal(t, "VCI_KRPUS_20260830_1015.xml",
		VCIFileName("", "UNKNOWNVSL", "", now))
}

// Scenario: placeholders are substituted and the .xml extension enforced.
func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("VCI_{port}_{vessel}", map[string]string{
		"port":   "KRPUS",
		"vessel": "AURIGA",
	})
	assert.Equal(t, "VCI_KRPUS_AURIGA.xml", name)

	name = GenerateOutputFileName("export_{uuid}.xml", nil)
	assert.Regexp(t, `^export_[0-9a-f-]{36}\.xml$`, name)
}

// Scenario: output files are written to the output directory and archival
// copies, rather than moves, the file.
func TestWriteAndArchive(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "output")
	archiveDir := filepath.Join(t.TempDir(), "archive")

	fm := NewFileManager(outputDir, archiveDir)
	require.NoError(t, fm.EnsureDirectories())

	outputPath, err := fm.WriteOutputFile("VCI_TEST.xml", []byte("<vcidata/>"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "VCI_TEST.xml"), outputPath)

	archivePath, err := fm.ArchiveOutputFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(archiveDir, "VCI_TEST.xml"), archivePath)

	// Both copies exist with identical content.
	original, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	archived, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	assert.Equal(t, original, archived)
}

// Scenario: an empty archive directory disables archival entirely.
func TestArchiveDisabled(t *testing.T) {
	fm := NewFileManager(t.TempDir(), "")
	require.NoError(t, fm.EnsureDirectories())

	outputPath, err := fm.WriteOutputFile("VCI_TEST.xml", []byte("<vcidata/>"))
	require.NoError(t, err)

	archivePath, err := fm.ArchiveOutputFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, outputPath, archivePath)
}
