// =============================================================================
// ASC to VCI Converter - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the converter, including:
//   - Output file writing and naming
//   - Output archival (copying generated VCI files)
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - Generated VCI files are copied to output_archive for long-term storage
//   - The file in the output directory is the one handed to the terminal
//     operating system; the archive copy is the audit trail
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the converter.
type FileManager struct {
	// OutputDir is the directory where generated VCI files are placed.
	OutputDir string

	// OutputArchiveDir is the directory for archived output files.
	OutputArchiveDir string

	// UseTimestampSubdirs creates date-based subdirectories in the archive.
	// Example: output_archive/2026/08/30/VCI_KRPUS_20260830_1015.xml
	UseTimestampSubdirs bool

	// ArchiveOnSuccess determines whether to archive files after generation.
	ArchiveOnSuccess bool
}

// NewFileManager creates a new FileManager with the specified directories.
func NewFileManager(outputDir, outputArchiveDir string) *FileManager {
	return &FileManager{
		OutputDir:           outputDir,
		OutputArchiveDir:    outputArchiveDir,
		UseTimestampSubdirs: false,
		ArchiveOnSuccess:    outputArchiveDir != "",
	}
}

// EnsureDirectories creates all required directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{fm.OutputDir}
	if fm.OutputArchiveDir != "" {
		dirs = append(dirs, fm.OutputArchiveDir)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// OUTPUT WRITING AND ARCHIVAL
// =============================================================================

// WriteOutputFile writes data to the named file in the output directory and
// returns its full path.
func (fm *FileManager) WriteOutputFile(fileName string, data []byte) (string, error) {
	outputPath := filepath.Join(fm.OutputDir, fileName)

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}

	return outputPath, nil
}

// ArchiveOutputFile copies an output file to the archive directory.
//
// NOTE: Output files are copied, not moved, so they remain in the output
// directory.
func (fm *FileManager) ArchiveOutputFile(filePath string) (string, error) {
	if !fm.ArchiveOnSuccess {
		return filePath, nil
	}

	archivePath := fm.getArchivePath(fm.OutputArchiveDir, filePath)

	archiveDir := filepath.Dir(archivePath)
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	if err := copyFile(filePath, archivePath); err != nil {
		return "", fmt.Errorf("failed to copy file to archive: %w", err)
	}

	return archivePath, nil
}

// getArchivePath constructs the archive path for a file.
func (fm *FileManager) getArchivePath(archiveDir, filePath string) string {
	fileName := filepath.Base(filePath)

	if fm.UseTimestampSubdirs {
		now := time.Now()
		subDir := filepath.Join(
			archiveDir,
			fmt.Sprintf("%d", now.Year()),
			fmt.Sprintf("%02d", now.Month()),
			fmt.Sprintf("%02d", now.Day()),
		)
		return filepath.Join(subDir, fileName)
	}

	return filepath.Join(archiveDir, fileName)
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destination.Close()

	_, err = io.Copy(destination, source)
	return err
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName generates an output file name from a format string.
//
// PARAMETERS:
//   - format: The format string for the file name.
//     Placeholders:
//     {uuid}      - A random UUID
//     {timestamp} - Current timestamp (YYYYMMDD_HHMM)
//     {date}      - Current date (YYYYMMDD)
//     {time}      - Current time (HHMM)
//     {port}      - Port call code
//     {vessel}    - Vessel name
//     {voyage}    - Voyage number
//   - params: A map of placeholder values (without braces).
//
// RETURNS:
//   - The generated file name, always with a .xml extension.
//
// EXAMPLE:
//
//	format: "VCI_{port}_{timestamp}.xml"
//	params: {"port": "KRPUS"}
//	output: "VCI_KRPUS_20260830_1015.xml"
func GenerateOutputFileName(format string, params map[string]string) string {
	now := time.Now()

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_1504"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("1504"),
	}

	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if !strings.HasSuffix(strings.ToLower(result), ".xml") {
		result += ".xml"
	}

	return result
}

// VCIFileName builds the standard VCI file name for a port call. Vessel and
// voyage segments are included only when a real value was extracted from the
// manifest header.
//
// EXAMPLE:
//
//	VCI_KRPUS_MSC AURIGA_FA432R_20260830_1015.xml
func VCIFileName(port, vessel, voyage string, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("VCI_")
	if port == "" {
		port = "KRPUS"
	}
	sb.WriteString(port)

	if vessel != "" && vessel != "UNKNOWNVSL" {
		sb.WriteString("_")
		sb.WriteString(vessel)
	}
	if voyage != "" && voyage != "UNKNOWNVOY" {
		sb.WriteString("_")
		sb.WriteString(voyage)
	}

	sb.WriteString("_")
	sb.WriteString(now.Format("20060102"))
	sb.WriteString("_")
	sb.WriteString(now.Format("1504"))
	sb.WriteString(".xml")

	return sb.String()
}
