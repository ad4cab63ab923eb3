// =============================================================================
// recordkeeper - File Manager Utility
// =============================================================================
//
// This module provides the file handling shared by the export commands:
//   - Output directory management
//   - Output file naming from a placeholder pattern
//   - Validation log generation
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager places export files in the output directory.
type FileManager struct {
	// OutputDir is the directory where export files are written.
	OutputDir string

	// FileFormat is the naming pattern passed to GenerateOutputFileName.
	FileFormat string

	// Now returns the time used for {timestamp}, {date} and {time}.
	Now func() time.Time
}

// NewFileManager creates a FileManager for outputDir.
func NewFileManager(outputDir, fileFormat string) *FileManager {
	return &FileManager{
		OutputDir:  outputDir,
		FileFormat: fileFormat,
		Now:        time.Now,
	}
}

// EnsureDirectories creates the output directory if it doesn't exist.
//
// RETURNS:
//   - An error if the directory cannot be created.
func (fm *FileManager) EnsureDirectories() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}

	return nil
}

// OutputPath returns the path of a new export file of the given kind.
//
// EXAMPLE:
//   fm.OutputPath("inventory", ".xlsx")
//   -> "output/inventory_20261019_093000_a1b2c3d4-....xlsx"
func (fm *FileManager) OutputPath(kind, ext string) string {
	name := GenerateOutputFileName(fm.FileFormat, ext, fm.Now(), map[string]string{"kind": kind})
	return filepath.Join(fm.OutputDir, name)
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName generates a unique output file name.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Date (YYYYMMDD)
//               {time}      - Time (HHMMSS)
//               {kind}      - Export kind, e.g. "inventory" or "history"
//   - ext: The extension to enforce, e.g. ".xml".
//   - now: The time the placeholders are resolved against.
//   - params: Additional placeholder values.
//
// RETURNS:
//   - The generated file name.
func GenerateOutputFileName(format, ext string, now time.Time, params map[string]string) string {
	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}
	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if ext != "" && !strings.HasSuffix(strings.ToLower(result), strings.ToLower(ext)) {
		result += ext
	}

	return result
}

// =============================================================================
// VALIDATION LOG GENERATION
// =============================================================================

// ErrorLogEntry is one finding written to the validation log.
type ErrorLogEntry struct {
	Severity string
	Section  string
	RecordID int
	Field    string
	Message  string
}

// WriteErrorLog writes findings to a log file in outputDir.
//
// PARAMETERS:
//   - entries: The findings to write.
//   - outputDir: The directory to write the log file.
//   - now: The generation time, used in the file name and header.
//
// RETURNS:
//   - The path to the log file, or "" when there was nothing to write.
//   - An error if writing fails.
func WriteErrorLog(entries []ErrorLogEntry, outputDir string, now time.Time) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	logPath := filepath.Join(outputDir, fmt.Sprintf("validation_log_%s.txt", now.Format("20060102_150405")))

	file, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create validation log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	fmt.Fprintf(writer, "recordkeeper - Validation Log\n"+
		"Generated: %s\n"+
		"Total Findings: %d\n"+
		"================================================================================\n\n",
		now.Format("2006-01-02 15:04:05"),
		len(entries))

	for i, entry := range entries {
		fmt.Fprintf(writer, "Finding #%d\n"+
			"  Severity:  %s\n"+
			"  Section:   %s\n",
			i+1, entry.Severity, entry.Section)
		if entry.RecordID > 0 {
			fmt.Fprintf(writer, "  Record ID: %d\n", entry.RecordID)
		}
		if entry.Field != "" {
			fmt.Fprintf(writer, "  Field:     %s\n", entry.Field)
		}
		fmt.Fprintf(writer, "  Message:   %s\n\n", entry.Message)
	}

	writer.WriteString("================================================================================\n" +
		"End of Validation Log\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush validation log: %w", err)
	}

	return logPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
