// Package archive moves a finished exports directory out of the way so the
// next run starts with an empty one.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Prefix names archived export directories: exports-YYYYMMDD-HHMMSS.
const Prefix = "exports-"

// now is swapped in tests.
var now = time.Now

// ArchiveExports moves exportsDir to archive/exports-<timestamp> next to it
// and returns the new path.
func ArchiveExports(exportsDir string) (string, error) {
	info, err := os.Stat(exportsDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("exports directory does not exist: %s", exportsDir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat exports directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", exportsDir)
	}

	archiveDir := filepath.Join(filepath.Dir(filepath.Clean(exportsDir)), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ts := now()
	archivePath := filepath.Join(archiveDir, Prefix+ts.Format("20060102-150405"))
	if _, err := os.Stat(archivePath); err == nil {
		// Same second as an earlier archive
		archivePath = filepath.Join(archiveDir, Prefix+ts.Format("20060102-150405.000000"))
	}

	if err := os.Rename(exportsDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive exports directory: %w", err)
	}

	fmt.Printf("Exports directory archived to: %s\n", archivePath)
	return archivePath, nil
}
