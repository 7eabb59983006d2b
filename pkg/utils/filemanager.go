// =============================================================================
// XLIFF/CSV Converter - File Manager Utility
// =============================================================================
//
// This module provides the file operations used by a conversion run:
//   - Reading the whole input file before anything else happens
//   - Writing the output atomically, so a failed run never leaves a
//     truncated or half-written destination behind
//
// ATOMIC WRITE STRATEGY:
//   - The data is written to a temporary file next to the destination
//     (".<name>.<uuid>.tmp"), so the final rename stays on one filesystem
//   - The temporary file is synced and closed, then renamed over the target
//   - On any failure the temporary file is removed and the destination is
//     left exactly as it was
//
// =============================================================================

package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// defaultFileMode is used when the destination does not exist yet.
const defaultFileMode fs.FileMode = 0644

// =============================================================================
// READING
// =============================================================================

// ReadFile reads the whole file at path.
//
// RETURNS:
//   - The file content.
//   - An error naming the path if the file cannot be opened or read.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// =============================================================================
// WRITING
// =============================================================================

// WriteFileAtomic replaces the file at path with data.
//
// PARAMETERS:
//   - path: The destination file. Its directory must exist.
//   - data: The complete new content.
//
// RETURNS:
//   - An error if the temporary file cannot be created, written or renamed.
//     The destination is unchanged in that case.
//
// An existing destination keeps its permission bits.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	mode := defaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("failed to write %s: not a regular file", path)
		}
		mode = info.Mode().Perm()
	}

	tempPath := TempFileName(path)
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}

	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err = file.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", tempPath, err)
	}

	if err = file.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tempPath, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tempPath, err)
	}

	if err = os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// TempFileName returns the name of a fresh temporary file for path, in the
// same directory.
//
// EXAMPLE:
//   TempFileName("out/strings.csv") -> "out/.strings.csv.3f6c...e1.tmp"
func TempFileName(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists reports whether path names an existing regular file.
// Directories and other special files report false.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// FileSize returns the size in bytes of the file at path, as it is on disk
// after a write.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Size(), nil
}
