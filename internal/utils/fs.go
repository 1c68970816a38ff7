package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DirCheckResult represents the result of dir checks
type DirCheckResult struct {
	Exists   bool
	Writable bool
	Error    error
}

// StdinPath names standard input wherever a file path is accepted.
const StdinPath = "-"

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// OpenInput opens path for reading, or returns stdin for StdinPath. Closing
// the stdin reader is a no-op.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == StdinPath {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// WriteFileAtomic streams write into a temp file next to path and renames it
// into place, so a failed write never leaves a truncated file behind.
func WriteFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// SaveTOMLFile encodes data as TOML into filePath.
func SaveTOMLFile(data any, filePath string) error {
	return WriteFileAtomic(filePath, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(data)
	})
}

// GetAbsolutePath returns the absolute path of a file
func GetAbsolutePath(path string) string {
	if path == "" {
		return "unknown"
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func testWriteAccess(dirPath string) bool {
	f, err := os.CreateTemp(dirPath, ".write_test")
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dirPath, err)
		return false
	}
	f.Close()
	os.Remove(f.Name())
	return true
}

// GetExecutableDir returns the directory of the current executable, with
// symlinks resolved when possible.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Dir(execPath), nil
}

// CheckDirStatus creates dirPath if needed and reports whether it is writable
func CheckDirStatus(dirPath string) DirCheckResult {
	result := DirCheckResult{}
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		result.Error = err
		log.Warnf("Cannot create directory %s: %v", dirPath, err)
		return result
	}
	result.Exists = true
	result.Writable = testWriteAccess(dirPath)
	return result
}
