package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ResolveDataFile finds a data file given on the command line or in config.
// Absolute paths are used as is. Relative ones are tried against the working
// directory, the executable directory and its data/ subdirectory, then each
// of extraDirs. When nothing exists the working-directory candidate is
// returned so the caller's open reports a useful path.
func ResolveDataFile(path string, extraDirs ...string) string {
	if path == "" || path == StdinPath || filepath.IsAbs(path) {
		return path
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, path))
	}
	if execDir, err := GetExecutableDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(execDir, path),
			filepath.Join(execDir, "data", path))
	}
	for _, dir := range extraDirs {
		candidates = append(candidates, filepath.Join(dir, path))
	}

	for _, c := range candidates {
		if stat, err := os.Stat(c); err == nil && !stat.IsDir() {
			log.Debugf("Resolved %s to %s", path, c)
			return c
		}
		log.Debugf("Data file candidate not found: %s", c)
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return path
}
