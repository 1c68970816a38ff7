package corpus

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the corpus file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatBinary             // Precomputed entries written by corpusgen
	FormatText               // Newline separated word list
)

// FormatInfo contains metadata about a corpus file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatBinary: {
		Format:      FormatBinary,
		Description: "Binary Corpus",
		Extensions:  []string{".bin"},
		MinSize:     headerSize,
	},
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".lst", ""},
		MinSize:     0,
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	if expectedFormat == FormatBinary {
		return validateBinaryFormat(filename, fileInfo.Size())
	}
	return nil
}

// validateBinaryFormat checks the header against the file size
func validateBinaryFormat(filename string, size int64) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	var count int32
	if err := binary.Read(file, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", filename, err)
	}
	if err := checkCount(count); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	want := headerSize + int64(count)*entrySize
	if size != want {
		return fmt.Errorf("%s: %w: header says %d entries (%d bytes), file has %d bytes",
			filename, ErrBadHeader, count, want, size)
	}

	log.Debugf("Binary corpus %s validated: %d words", filename, count)
	return nil
}

// DetectFileFormat guesses the format of a corpus file from its extension
func DetectFileFormat(filename string) FileFormat {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if ext == e {
				return format
			}
		}
	}
	return FormatUnknown
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
