package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImageExtensions lists the recognized image extensions in lookup priority
// order. HRSC2016 ships BMP images, so .bmp is tried first.
var ImageExtensions = []string{".bmp", ".jpg", ".png", ".tif", ".tiff", ".jpeg", ".webp"}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// GetFileExtension returns the lowercase file extension including the dot
func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// Stem returns the base filename without its extension
func Stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsImageFile checks if a file has a recognized image extension
func IsImageFile(filename string) bool {
	ext := GetFileExtension(filename)
	for _, imgExt := range ImageExtensions {
		if ext == imgExt {
			return true
		}
	}
	return false
}

// ImageStems lists the stems of all image files directly under dir, sorted
func ImageStems(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var stems []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		stems = append(stems, Stem(entry.Name()))
	}
	sort.Strings(stems)
	return stems, nil
}

// FindImage locates the image file for a stem by trying each extension in
// priority order. The second return value is false when no candidate exists.
func FindImage(dir, stem string, extensions []string) (string, bool) {
	if len(extensions) == 0 {
		extensions = ImageExtensions
	}
	for _, ext := range extensions {
		path := filepath.Join(dir, stem+ext)
		if FileExists(path) {
			return path, true
		}
	}
	return "", false
}

// ListFilesWithExt lists all files under dir with the given extension, sorted
// lexicographically
func ListFilesWithExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if err != nil {
		return false
	}
	return info.IsDir()
}
