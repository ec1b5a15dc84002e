package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// cacheDirName is the per-user cache subdirectory holding downloaded jars.
const cacheDirName = "pdfbox"

// CacheDir returns the platform cache directory for downloaded artifacts
// (e.g. ~/.cache/pdfbox on Linux, ~/Library/Caches/pdfbox on macOS). The
// directory is not created; callers that download create it first.
func CacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("detect user cache dir: %w", err)
	}
	return filepath.Join(base, cacheDirName), nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
