package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager organizes generated export files on disk. Every
// export gets its own UUID-named directory under the base directory.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates an output manager rooted at baseOutputDir.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// EnsureOutputDirExists creates the base output directory.
func (om *OutputManager) EnsureOutputDirExists() error {
	return os.MkdirAll(om.BaseOutputDir, 0755)
}

// ExportDir creates and returns the directory for one export.
func (om *OutputManager) ExportDir(exportID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, exportID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return dir, nil
}

// FilePath returns the full path for a file inside an export
// directory, creating the directory if needed. The file name is
// stripped of any path components first.
func (om *OutputManager) FilePath(exportID, fileName string) (string, error) {
	dir, err := om.ExportDir(exportID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// DownloadURL returns the API path that serves the given export file.
func (om *OutputManager) DownloadURL(exportID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", exportID, filepath.Base(fileName))
}

// FileType maps a file extension to the export format label.
func (om *OutputManager) FileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".xlsx", ".xls":
		return "excel"
	case ".md":
		return "markdown"
	case ".png":
		return "image"
	default:
		return "unknown"
	}
}

// FileSize returns the size of a file in bytes.
func (om *OutputManager) FileSize(filePath string) (int64, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
