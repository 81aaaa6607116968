package utils

import (
	"os"
	"path/filepath"
)

// DataDir holds the bundled fixture files.
const DataDir = "data"

// GetDataPath returns the path of a file inside the data directory
func GetDataPath(filename string) string {
	return filepath.Join(DataDir, filename)
}

// ReadLocalFile reads a dataset from disk. Relative paths resolve against the working directory.
func ReadLocalFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Clean(path))
}
