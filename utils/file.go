package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

var uploadDir = "uploads"

// EnsureUploadDir creates the local upload directory (thumbnail fallback
// storage) if it doesn't exist, and remembers it for UploadPath.
func EnsureUploadDir(dir string) error {
	if dir != "" {
		uploadDir = dir
	}
	return os.MkdirAll(uploadDir, os.ModePerm)
}

// SaveFile saves the uploaded file to the given destination path
func SaveFile(fileHeader *multipart.FileHeader, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, file)
	return err
}

// UploadPath returns the full path for a file inside the upload directory
func UploadPath(filename string) string {
	return filepath.Join(uploadDir, filename)
}
