package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	// MaxFileSize is the per-file upload ceiling.
	MaxFileSize = 6 << 20 // 6 MB

	// MaxFilesPerField is the per-multipart-field count ceiling.
	MaxFilesPerField = 10
)

var (
	// ErrFileTooLarge means a file in the batch exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file exceeds the 6MB size limit")

	// ErrTooManyFiles means a field carries more than MaxFilesPerField files.
	ErrTooManyFiles = errors.New("too many files in one upload")
)

// StoredFilename derives the unique on-disk name for an upload,
// keeping the original extension so static serving gets a usable
// content type.
func StoredFilename(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}

// ValidateBatch checks one multipart field against the size and count
// ceilings. A violation rejects the whole batch; nothing is written.
func ValidateBatch(files []*multipart.FileHeader) error {
	if len(files) > MaxFilesPerField {
		return ErrTooManyFiles
	}
	for _, file := range files {
		if file.Size > MaxFileSize {
			return ErrFileTooLarge
		}
	}
	return nil
}

// SaveUpload writes the uploaded file under dir as storedName,
// creating dir if needed.
func SaveUpload(file *multipart.FileHeader, dir, storedName string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, storedName))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// RemoveFile deletes a stored file from dir.
func RemoveFile(dir, storedName string) error {
	return os.Remove(filepath.Join(dir, filepath.Base(storedName)))
}
