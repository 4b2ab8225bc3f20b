package handlers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"orders-etl-service/internal/config"
)

// saveUpload stores the request's multipart "file" part under the configured
// upload directory and returns the saved path plus a content fingerprint.
//
// The file is saved under a fresh uuid name so concurrent uploads of
// same-named extracts never collide. The xxh3 fingerprint is returned to the
// client: synthetic ids are derived from row position, so the fingerprint is
// the only way for an operator to tell an exact re-upload from a re-sorted
// extract of the same entities.
func saveUpload(c *gin.Context) (path string, fingerprint string, err error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", "", fmt.Errorf("no file part in the request: %w", err)
	}
	if fileHeader.Filename == "" {
		return "", "", fmt.Errorf("no selected file")
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".csv" && ext != ".xlsx" {
		return "", "", fmt.Errorf("unsupported upload format %q, expected .csv or .xlsx", ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return "", "", fmt.Errorf("reading upload: %w", err)
	}

	dir := config.UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating upload dir: %w", err)
	}
	path = filepath.Join(dir, uuid.NewString()+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", "", fmt.Errorf("saving upload: %w", err)
	}
	return path, fmt.Sprintf("%016x", xxh3.Hash(data)), nil
}
