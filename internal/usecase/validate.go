package usecase

import (
	"path/filepath"
	"strings"

	"github.com/menucraft/backend/internal/domain"
)

// MaxUploadSize is the largest menu document accepted for extraction
const MaxUploadSize = 50 << 20 // 50 MiB

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".csv":  true,
	".xls":  true,
	".xlsx": true,
	".doc":  true,
	".docx": true,
	".json": true,
	".txt":  true,
}

var allowedMediaTypes = map[string]bool{
	"application/pdf": true,
	"text/csv":        true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/json": true,
	"text/plain":       true,
}

// ValidateUpload checks a file before it is sent to the extraction
// service. A file is acceptable when its media type or extension is
// on the allowlist and it is within the size limit. Type and size
// violations return distinct errors so the caller can tell the user
// which constraint failed.
func ValidateUpload(filename, contentType string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	mediaType := contentType
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))

	if !allowedExtensions[ext] && !allowedMediaTypes[mediaType] {
		return domain.ErrFileTypeNotAllowed
	}
	if size > MaxUploadSize {
		return domain.ErrFileTooLarge
	}
	return nil
}
