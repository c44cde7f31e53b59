package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxFileSize is the per-file ceiling for gallery uploads
const MaxFileSize = 5 * 1024 * 1024 // 5 MB

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	// Note: SVG is intentionally excluded due to XSS risk without sanitization
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var (
	ErrUnsupportedType = errors.New("only JPG, JPEG, PNG, GIF and WEBP images are supported")
	ErrFileTooLarge    = errors.New("file exceeds the 5 MB upload limit")
)

// ValidateSize checks the declared file size against the upload ceiling
func ValidateSize(size int64) error {
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// ValidateImage checks the filename extension and, when the first bytes of
// the file are provided, the sniffed content type against the whitelist.
// Returns the detected mime or an error.
func ValidateImage(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", ErrUnsupportedType
	}

	if len(head) == 0 {
		return "", nil
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", ErrUnsupportedType
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", ErrUnsupportedType
	}

	// Some encoders produce octet-stream depending on Go version; trust the extension
	if detected == "application/octet-stream" {
		return detected, nil
	}

	if allowedMime[detected] {
		return detected, nil
	}

	return "", ErrUnsupportedType
}
