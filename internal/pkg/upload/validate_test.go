package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSize(t *testing.T) {
	assert.NoError(t, ValidateSize(1024))
	assert.NoError(t, ValidateSize(MaxFileSize))
	assert.ErrorIs(t, ValidateSize(MaxFileSize+1), ErrFileTooLarge)
}

func TestValidateImage(t *testing.T) {
	pngHead := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	jpegHead := []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0}
	gifHead := []byte("GIF89a\x00\x00\x00\x00")
	htmlHead := []byte("<!DOCTYPE html><html><body>")
	svgHead := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg">`)

	tests := []struct {
		name     string
		filename string
		head     []byte
		wantErr  error
	}{
		{"png", "photo.png", pngHead, nil},
		{"jpeg", "photo.jpg", jpegHead, nil},
		{"jpeg alternate extension", "photo.jpeg", jpegHead, nil},
		{"gif", "anim.gif", gifHead, nil},
		{"uppercase extension", "PHOTO.PNG", pngHead, nil},
		{"extension only, no head", "photo.webp", nil, nil},
		{"disallowed extension", "report.pdf", nil, ErrUnsupportedType},
		{"svg blocked", "icon.svg", svgHead, ErrUnsupportedType},
		{"html masquerading as png", "page.png", htmlHead, ErrUnsupportedType},
		{"xml masquerading as jpg", "sneaky.jpg", svgHead, ErrUnsupportedType},
		{"no extension", "photo", pngHead, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateImage(tt.filename, tt.head)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateImageTrustsExtensionForOctetStream(t *testing.T) {
	// WebP bytes that DetectContentType cannot name still pass on extension
	head := make([]byte, 16)

	mime, err := ValidateImage("photo.webp", head)

	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", mime)
}
