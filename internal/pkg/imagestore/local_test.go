package imagestore

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStore(t *testing.T) *LocalStore {
	t.Helper()

	st, err := NewLocalStore(&Config{LocalDir: t.TempDir()})
	require.NoError(t, err)
	return st
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLocalStoreUploadAndDelete(t *testing.T) {
	st := newTestLocalStore(t)
	ctx := context.Background()

	url, err := st.Upload(ctx, "village-fair.png", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/gallery/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	rel := strings.TrimPrefix(url, "/uploads/")
	fullPath := filepath.Join(st.baseDir, filepath.FromSlash(rel))
	_, err = os.Stat(fullPath)
	require.NoError(t, err, "the original file is on disk")

	thumbPath := filepath.Join(filepath.Dir(fullPath), "thumbs", filepath.Base(fullPath))
	_, err = os.Stat(thumbPath)
	assert.NoError(t, err, "a thumbnail is written next to it")

	require.NoError(t, st.Delete(ctx, url))
	_, err = os.Stat(fullPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(thumbPath)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreUploadGeneratesUniqueNames(t *testing.T) {
	st := newTestLocalStore(t)
	ctx := context.Background()

	first, err := st.Upload(ctx, "same.png", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)
	second, err := st.Upload(ctx, "same.png", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStoreDeleteIgnoresExternalURLs(t *testing.T) {
	st := newTestLocalStore(t)

	err := st.Delete(context.Background(), "https://images.example.com/korlavalasa/gallery/x.jpg")

	assert.NoError(t, err)
}

func TestLocalStoreDeleteMissingFile(t *testing.T) {
	st := newTestLocalStore(t)

	err := st.Delete(context.Background(), "/uploads/gallery/never-existed.jpg")

	assert.NoError(t, err)
}
