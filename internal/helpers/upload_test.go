package helpers

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0}, 32)...)
	pdfBytes  = []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n")
)

func TestNewUploadSniffsContent(t *testing.T) {
	up, err := NewUpload("car.png", pngBytes, ImageTypes)
	require.NoError(t, err)
	assert.Equal(t, "image/png", up.MIME)
	assert.Equal(t, ".png", up.Extension)
	assert.False(t, up.IsDocument())

	up, err = NewUpload("photo.jpg", jpegBytes, ImageTypes)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", up.MIME)

	up, err = NewUpload("license.pdf", pdfBytes, LicenseTypes)
	require.NoError(t, err)
	assert.True(t, up.IsDocument())
}

func TestNewUploadRejects(t *testing.T) {
	_, err := NewUpload("license.pdf", pdfBytes, ImageTypes)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = NewUpload("fake.png", []byte("just some text"), ImageTypes)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	big := append(append([]byte{}, pngBytes...), make([]byte, MaxUploadSize)...)
	_, err = NewUpload("big.png", big, ImageTypes)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:8080/")

	up, err := NewUpload("car.png", pngBytes, ImageTypes)
	require.NoError(t, err)

	url, err := store.Save(context.Background(), CarsFolder, up)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:8080/api/v1/uploads/car-rental/cars/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(dir, "car-rental", "cars", name))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}
