package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

func TestStorageService_SaveAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	filename, path, err := storage.SaveFile(newFileHeader(t, "My Resume.PDF", []byte("%PDF-1.4 fake")), "resume")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "resume_"))
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.Equal(t, filepath.Join(dir, filename), path)
	assert.Equal(t, path, storage.GetFilePath(filename))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))

	require.NoError(t, storage.DeleteFile(filename))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, storage.DeleteFile(filename))
}

func TestStorageService_RejectsNonPDF(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	_, _, err := storage.SaveFile(newFileHeader(t, "resume.docx", []byte("docx")), "resume")
	assert.ErrorIs(t, err, ErrInvalidFileType)
}

func TestStorageService_GetFilePathStaysInUploadDir(t *testing.T) {
	storage := NewStorageService("/srv/uploads")
	assert.Equal(t, "/srv/uploads/passwd", storage.GetFilePath("../../etc/passwd"))
}
