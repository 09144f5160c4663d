package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["resume"][0]
}

func TestUploadService_ReadFile(t *testing.T) {
	service := NewUploadService(1024)

	upload, err := service.ReadFile(fileHeader(t, "CV.PDF", []byte("%PDF-1.4 data")))
	require.NoError(t, err)
	assert.Equal(t, "CV.PDF", upload.Filename)
	assert.Equal(t, FormatPDF, upload.Format)
	assert.Equal(t, []byte("%PDF-1.4 data"), upload.Data)
}

func TestUploadService_Rejects(t *testing.T) {
	service := NewUploadService(8)

	_, err := service.ReadFile(nil)
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = service.ReadFile(fileHeader(t, "cv.txt", []byte("text")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = service.ReadFile(fileHeader(t, "cv.docx", []byte("more than eight bytes")))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
