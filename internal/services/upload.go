package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
)

var (
	ErrNoFile       = errors.New("no file uploaded")
	ErrFileTooLarge = errors.New("file too large")
)

// Upload is an uploaded document held in memory for the duration of one request.
type Upload struct {
	Filename string
	Format   string
	Data     []byte
}

type UploadService interface {
	ReadFile(file *multipart.FileHeader) (*Upload, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

// ReadFile validates the extension and size of an uploaded file and reads it
// into memory. Nothing is written to disk.
func (s *uploadService) ReadFile(file *multipart.FileHeader) (*Upload, error) {
	if file == nil {
		return nil, ErrNoFile
	}

	format, err := DocumentFormat(file.Filename)
	if err != nil {
		return nil, err
	}

	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrFileTooLarge, file.Size, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return &Upload{
		Filename: file.Filename,
		Format:   format,
		Data:     data,
	}, nil
}
