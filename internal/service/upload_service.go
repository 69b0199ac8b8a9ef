package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/dto"

	"github.com/google/uuid"
)

const maxUploadSize = 10 * 1024 * 1024 // matches the server body limit

type IUploadService interface {
	Store(files []*multipart.FileHeader) ([]*dto.UploadedFileResponse, error)
}

// uploadService writes attachments to local disk under random names and
// returns the URL the client (and later the AI call) uses to reach them.
type uploadService struct {
	uploadDir string
}

func NewUploadService(uploadDir string) IUploadService {
	return &uploadService{uploadDir: uploadDir}
}

func (s *uploadService) Store(files []*multipart.FileHeader) ([]*dto.UploadedFileResponse, error) {
	if len(files) == 0 {
		return nil, apperrors.NewValidation("no files provided")
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	out := make([]*dto.UploadedFileResponse, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxUploadSize {
			return nil, apperrors.NewValidation(fmt.Sprintf("file %s exceeds the 10MB limit", fh.Filename))
		}

		stored, err := s.storeOne(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, nil
}

func (s *uploadService) storeOne(fh *multipart.FileHeader) (*dto.UploadedFileResponse, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &dto.UploadedFileResponse{
		Filename:    fh.Filename,
		URL:         "/uploads/" + name,
		ContentType: contentType,
		Size:        size,
	}, nil
}
