package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/transport"
)

const MaxUploadSize = 5 << 20

var (
	ErrFileTooLarge        = errors.New("file exceeds the 5 MB limit")
	ErrUnsupportedFileType = errors.New("invalid file type. Only JPEG, PNG, GIF, WebP allowed")
	ErrEmptyFileURL        = errors.New("file url is required")
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type FilesService struct {
	api *transport.Client
}

func NewFilesService(client *transport.Client) *FilesService {
	return &FilesService{api: client}
}

// Upload validates the file locally and posts it as multipart form data.
func (s *FilesService) Upload(ctx context.Context, file Upload, folder string) (*domain.UploadResult, error) {
	contentType, err := validateUpload(file)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if folder != "" {
		if err := form.WriteField("folder", folder); err != nil {
			return nil, err
		}
	}

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(file.Name)))
	partHeader.Set("Content-Type", contentType)
	part, err := form.CreatePart(partHeader)
	if err != nil {
		return nil, err
	}
	written, err := io.Copy(part, io.LimitReader(file.Body, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if written > MaxUploadSize {
		return nil, ErrFileTooLarge
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	resp, err := s.api.Fetch(ctx, http.MethodPost, s.api.URL("/files/upload", nil), &body,
		http.Header{"Content-Type": {form.FormDataContentType()}})
	if err != nil {
		return nil, err
	}
	var result domain.UploadResult
	decoded, err := transport.Decode(resp, &result)
	if err != nil || !decoded {
		return nil, err
	}
	return &result, nil
}

func validateUpload(file Upload) (string, error) {
	if file.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(file.Name)))
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	if !allowedUploadTypes[contentType] {
		return "", ErrUnsupportedFileType
	}
	return contentType, nil
}

func (s *FilesService) Delete(ctx context.Context, fileURL string) error {
	if strings.TrimSpace(fileURL) == "" {
		return ErrEmptyFileURL
	}
	body := struct {
		URL string `json:"url"`
	}{fileURL}
	return send(ctx, s.api, http.MethodDelete, "/files/delete", body)
}

var _ FilesServiceInterface = (*FilesService)(nil)
