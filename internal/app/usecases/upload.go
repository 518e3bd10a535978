package usecases

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"dealership-backoffice/internal/domain/model"

	"github.com/gabriel-vasile/mimetype"
)

// UploadPolicy limits what a file field accepts.
type UploadPolicy struct {
	Kind      string
	MaxBytes  int64
	MimeTypes []string
}

var (
	ImagePolicy = UploadPolicy{
		Kind:      "image",
		MaxBytes:  10 << 20,
		MimeTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
	}
	VideoPolicy = UploadPolicy{
		Kind:      "video",
		MaxBytes:  100 << 20,
		MimeTypes: []string{"video/mp4", "video/webm", "video/ogg", "application/ogg"},
	}
	DocumentPolicy = UploadPolicy{
		Kind:     "document",
		MaxBytes: 25 << 20,
		MimeTypes: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
	}
)

// EncodeUpload reads r, sniffs its type and returns it base64-encoded for
// the GraphQL payload. Violations are reported as validation errors on field.
func EncodeUpload(field, filename string, r io.Reader, policy UploadPolicy) (*model.Upload, error) {
	if r == nil {
		return nil, model.NewValidationError(field, "File is required")
	}
	data, err := io.ReadAll(io.LimitReader(r, policy.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload %q: %w", filename, err)
	}
	if len(data) == 0 {
		return nil, model.NewValidationError(field, "File is empty")
	}
	if int64(len(data)) > policy.MaxBytes {
		return nil, model.NewValidationError(field, fmt.Sprintf("File is too large (max %dMB)", policy.MaxBytes>>20))
	}

	mt := mimetype.Detect(data)
	if !policy.allows(mt) {
		return nil, model.NewValidationError(field, fmt.Sprintf("Unsupported %s type %s", policy.Kind, mt.String()))
	}

	return &model.Upload{
		Filename: strings.TrimSpace(filename),
		MimeType: strings.SplitN(mt.String(), ";", 2)[0],
		Size:     int64(len(data)),
		Base64:   base64.StdEncoding.EncodeToString(data),
	}, nil
}

func (p UploadPolicy) allows(mt *mimetype.MIME) bool {
	for _, allowed := range p.MimeTypes {
		if mt.Is(allowed) {
			return true
		}
	}
	return false
}

// policyFor maps a media content type to its file policy.
func policyFor(content model.ContentType) (UploadPolicy, bool) {
	switch content {
	case model.ContentImage:
		return ImagePolicy, true
	case model.ContentVideoFile:
		return VideoPolicy, true
	case model.ContentDocument:
		return DocumentPolicy, true
	}
	return UploadPolicy{}, false
}
