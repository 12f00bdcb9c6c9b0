package ports

import (
	"context"
	"io"
)

// UploadFile is a single file selected for direct-to-CDN upload.
type UploadFile struct {
	// Name is the file name sent in the multipart body.
	Name string
	// ContentType is the file's declared MIME type; it selects the image
	// or video endpoint.
	ContentType string
	Reader      io.Reader
}

// UploadResult is returned on a successful upload. Nothing is persisted by
// the uploader itself; attaching URL to a profile or work item is the
// caller's job through Backend.
type UploadResult struct {
	URL  string
	Kind string // domain.MediaImage or domain.MediaVideo
}

// MediaUploader pushes a file straight to the hosted media service using an
// unsigned preset, bypassing the backend.
type MediaUploader interface {
	Upload(ctx context.Context, file UploadFile) (*UploadResult, error)
}
