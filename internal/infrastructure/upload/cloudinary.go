// Package upload pushes files straight from the client to the hosted media
// CDN using an unsigned upload preset. The backend is never involved;
// callers attach the returned URL through the API client afterwards.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// Config identifies the media service account. CloudName and UploadPreset
// are both required; BaseURL and HTTPClient exist for tests.
type Config struct {
	CloudName    string
	UploadPreset string
	BaseURL      string
	HTTPClient   *http.Client
}

// Cloudinary implements ports.MediaUploader against the unsigned upload
// endpoint. At most one upload is in flight per instance.
type Cloudinary struct {
	cfg   Config
	httpc *http.Client
	log   zerolog.Logger
	busy  atomic.Bool
}

var _ ports.MediaUploader = (*Cloudinary)(nil)

func NewCloudinary(cfg Config, log zerolog.Logger) *Cloudinary {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Cloudinary{cfg: cfg, httpc: httpc, log: log}
}

// uploadResponse is the slice of the service response we care about.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload posts the file and preset as a multipart body to the kind-specific
// endpoint, chosen by the file's declared MIME type. Missing configuration
// fails immediately with no network activity.
func (c *Cloudinary) Upload(ctx context.Context, file ports.UploadFile) (*ports.UploadResult, error) {
	if c.cfg.CloudName == "" || c.cfg.UploadPreset == "" {
		return nil, domain.ErrUploadNotConfigured
	}
	if !c.busy.CompareAndSwap(false, true) {
		return nil, domain.ErrUploadInProgress
	}
	defer c.busy.Store(false)

	kind := mediaKind(file.ContentType)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("build upload body: %w", err)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}
	if err := w.WriteField("upload_preset", c.cfg.UploadPreset); err != nil {
		return nil, fmt.Errorf("build upload body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build upload body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", c.cfg.BaseURL, c.cfg.CloudName, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Debug().Int("status", resp.StatusCode).Str("kind", kind).Msg("media upload rejected")
		return nil, fmt.Errorf("%w (status %d)", domain.ErrUploadFailed, resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrUploadFailed, err)
	}

	c.log.Info().Str("kind", kind).Str("url", parsed.SecureURL).Msg("media uploaded")
	return &ports.UploadResult{URL: parsed.SecureURL, Kind: kind}, nil
}

// mediaKind maps a declared MIME type onto the two endpoint kinds the
// service exposes: video/* goes to the video endpoint, everything else is
// treated as an image.
func mediaKind(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return domain.MediaVideo
	}
	return domain.MediaImage
}
