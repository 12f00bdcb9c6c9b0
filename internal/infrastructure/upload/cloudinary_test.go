package upload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

// countingTransport fails the test if any request goes out.
type countingTransport struct {
	t     *testing.T
	calls int
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls++
	c.t.Fatalf("no network activity expected")
	return nil, nil
}

func textFile(name, contentType, content string) ports.UploadFile {
	return ports.UploadFile{Name: name, ContentType: contentType, Reader: strings.NewReader(content)}
}

func TestCloudinary_MissingConfigFailsWithoutNetwork(t *testing.T) {
	transport := &countingTransport{t: t}
	uploader := NewCloudinary(Config{
		HTTPClient: &http.Client{Transport: transport},
	}, zerolog.Nop())

	_, err := uploader.Upload(context.Background(), textFile("a.png", "image/png", "data"))
	require.ErrorIs(t, err, domain.ErrUploadNotConfigured)
	assert.Zero(t, transport.calls)
}

func TestCloudinary_UploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/demo/image/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "preset1", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "a.png", header.Filename)

		w.Write([]byte(`{"secure_url":"https://cdn.example/a.png"}`))
	}))
	defer srv.Close()

	uploader := NewCloudinary(Config{
		CloudName:    "demo",
		UploadPreset: "preset1",
		BaseURL:      srv.URL,
	}, zerolog.Nop())

	res, err := uploader.Upload(context.Background(), textFile("a.png", "image/png", "data"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/a.png", res.URL)
	assert.Equal(t, domain.MediaImage, res.Kind)
}

func TestCloudinary_VideoGoesToVideoEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/video/upload", r.URL.Path)
		w.Write([]byte(`{"secure_url":"https://cdn.example/b.mp4"}`))
	}))
	defer srv.Close()

	uploader := NewCloudinary(Config{CloudName: "demo", UploadPreset: "preset1", BaseURL: srv.URL}, zerolog.Nop())

	res, err := uploader.Upload(context.Background(), textFile("b.mp4", "video/mp4", "data"))
	require.NoError(t, err)
	assert.Equal(t, domain.MediaVideo, res.Kind)
}

func TestCloudinary_RejectedUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid preset"}}`))
	}))
	defer srv.Close()

	uploader := NewCloudinary(Config{CloudName: "demo", UploadPreset: "bad", BaseURL: srv.URL}, zerolog.Nop())

	_, err := uploader.Upload(context.Background(), textFile("a.png", "image/png", "data"))
	require.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestCloudinary_OneUploadAtATime(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(entered) })
		<-release
		w.Write([]byte(`{"secure_url":"https://cdn.example/a.png"}`))
	}))
	defer srv.Close()

	uploader := NewCloudinary(Config{CloudName: "demo", UploadPreset: "preset1", BaseURL: srv.URL}, zerolog.Nop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := uploader.Upload(context.Background(), textFile("a.png", "image/png", "data"))
		assert.NoError(t, err)
	}()

	<-entered
	_, err := uploader.Upload(context.Background(), textFile("b.png", "image/png", "data"))
	assert.ErrorIs(t, err, domain.ErrUploadInProgress)

	close(release)
	wg.Wait()

	// The slot frees up once the first upload finishes.
	_, err = uploader.Upload(context.Background(), textFile("c.png", "image/png", "data"))
	assert.NoError(t, err)
}
