package callback

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startListener(t *testing.T) (*Listener, string) {
	t.Helper()
	l := NewListener(zerolog.Nop())
	url, err := l.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		l.Shutdown(ctx)
	})
	return l, url
}

func TestListener_CapturesReference(t *testing.T) {
	l, url := startListener(t)
	assert.True(t, strings.HasPrefix(url, "http://127.0.0.1:"), "must bind loopback only, got %s", url)

	resp, err := http.Get(url + "?reference=ref_123&trxref=ref_123")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "close this tab")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ref, err := l.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ref_123", ref)
}

func TestListener_FallsBackToTrxref(t *testing.T) {
	l, url := startListener(t)

	resp, err := http.Get(url + "?trxref=ref_456")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ref, err := l.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ref_456", ref)
}

func TestListener_RejectsMissingReference(t *testing.T) {
	_, url := startListener(t)

	resp, err := http.Get(url)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListener_LaterHitsDoNotBlock(t *testing.T) {
	l, url := startListener(t)

	for i := 0; i < 3; i++ {
		resp, err := http.Get(url + "?reference=ref_1")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ref, err := l.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ref_1", ref)
}

func TestListener_WaitHonoursContext(t *testing.T) {
	l, _ := startListener(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := l.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
