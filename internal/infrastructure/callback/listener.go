// Package callback runs a short-lived loopback HTTP listener that catches
// the payment provider's browser redirect after the user completes the
// hosted checkout, extracting the reference needed for verification.
package callback

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const closePage = `<!doctype html><html><body>
<p>Payment flow complete. You can close this tab and return to the terminal.</p>
</body></html>`

// Listener serves a single /callback route on 127.0.0.1 and hands the first
// received reference to Wait.
type Listener struct {
	e    *echo.Echo
	refs chan string
	log  zerolog.Logger
}

func NewListener(log zerolog.Logger) *Listener {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	l := &Listener{e: e, refs: make(chan string, 1), log: log}
	e.GET("/callback", l.handle)
	return l
}

// handle accepts the provider redirect. Paystack-style providers send the
// reference as ?reference= and mirror it as ?trxref=.
func (l *Listener) handle(c echo.Context) error {
	ref := c.QueryParam("reference")
	if ref == "" {
		ref = c.QueryParam("trxref")
	}
	if ref == "" {
		return c.String(http.StatusBadRequest, "missing payment reference")
	}

	select {
	case l.refs <- ref:
	default:
		// A reference was already captured; later hits just get the page.
	}
	return c.HTML(http.StatusOK, closePage)
}

// Start binds an ephemeral loopback port and begins serving. It returns the
// callback URL to pass along as the provider's redirect target.
func (l *Listener) Start() (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("bind callback listener: %w", err)
	}
	l.e.Listener = ln

	go func() {
		if err := l.e.Start(""); err != nil && err != http.ErrServerClosed {
			l.log.Debug().Err(err).Msg("callback listener stopped")
		}
	}()

	return fmt.Sprintf("http://%s/callback", ln.Addr().String()), nil
}

// Wait blocks until a reference arrives or ctx ends.
func (l *Listener) Wait(ctx context.Context) (string, error) {
	select {
	case ref := <-l.refs:
		return ref, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Shutdown stops the listener.
func (l *Listener) Shutdown(ctx context.Context) error {
	return l.e.Shutdown(ctx)
}
