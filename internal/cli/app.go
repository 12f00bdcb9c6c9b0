// Package cli implements the marketctl command surface. Each command is a
// thin screen over the API client: parse flags, call the backend, render
// the result. Failures become inline messages and a non-zero exit, never a
// crash.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
	"github.com/skillbridge/marketplace-client/internal/core/service"
	"github.com/skillbridge/marketplace-client/internal/infrastructure/api"
	"github.com/skillbridge/marketplace-client/internal/pkg/config"
)

// App wires the command surface to the services. The in/out/openURL fields
// are swappable so commands stay testable.
type App struct {
	cfg      *config.Config
	log      zerolog.Logger
	backend  ports.Backend
	session  ports.SessionService
	uploader ports.MediaUploader
	wallet   *service.Wallet

	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	openURL func(url string) error
}

func New(
	cfg *config.Config,
	log zerolog.Logger,
	backend ports.Backend,
	session ports.SessionService,
	uploader ports.MediaUploader,
	in io.Reader,
	out, errOut io.Writer,
) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		backend:  backend,
		session:  session,
		uploader: uploader,
		wallet:   service.NewWallet(backend, log),
		in:       in,
		out:      out,
		errOut:   errOut,
		openURL:  openBrowser,
	}
}

// Run dispatches a command. The return value is the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "register":
		return a.cmdRegister(ctx)
	case "profile":
		return a.cmdProfile(ctx, rest)
	case "jobs":
		return a.cmdJobs(ctx, rest)
	case "proposals":
		return a.cmdProposals(ctx, rest)
	case "freelancers":
		return a.cmdFreelancers(ctx, rest)
	case "messages":
		return a.cmdMessages(ctx, rest)
	case "works":
		return a.cmdWorks(ctx, rest)
	case "wallet":
		return a.cmdWallet(ctx, rest)
	case "admin":
		return a.cmdAdmin(ctx, rest)
	case "upload":
		return a.cmdUpload(ctx, rest)
	case "help", "-h", "--help":
		a.usage()
		return 0
	default:
		fmt.Fprintf(a.errOut, "unknown command %q\n\n", cmd)
		a.usage()
		return 2
	}
}

func (a *App) usage() {
	fmt.Fprint(a.errOut, `marketctl - freelance marketplace client

Usage:
  marketctl <command> [flags]

Commands:
  login         log in with email and password
  logout        clear the stored session
  whoami        show the current session
  register      create an account (interactive, three steps)
  profile       update the current profile
  jobs          post, list and show jobs
  proposals     apply to jobs, list and decide proposals
  freelancers   browse the public freelancer directory
  messages      send and list direct messages
  works         manage the public portfolio gallery
  wallet        fund escrow and list transactions
  admin         admin-only tables and actions
  upload        push a file to the media CDN
`)
}

// fail renders an error as an inline message. Backend-reported messages are
// shown verbatim; everything else gets the error text.
func (a *App) fail(context string, err error) int {
	fmt.Fprintf(a.errOut, "%s: %s\n", context, errMessage(err))
	return 1
}

func errMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// requireUser bootstraps the session and returns the current user, or nil
// after printing a login hint.
func (a *App) requireUser(ctx context.Context) *domain.User {
	a.session.Bootstrap(ctx)
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.errOut, "not logged in; run `marketctl login` first")
	}
	return user
}


// openBrowser performs the full browser redirect the payment flow needs.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
