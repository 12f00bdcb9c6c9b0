package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/skillbridge/marketplace-client/internal/infrastructure/callback"
)

// How long the funding flow waits for the provider redirect before falling
// back to manual reference entry.
const redirectWait = 5 * time.Minute

func (a *App) cmdWallet(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "usage: marketctl wallet <fund|transactions|verify>")
		return 2
	}

	switch args[0] {
	case "fund":
		return a.cmdWalletFund(ctx, args[1:])
	case "transactions":
		return a.cmdWalletTransactions(ctx)
	case "verify":
		if len(args) < 2 {
			fmt.Fprintln(a.errOut, "usage: marketctl wallet verify <reference>")
			return 2
		}
		return a.cmdWalletVerify(ctx, args[1])
	default:
		fmt.Fprintf(a.errOut, "unknown wallet subcommand %q\n", args[0])
		return 2
	}
}

// cmdWalletFund runs the escrow funding flow end to end: initialise the
// payment, send the user through the provider's hosted page in a browser,
// capture the reference from the redirect (or ask for it), then verify.
func (a *App) cmdWalletFund(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("wallet fund", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	jobID := fs.String("job", "", "job with an accepted proposal")
	amount := fs.Float64("amount", 0, "amount to place in escrow")
	manual := fs.Bool("manual", false, "skip the loopback listener and enter the reference by hand")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if a.requireUser(ctx) == nil {
		return 1
	}

	init, err := a.wallet.Fund(ctx, *jobID, *amount)
	if err != nil {
		return a.fail("failed to initialise payment", err)
	}

	fmt.Fprintf(a.out, "Complete the payment in your browser:\n  %s\n", init.AuthorizationURL)
	if err := a.openURL(init.AuthorizationURL); err != nil {
		a.log.Debug().Err(err).Msg("could not open browser, user must follow the link")
	}

	reference := init.Reference
	if !*manual {
		if captured, ok := a.awaitRedirect(ctx); ok {
			reference = captured
		}
	}
	if reference == "" {
		reference = a.prompter().ask("Payment reference")
	}

	tx, err := a.wallet.Verify(ctx, reference)
	if err != nil {
		return a.fail("payment verification failed", err)
	}
	fmt.Fprintf(a.out, "Payment %s: %s (%.2f)\n", reference, tx.Status, tx.Amount)
	return 0
}

// awaitRedirect runs the loopback listener until the provider redirect
// arrives or the wait expires. A failed listener is not fatal; the flow
// falls back to manual entry.
func (a *App) awaitRedirect(ctx context.Context) (string, bool) {
	listener := callback.NewListener(a.log)
	url, err := listener.Start()
	if err != nil {
		a.log.Debug().Err(err).Msg("callback listener unavailable")
		return "", false
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = listener.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(a.out, "Waiting for the payment redirect on %s (Ctrl-C to enter the reference manually)\n", url)
	waitCtx, cancel := context.WithTimeout(ctx, redirectWait)
	defer cancel()

	ref, err := listener.Wait(waitCtx)
	if err != nil {
		return "", false
	}
	return ref, true
}

func (a *App) cmdWalletTransactions(ctx context.Context) int {
	if a.requireUser(ctx) == nil {
		return 1
	}

	transactions, err := a.wallet.Transactions(ctx)
	if err != nil {
		return a.fail("failed to list transactions", err)
	}
	if len(transactions) == 0 {
		fmt.Fprintln(a.out, "No transactions yet.")
		return 0
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tJOB\tAMOUNT\tSTATUS\tREFERENCE")
	for _, t := range transactions {
		jobTitle := ""
		if t.Job != nil {
			jobTitle = t.Job.Title
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n", t.ID, jobTitle, t.Amount, t.Status, t.Reference)
	}
	tw.Flush()
	return 0
}

func (a *App) cmdWalletVerify(ctx context.Context, reference string) int {
	if a.requireUser(ctx) == nil {
		return 1
	}

	tx, err := a.wallet.Verify(ctx, reference)
	if err != nil {
		return a.fail("payment verification failed", err)
	}
	fmt.Fprintf(a.out, "Payment %s: %s (%.2f)\n", reference, tx.Status, tx.Amount)
	return 0
}
