package cli

import (
	"context"
	"flag"
	"fmt"
)

func (a *App) cmdMessages(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "usage: marketctl messages <send|list>")
		return 2
	}

	switch args[0] {
	case "send":
		return a.cmdMessagesSend(ctx, args[1:])
	case "list":
		return a.cmdMessagesList(ctx)
	default:
		fmt.Fprintf(a.errOut, "unknown messages subcommand %q\n", args[0])
		return 2
	}
}

func (a *App) cmdMessagesSend(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("messages send", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	to := fs.String("to", "", "recipient user id")
	content := fs.String("content", "", "message text")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *to == "" || *content == "" {
		fmt.Fprintln(a.errOut, "both -to and -content are required")
		return 2
	}
	if a.requireUser(ctx) == nil {
		return 1
	}

	if _, err := a.backend.SendMessage(ctx, *to, *content); err != nil {
		return a.fail("failed to send message", err)
	}
	fmt.Fprintln(a.out, "Message sent.")
	return 0
}

func (a *App) cmdMessagesList(ctx context.Context) int {
	me := a.requireUser(ctx)
	if me == nil {
		return 1
	}

	messages, err := a.backend.ListMessages(ctx)
	if err != nil {
		return a.fail("failed to list messages", err)
	}
	if len(messages) == 0 {
		fmt.Fprintln(a.out, "No messages.")
		return 0
	}

	for _, m := range messages {
		from := "unknown"
		if m.From != nil {
			from = m.From.Name
			if m.From.ID == me.ID {
				from = "me"
			}
		}
		fmt.Fprintf(a.out, "[%s] %s: %s\n", m.CreatedAt.Format("2006-01-02 15:04"), from, m.Content)
	}
	return 0
}
