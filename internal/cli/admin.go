package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (a *App) cmdAdmin(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "usage: marketctl admin <users|jobs|transactions|delete-user>")
		return 2
	}

	me := a.requireUser(ctx)
	if me == nil {
		return 1
	}
	if !me.IsAdmin() {
		fmt.Fprintln(a.errOut, "the admin panel requires the admin role")
		return 1
	}

	switch args[0] {
	case "users":
		return a.cmdAdminUsers(ctx)
	case "jobs":
		return a.cmdAdminJobs(ctx)
	case "transactions":
		return a.cmdAdminTransactions(ctx)
	case "delete-user":
		if len(args) < 2 {
			fmt.Fprintln(a.errOut, "usage: marketctl admin delete-user <id>")
			return 2
		}
		return a.cmdAdminDeleteUser(ctx, args[1])
	default:
		fmt.Fprintf(a.errOut, "unknown admin subcommand %q\n", args[0])
		return 2
	}
}

func (a *App) cmdAdminUsers(ctx context.Context) int {
	users, err := a.backend.AdminUsers(ctx)
	if err != nil {
		return a.fail("failed to list users", err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	tw.Flush()
	return 0
}

func (a *App) cmdAdminJobs(ctx context.Context) int {
	jobs, err := a.backend.AdminJobs(ctx)
	if err != nil {
		return a.fail("failed to list jobs", err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tBUDGET\tSTATUS")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", j.ID, j.Title, j.Budget, j.Status)
	}
	tw.Flush()
	return 0
}

func (a *App) cmdAdminTransactions(ctx context.Context) int {
	transactions, err := a.backend.AdminTransactions(ctx)
	if err != nil {
		return a.fail("failed to list transactions", err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAMOUNT\tSTATUS\tREFERENCE")
	for _, t := range transactions {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%s\n", t.ID, t.Amount, t.Status, t.Reference)
	}
	tw.Flush()
	return 0
}

func (a *App) cmdAdminDeleteUser(ctx context.Context, id string) int {
	if !a.prompter().confirm(fmt.Sprintf("Delete user %s? This cannot be undone.", id)) {
		fmt.Fprintln(a.out, "Cancelled.")
		return 0
	}

	if err := a.backend.AdminDeleteUser(ctx, id); err != nil {
		return a.fail("failed to delete user", err)
	}
	fmt.Fprintf(a.out, "User %s deleted.\n", id)
	return 0
}
