package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

func (a *App) cmdProposals(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "usage: marketctl proposals <apply|list|accept|reject>")
		return 2
	}

	switch args[0] {
	case "apply":
		return a.cmdProposalsApply(ctx, args[1:])
	case "list":
		if len(args) < 2 {
			fmt.Fprintln(a.errOut, "usage: marketctl proposals list <job-id>")
			return 2
		}
		return a.cmdProposalsList(ctx, args[1])
	case "accept":
		if len(args) < 2 {
			fmt.Fprintln(a.errOut, "usage: marketctl proposals accept <proposal-id>")
			return 2
		}
		return a.cmdProposalDecision(ctx, args[1], true)
	case "reject":
		if len(args) < 2 {
			fmt.Fprintln(a.errOut, "usage: marketctl proposals reject <proposal-id>")
			return 2
		}
		return a.cmdProposalDecision(ctx, args[1], false)
	default:
		fmt.Fprintf(a.errOut, "unknown proposals subcommand %q\n", args[0])
		return 2
	}
}

func (a *App) cmdProposalsApply(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("proposals apply", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	jobID := fs.String("job", "", "job id to bid on")
	cover := fs.String("cover", "", "cover letter")
	bid := fs.Float64("bid", 0, "bid amount")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *jobID == "" {
		fmt.Fprintln(a.errOut, "a job id is required")
		return 2
	}
	if a.requireUser(ctx) == nil {
		return 1
	}

	proposal, err := a.backend.CreateProposal(ctx, ports.ProposalInput{
		JobID:       *jobID,
		CoverLetter: *cover,
		BidAmount:   *bid,
	})
	if err != nil {
		return a.fail("failed to submit proposal", err)
	}
	fmt.Fprintf(a.out, "Proposal submitted (%s, status %s)\n", proposal.ID, proposal.Status)
	return 0
}

func (a *App) cmdProposalsList(ctx context.Context, jobID string) int {
	if a.requireUser(ctx) == nil {
		return 1
	}
	proposals, err := a.backend.ProposalsByJob(ctx, jobID)
	if err != nil {
		return a.fail("failed to list proposals", err)
	}
	if len(proposals) == 0 {
		fmt.Fprintln(a.out, "No proposals yet.")
		return 0
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFREELANCER\tBID\tSTATUS")
	for _, p := range proposals {
		name := ""
		if p.Freelancer != nil {
			name = p.Freelancer.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", p.ID, name, p.BidAmount, p.Status)
	}
	tw.Flush()
	return 0
}

func (a *App) cmdProposalDecision(ctx context.Context, proposalID string, accept bool) int {
	if a.requireUser(ctx) == nil {
		return 1
	}

	var err error
	verb := "rejected"
	if accept {
		verb = "accepted"
		err = a.backend.AcceptProposal(ctx, proposalID)
	} else {
		err = a.backend.RejectProposal(ctx, proposalID)
	}
	if err != nil {
		return a.fail("failed to update proposal", err)
	}
	fmt.Fprintf(a.out, "Proposal %s %s.\n", proposalID, verb)
	return 0
}
