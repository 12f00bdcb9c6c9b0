package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

func (a *App) cmdJobs(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "usage: marketctl jobs <post|list|show>")
		return 2
	}

	switch args[0] {
	case "post":
		return a.cmdJobsPost(ctx, args[1:])
	case "list":
		return a.cmdJobsList(ctx)
	case "show":
		if len(args) < 2 {
			fmt.Fprintln(a.errOut, "usage: marketctl jobs show <id>")
			return 2
		}
		return a.cmdJobsShow(ctx, args[1])
	default:
		fmt.Fprintf(a.errOut, "unknown jobs subcommand %q\n", args[0])
		return 2
	}
}

func (a *App) cmdJobsPost(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("jobs post", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	title := fs.String("title", "", "job title")
	description := fs.String("description", "", "job description")
	budget := fs.Float64("budget", 0, "budget")
	category := fs.String("category", "", "category")
	freelancer := fs.String("freelancer", "", "freelancer id to hire directly")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *title == "" {
		fmt.Fprintln(a.errOut, "a job title is required")
		return 2
	}
	if a.requireUser(ctx) == nil {
		return 1
	}

	job, err := a.backend.CreateJob(ctx, ports.JobInput{
		Title:        *title,
		Description:  *description,
		Budget:       *budget,
		Category:     *category,
		FreelancerID: *freelancer,
	})
	if err != nil {
		return a.fail("failed to post job", err)
	}
	fmt.Fprintf(a.out, "Posted job %s (%s)\n", job.Title, job.ID)
	return 0
}

func (a *App) cmdJobsList(ctx context.Context) int {
	jobs, err := a.backend.ListJobs(ctx)
	if err != nil {
		return a.fail("failed to list jobs", err)
	}
	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "No jobs yet.")
		return 0
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tBUDGET\tCATEGORY\tSTATUS")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n", j.ID, j.Title, j.Budget, j.Category, j.Status)
	}
	tw.Flush()
	return 0
}

func (a *App) cmdJobsShow(ctx context.Context, id string) int {
	job, err := a.backend.GetJob(ctx, id)
	if err != nil {
		return a.fail("failed to fetch job", err)
	}
	a.printJob(job)
	return 0
}

func (a *App) printJob(job *domain.Job) {
	fmt.Fprintf(a.out, "%s (%s)\n", job.Title, job.ID)
	if job.Description != "" {
		fmt.Fprintln(a.out, job.Description)
	}
	if job.Budget > 0 {
		fmt.Fprintf(a.out, "Budget: %.2f\n", job.Budget)
	}
	if job.Category != "" {
		fmt.Fprintf(a.out, "Category: %s\n", job.Category)
	}
	if job.Client != nil {
		fmt.Fprintf(a.out, "Client: %s\n", job.Client.Name)
	}
	if job.Freelancer != nil {
		fmt.Fprintf(a.out, "Freelancer: %s\n", job.Freelancer.Name)
	}
}
