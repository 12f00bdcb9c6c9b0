package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
)

func (a *App) cmdFreelancers(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("freelancers", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	skill := fs.String("skill", "", "filter by skill")
	show := fs.String("show", "", "show one freelancer by id")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *show != "" {
		freelancer, err := a.backend.GetFreelancer(ctx, *show)
		if err != nil {
			return a.fail("failed to fetch freelancer", err)
		}
		a.printFreelancer(freelancer)
		return 0
	}

	var (
		freelancers []domain.User
		err         error
	)
	if *skill != "" {
		freelancers, err = a.backend.FreelancersBySkill(ctx, *skill)
	} else {
		freelancers, err = a.backend.ListFreelancers(ctx)
	}
	if err != nil {
		return a.fail("failed to list freelancers", err)
	}
	if len(freelancers) == 0 {
		fmt.Fprintln(a.out, "No freelancers found.")
		return 0
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTITLE\tRATE\tSKILLS")
	for _, f := range freelancers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n", f.ID, f.Name, f.Title, f.HourlyRate, strings.Join(f.Skills, ", "))
	}
	tw.Flush()
	return 0
}

func (a *App) printFreelancer(f *domain.User) {
	fmt.Fprintf(a.out, "%s (%s)\n", f.Name, f.ID)
	if f.Title != "" {
		fmt.Fprintln(a.out, f.Title)
	}
	if f.Bio != "" {
		fmt.Fprintln(a.out, f.Bio)
	}
	if len(f.Skills) > 0 {
		fmt.Fprintf(a.out, "Skills: %s\n", strings.Join(f.Skills, ", "))
	}
	if f.ExperienceLevel != "" {
		fmt.Fprintf(a.out, "Experience: %s\n", f.ExperienceLevel)
	}
	if f.HourlyRate > 0 {
		fmt.Fprintf(a.out, "Hourly rate: %.2f\n", f.HourlyRate)
	}
	if len(f.PortfolioLinks) > 0 {
		fmt.Fprintf(a.out, "Portfolio: %s\n", strings.Join(f.PortfolioLinks, ", "))
	}
	if len(f.Languages) > 0 {
		fmt.Fprintf(a.out, "Languages: %s\n", strings.Join(f.Languages, ", "))
	}
}
