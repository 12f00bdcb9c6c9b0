package cli

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
	"github.com/skillbridge/marketplace-client/internal/core/service"
)

func (a *App) cmdLogin(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	p := a.prompter()
	if *email == "" {
		*email = p.ask("Email")
	}
	if *password == "" {
		*password = p.ask("Password")
	}

	user, err := a.session.Login(ctx, *email, *password)
	if err != nil {
		return a.fail("login failed", err)
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", user.Name, user.Email)
	return 0
}

func (a *App) cmdLogout(_ context.Context) int {
	if err := a.session.Logout(); err != nil {
		return a.fail("logout failed", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return 0
}

func (a *App) cmdWhoami(ctx context.Context) int {
	a.session.Bootstrap(ctx)

	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		if info := a.session.TokenInfo(); info.Present {
			fmt.Fprintln(a.out, "A stored credential exists but did not resolve; run `marketctl logout` to discard it.")
		}
		return 0
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
	if user.Role != "" {
		fmt.Fprintf(a.out, "Role: %s\n", user.Role)
	}
	if user.Title != "" {
		fmt.Fprintf(a.out, "Title: %s\n", user.Title)
	}
	if info := a.session.TokenInfo(); info.Present && !info.ExpiresAt.IsZero() {
		state := "valid until"
		if info.Expired {
			state = "expired at"
		}
		fmt.Fprintf(a.out, "Credential %s %s\n", state, info.ExpiresAt.Format("2006-01-02 15:04"))
	}
	return 0
}

// cmdRegister walks the three registration steps interactively. Validation
// failures re-run the step with the previously entered values as defaults,
// so nothing is lost on a Back/Next round trip.
func (a *App) cmdRegister(ctx context.Context) int {
	form := service.NewRegistrationForm(a.backend, a.session)
	p := a.prompter()

	for {
		switch form.Step() {
		case service.StepGeneralInfo:
			a.promptGeneral(form, p)
			if err := form.Next(); err != nil {
				a.printFieldErrors(form.FieldErrors())
				continue
			}
		case service.StepRoleDetails:
			if err := a.promptRoleDetails(form, p); err != nil {
				a.printFieldErrors(form.FieldErrors())
				continue
			}
			if p.confirm("Continue to review?") {
				_ = form.Next()
			} else {
				form.Back()
			}
		case service.StepReview:
			a.printReview(form)
			if !p.confirm("Submit registration?") {
				form.Back()
				continue
			}
			user, err := form.Submit(ctx)
			if err != nil {
				// Stay on the review step; the user can go back and fix.
				fmt.Fprintf(a.errOut, "registration failed: %s\n", errMessage(err))
				if !p.confirm("Go back and edit?") {
					return 1
				}
				form.Back()
				continue
			}
			fmt.Fprintf(a.out, "Registered successfully. Logged in as %s.\n", user.Name)
			return 0
		}
	}
}

func (a *App) promptGeneral(form *service.RegistrationForm, p *prompter) {
	prev := form.General()
	g := service.GeneralInfo{
		Name:            p.askDefault("Name", prev.Name),
		Email:           p.askDefault("Email", prev.Email),
		Password:        p.ask("Password"),
		ConfirmPassword: p.ask("Confirm password"),
		Role:            p.askDefault("Role (freelancer/client)", defaultString(prev.Role, domain.RoleFreelancer)),
		Phone:           p.askDefault("Phone", prev.Phone),
		Country:         p.askDefault("Country", prev.Country),
		City:            p.askDefault("City", prev.City),
		ProfileImage:    p.askDefault("Profile image URL", prev.ProfileImage),
	}
	form.SetGeneral(g)
}

func (a *App) promptRoleDetails(form *service.RegistrationForm, p *prompter) error {
	switch form.General().Role {
	case domain.RoleClient:
		prev, _ := form.Details().(service.ClientDetails)
		return form.SetDetails(service.ClientDetails{
			CompanyName:    p.askDefault("Company name", prev.CompanyName),
			CompanyWebsite: p.askDefault("Company website", prev.CompanyWebsite),
			Industry:       p.askDefault("Industry", prev.Industry),
			TeamSize:       p.askDefault("Team size", prev.TeamSize),
		})
	default:
		prev, _ := form.Details().(service.FreelancerDetails)
		return form.SetDetails(service.FreelancerDetails{
			Title:           p.askDefault("Title", prev.Title),
			Bio:             p.askDefault("Bio", prev.Bio),
			Skills:          p.askDefault("Skills (comma separated)", prev.Skills),
			ExperienceLevel: p.askDefault("Experience level (beginner/intermediate/expert)", defaultString(prev.ExperienceLevel, domain.ExperienceBeginner)),
			HourlyRate:      p.askFloat("Hourly rate"),
			PortfolioLinks:  p.askDefault("Portfolio links (comma separated)", prev.PortfolioLinks),
			Languages:       p.askDefault("Languages (comma separated)", prev.Languages),
		})
	}
}

func (a *App) printReview(form *service.RegistrationForm) {
	payload := form.Payload()
	payload.Password = strings.Repeat("*", 8)
	rendered, err := yaml.Marshal(payload)
	if err != nil {
		fmt.Fprintf(a.out, "%+v\n", payload)
		return
	}
	fmt.Fprintln(a.out, "Review your details:")
	fmt.Fprintln(a.out, string(rendered))
}

func (a *App) printFieldErrors(fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.errOut, "  - %s\n", fields[k])
	}
}

func (a *App) cmdProfile(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	name := fs.String("name", "", "display name")
	title := fs.String("title", "", "professional title")
	bio := fs.String("bio", "", "biography")
	image := fs.String("image", "", "profile image URL")
	skills := fs.String("skills", "", "comma-separated skills")
	level := fs.String("level", "", "experience level")
	rate := fs.Float64("rate", -1, "hourly rate")
	links := fs.String("links", "", "comma-separated portfolio links")
	languages := fs.String("languages", "", "comma-separated languages")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if a.requireUser(ctx) == nil {
		return 1
	}

	update := ports.ProfileUpdate{}
	changed := false
	setString := func(dst **string, v string) {
		if v != "" {
			*dst = &v
			changed = true
		}
	}
	setString(&update.Name, *name)
	setString(&update.Title, *title)
	setString(&update.Bio, *bio)
	setString(&update.ProfileImage, *image)
	setString(&update.ExperienceLevel, *level)
	if *rate >= 0 {
		update.HourlyRate = rate
		changed = true
	}
	setList := func(dst **[]string, v string) {
		if v != "" {
			list := service.SplitList(v)
			*dst = &list
			changed = true
		}
	}
	setList(&update.Skills, *skills)
	setList(&update.PortfolioLinks, *links)
	setList(&update.Languages, *languages)

	if !changed {
		fmt.Fprintln(a.errOut, "nothing to update; pass at least one flag")
		return 2
	}

	user, err := a.backend.UpdateProfile(ctx, update)
	if err != nil {
		return a.fail("profile update failed", err)
	}
	a.session.SetCurrentUser(user)
	fmt.Fprintln(a.out, "Profile updated.")
	return 0
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
