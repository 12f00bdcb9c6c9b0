package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

// Step identifies the three sequential registration steps.
type Step int

const (
	StepGeneralInfo Step = iota
	StepRoleDetails
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepGeneralInfo:
		return "General Info"
	case StepRoleDetails:
		return "Role Details"
	case StepReview:
		return "Review & Submit"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// ErrFieldValidation blocks a forward transition out of the general-info
// step. Per-field messages are available through FieldErrors.
var ErrFieldValidation = errors.New("registration fields failed validation")

// ErrWrongRole is returned when role details are set for a role other than
// the one chosen in the general-info step.
var ErrWrongRole = errors.New("details do not match the chosen role")

// GeneralInfo holds the common fields collected in step one. List-like
// fields live in the role branches, not here.
type GeneralInfo struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"required,oneof=freelancer client"`
	Phone           string
	Country         string
	City            string
	ProfileImage    string
}

// RoleDetails is the role-specific branch of the form: exactly one of
// FreelancerDetails or ClientDetails, selected by the role tag from step
// one. The unexported method keeps the sum closed.
type RoleDetails interface {
	roleTag() string
}

// FreelancerDetails are collected in step two when the freelancer role was
// chosen. Skills, PortfolioLinks and Languages are comma-delimited free
// text until final submission splits them.
type FreelancerDetails struct {
	Title           string
	Bio             string
	Skills          string
	ExperienceLevel string `validate:"omitempty,oneof=beginner intermediate expert"`
	HourlyRate      float64
	PortfolioLinks  string
	Languages       string
}

func (FreelancerDetails) roleTag() string { return domain.RoleFreelancer }

// ClientDetails are collected in step two when the client role was chosen.
type ClientDetails struct {
	CompanyName    string
	CompanyWebsite string
	Industry       string
	TeamSize       string
}

func (ClientDetails) roleTag() string { return domain.RoleClient }

// RegistrationForm drives the three-step registration flow: general info,
// role details, review. Transitions are Next/Back only, no skipping, and
// entered values survive any number of Back/Next round trips. Submission
// happens once, from the review step.
type RegistrationForm struct {
	backend ports.Backend
	session ports.SessionService
	v       *validator.Validate

	step    Step
	general GeneralInfo
	details RoleDetails

	fieldErrors map[string]string
}

func NewRegistrationForm(backend ports.Backend, session ports.SessionService) *RegistrationForm {
	return &RegistrationForm{
		backend: backend,
		session: session,
		v:       validator.New(),
		step:    StepGeneralInfo,
	}
}

// Step returns the current step.
func (f *RegistrationForm) Step() Step { return f.step }

// General returns the values entered in step one.
func (f *RegistrationForm) General() GeneralInfo { return f.general }

// SetGeneral overwrites the step-one values. Changing the role resets the
// role branch, since the old branch's fields no longer apply.
func (f *RegistrationForm) SetGeneral(g GeneralInfo) {
	if f.details != nil && f.details.roleTag() != g.Role {
		f.details = nil
	}
	f.general = g
}

// Details returns the role branch entered so far, or nil.
func (f *RegistrationForm) Details() RoleDetails { return f.details }

// SetDetails records the role branch. The branch must match the role chosen
// in step one.
func (f *RegistrationForm) SetDetails(d RoleDetails) error {
	if d.roleTag() != f.general.Role {
		return fmt.Errorf("%w: form role is %q, details are for %q", ErrWrongRole, f.general.Role, d.roleTag())
	}
	if err := f.v.Struct(d); err != nil {
		f.fieldErrors = fieldMessages(err)
		return ErrFieldValidation
	}
	f.details = d
	return nil
}

// FieldErrors reports the per-field messages from the last failed
// validation, keyed by field name.
func (f *RegistrationForm) FieldErrors() map[string]string { return f.fieldErrors }

// Next advances one step. Leaving the general-info step requires all field
// validation to pass; a failure blocks the transition and fills
// FieldErrors. Review is the last step: Submit, not Next, leaves it.
func (f *RegistrationForm) Next() error {
	switch f.step {
	case StepGeneralInfo:
		if err := f.v.Struct(f.general); err != nil {
			f.fieldErrors = fieldMessages(err)
			return ErrFieldValidation
		}
		f.fieldErrors = nil
		f.step = StepRoleDetails
	case StepRoleDetails:
		f.step = StepReview
	case StepReview:
		return errors.New("already at the review step")
	}
	return nil
}

// Back returns to the previous step. Values entered on any step are kept.
func (f *RegistrationForm) Back() {
	if f.step > StepGeneralInfo {
		f.step--
	}
}

// Payload assembles the flat registration payload: the common fields plus
// the chosen role branch, with comma-delimited free text split into lists.
func (f *RegistrationForm) Payload() ports.RegisterInput {
	in := ports.RegisterInput{
		Name:           f.general.Name,
		Email:          f.general.Email,
		Password:       f.general.Password,
		Role:           f.general.Role,
		Phone:          f.general.Phone,
		Country:        f.general.Country,
		City:           f.general.City,
		ProfileImage:   f.general.ProfileImage,
		Skills:         []string{},
		PortfolioLinks: []string{},
		Languages:      []string{},
	}

	switch d := f.details.(type) {
	case FreelancerDetails:
		in.Title = d.Title
		in.Bio = d.Bio
		in.Skills = SplitList(d.Skills)
		in.ExperienceLevel = d.ExperienceLevel
		in.HourlyRate = d.HourlyRate
		in.PortfolioLinks = SplitList(d.PortfolioLinks)
		in.Languages = SplitList(d.Languages)
	case ClientDetails:
		in.CompanyName = d.CompanyName
		in.CompanyWebsite = d.CompanyWebsite
		in.Industry = d.Industry
		in.TeamSize = d.TeamSize
	}
	return in
}

// Submit sends the assembled payload. On success the returned credential
// and user are established as the current session. On failure the form
// stays on the review step so the caller can correct and retry.
func (f *RegistrationForm) Submit(ctx context.Context) (*domain.User, error) {
	if f.step != StepReview {
		return nil, fmt.Errorf("submit is only allowed from the review step (currently at %s)", f.step)
	}

	res, err := f.backend.Register(ctx, f.Payload())
	if err != nil {
		return nil, err
	}
	if err := f.session.Establish(res.Token, res.User); err != nil {
		return nil, err
	}
	return res.User, nil
}

// SplitList turns comma-delimited free text into a trimmed,
// order-preserving list. Empty input yields an empty list, never nil.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// fieldMessages converts validator errors into human-readable per-field
// messages.
func fieldMessages(err error) map[string]string {
	out := map[string]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out[""] = err.Error()
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = fieldError(fe)
	}
	return out
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return "passwords must match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
