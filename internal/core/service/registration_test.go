package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

func validGeneral() GeneralInfo {
	return GeneralInfo{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Role:            domain.RoleFreelancer,
		Country:         "Nigeria",
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a, b ,c", []string{"a", "b", "c"}},
		{"design, coding", []string{"design", "coding"}},
		{"single", []string{"single"}},
		{", ,", []string{}},
		{"", []string{}},
	}
	for _, tt := range tests {
		got := SplitList(tt.in)
		if got == nil {
			t.Fatalf("SplitList(%q) returned nil, want a non-nil list", tt.in)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRegistrationForm_BlocksInvalidGeneralInfo(t *testing.T) {
	form := NewRegistrationForm(&stubBackend{}, nil)
	form.SetGeneral(GeneralInfo{
		Name:            "Ada",
		Email:           "not-an-email",
		Password:        "abc",
		ConfirmPassword: "abcdef",
		Role:            domain.RoleFreelancer,
	})

	err := form.Next()
	if !errors.Is(err, ErrFieldValidation) {
		t.Fatalf("expected ErrFieldValidation, got %v", err)
	}
	if form.Step() != StepGeneralInfo {
		t.Fatalf("invalid fields must block the transition, ended at %s", form.Step())
	}

	fieldErrs := form.FieldErrors()
	for _, field := range []string{"Email", "Password", "ConfirmPassword"} {
		if fieldErrs[field] == "" {
			t.Errorf("expected a message for %s, got %v", field, fieldErrs)
		}
	}
}

func TestRegistrationForm_ValuesSurviveBackAndNext(t *testing.T) {
	form := NewRegistrationForm(&stubBackend{}, nil)
	form.SetGeneral(validGeneral())

	if err := form.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if form.Step() != StepRoleDetails {
		t.Fatalf("expected role-details step, got %s", form.Step())
	}

	details := FreelancerDetails{Title: "Designer", Skills: "figma, css", ExperienceLevel: domain.ExperienceExpert}
	if err := form.SetDetails(details); err != nil {
		t.Fatalf("set details: %v", err)
	}

	form.Back()
	if form.Step() != StepGeneralInfo {
		t.Fatalf("expected general-info step after Back, got %s", form.Step())
	}
	if form.General() != validGeneral() {
		t.Fatalf("general info changed across Back: %+v", form.General())
	}

	if err := form.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if form.Details() != RoleDetails(details) {
		t.Fatalf("role details lost across Back/Next: %+v", form.Details())
	}
}

func TestRegistrationForm_RoleChangeResetsDetails(t *testing.T) {
	form := NewRegistrationForm(&stubBackend{}, nil)
	form.SetGeneral(validGeneral())
	if err := form.SetDetails(FreelancerDetails{Title: "Designer"}); err != nil {
		t.Fatalf("set details: %v", err)
	}

	g := validGeneral()
	g.Role = domain.RoleClient
	form.SetGeneral(g)

	if form.Details() != nil {
		t.Fatalf("changing the role must reset the role branch, got %+v", form.Details())
	}
}

func TestRegistrationForm_RejectsMismatchedDetails(t *testing.T) {
	form := NewRegistrationForm(&stubBackend{}, nil)
	form.SetGeneral(validGeneral())

	if err := form.SetDetails(ClientDetails{CompanyName: "Acme"}); !errors.Is(err, ErrWrongRole) {
		t.Fatalf("expected ErrWrongRole, got %v", err)
	}
}

func TestRegistrationForm_Payload(t *testing.T) {
	form := NewRegistrationForm(&stubBackend{}, nil)
	form.SetGeneral(validGeneral())
	if err := form.SetDetails(FreelancerDetails{
		Title:      "Designer",
		Skills:     "design, coding",
		HourlyRate: 25,
		Languages:  "en",
	}); err != nil {
		t.Fatalf("set details: %v", err)
	}

	payload := form.Payload()
	if !reflect.DeepEqual(payload.Skills, []string{"design", "coding"}) {
		t.Errorf("skills = %v, want [design coding]", payload.Skills)
	}
	if !reflect.DeepEqual(payload.Languages, []string{"en"}) {
		t.Errorf("languages = %v, want [en]", payload.Languages)
	}
	if payload.PortfolioLinks == nil || len(payload.PortfolioLinks) != 0 {
		t.Errorf("portfolioLinks = %v, want an empty non-nil list", payload.PortfolioLinks)
	}
	if payload.HourlyRate != 25 || payload.Role != domain.RoleFreelancer {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestRegistrationForm_PayloadClient(t *testing.T) {
	form := NewRegistrationForm(&stubBackend{}, nil)
	g := validGeneral()
	g.Role = domain.RoleClient
	form.SetGeneral(g)
	if err := form.SetDetails(ClientDetails{CompanyName: "Acme", Industry: "retail"}); err != nil {
		t.Fatalf("set details: %v", err)
	}

	payload := form.Payload()
	if payload.CompanyName != "Acme" || payload.Industry != "retail" {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if len(payload.Skills) != 0 {
		t.Errorf("client payload must not carry skills, got %v", payload.Skills)
	}
}

func TestRegistrationForm_SubmitOnlyFromReview(t *testing.T) {
	form := NewRegistrationForm(&stubBackend{}, nil)
	form.SetGeneral(validGeneral())

	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatalf("expected submit to be rejected outside the review step")
	}
}

func TestRegistrationForm_SubmitEstablishesSession(t *testing.T) {
	var sent ports.RegisterInput
	backend := &stubBackend{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			sent = in
			return &ports.AuthResult{Token: "T", User: &domain.User{ID: "1", Role: in.Role}}, nil
		},
	}
	store := &memStore{}
	session := NewSession(backend, store, zerolog.Nop())

	form := NewRegistrationForm(backend, session)
	form.SetGeneral(validGeneral())
	if err := form.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := form.SetDetails(FreelancerDetails{Skills: "design, coding"}); err != nil {
		t.Fatalf("set details: %v", err)
	}
	if err := form.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}

	user, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if user.ID != "1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !reflect.DeepEqual(sent.Skills, []string{"design", "coding"}) {
		t.Fatalf("submitted skills = %v, want [design coding]", sent.Skills)
	}
	if store.token != "T" || session.CurrentUser() == nil {
		t.Fatalf("successful submit must establish the session")
	}
}

func TestRegistrationForm_SubmitFailureStaysOnReview(t *testing.T) {
	backend := &stubBackend{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, errors.New("email already registered")
		},
	}
	session := NewSession(backend, &memStore{}, zerolog.Nop())

	form := NewRegistrationForm(backend, session)
	form.SetGeneral(validGeneral())
	if err := form.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := form.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}

	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatalf("expected submit error")
	}
	if form.Step() != StepReview {
		t.Fatalf("failed submit must stay on review, got %s", form.Step())
	}
	if session.CurrentUser() != nil {
		t.Fatalf("failed submit must not establish a session")
	}
}
