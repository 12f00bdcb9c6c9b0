package domain

// Role tags returned by the backend. They gate both which commands apply and
// which registration fields are collected.
const (
	RoleFreelancer = "freelancer"
	RoleClient     = "client"
	RoleAdmin      = "admin"
)

// Experience levels accepted for freelancer profiles.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceExpert       = "expert"
)

// User is the client-side cache of a backend user record. The backend owns
// the data; everything past the identity fields is optional and only present
// for the role it applies to.
type User struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role,omitempty"`
	ProfileImage    string   `json:"profileImage,omitempty"`
	Title           string   `json:"title,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Country         string   `json:"country,omitempty"`
	City            string   `json:"city,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	HourlyRate      float64  `json:"hourlyRate,omitempty"`
	PortfolioLinks  []string `json:"portfolioLinks,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	CompanyName     string   `json:"companyName,omitempty"`
	CompanyWebsite  string   `json:"companyWebsite,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	TeamSize        string   `json:"teamSize,omitempty"`
}

// IsAdmin reports whether the user carries the admin role tag.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsFreelancer reports whether the user carries the freelancer role tag.
func (u *User) IsFreelancer() bool {
	return u != nil && u.Role == RoleFreelancer
}
