// Package validation provides input validation for API payloads. Each
// validator returns a map of field name to message; an empty map means the
// input is valid.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterInput is the payload for user registration.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the payload for user login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileInput is the payload for profile create/update.
type ProfileInput struct {
	Handle         string `json:"handle"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ExperienceInput is the payload for adding a work history entry.
type ExperienceInput struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// EducationInput is the payload for adding a schooling entry.
type EducationInput struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// PostInput is the payload for creating a post.
type PostInput struct {
	Text string `json:"text"`
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateRegister checks a registration payload.
func ValidateRegister(in RegisterInput) map[string]string {
	errs := map[string]string{}

	if isBlank(in.Name) {
		errs["name"] = "Name field is required"
	} else if l := len(strings.TrimSpace(in.Name)); l < 2 || l > 30 {
		errs["name"] = "Name must be between 2 and 30 characters"
	}

	if isBlank(in.Email) {
		errs["email"] = "Email field is required"
	} else if !emailRegex.MatchString(in.Email) {
		errs["email"] = "Email is invalid"
	}

	if isBlank(in.Password) {
		errs["password"] = "Password field is required"
	} else if l := len(in.Password); l < 6 || l > 30 {
		errs["password"] = "Password must be between 6 and 30 characters"
	}

	return errs
}

// ValidateLogin checks a login payload.
func ValidateLogin(in LoginInput) map[string]string {
	errs := map[string]string{}

	if isBlank(in.Email) {
		errs["email"] = "Email field is required"
	} else if !emailRegex.MatchString(in.Email) {
		errs["email"] = "Email is invalid"
	}

	if isBlank(in.Password) {
		errs["password"] = "Password field is required"
	}

	return errs
}

// ValidateProfile checks a profile create/update payload.
func ValidateProfile(in ProfileInput) map[string]string {
	errs := map[string]string{}

	if isBlank(in.Handle) {
		errs["handle"] = "Profile handle is required"
	} else if l := len(strings.TrimSpace(in.Handle)); l < 2 || l > 40 {
		errs["handle"] = "Handle must be between 2 and 40 characters"
	}

	if isBlank(in.Status) {
		errs["status"] = "Status field is required"
	}

	if isBlank(in.Skills) {
		errs["skills"] = "Skills field is required"
	}

	for field, raw := range map[string]string{
		"website":   in.Website,
		"youtube":   in.Youtube,
		"twitter":   in.Twitter,
		"facebook":  in.Facebook,
		"linkedin":  in.Linkedin,
		"instagram": in.Instagram,
	} {
		if !isBlank(raw) && !isURL(raw) {
			errs[field] = fmt.Sprintf("Not a valid URL for %s", field)
		}
	}

	return errs
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ValidateExperience checks a work history payload.
func ValidateExperience(in ExperienceInput) map[string]string {
	errs := map[string]string{}

	if isBlank(in.Title) {
		errs["title"] = "Job title field is required"
	}
	if isBlank(in.Company) {
		errs["company"] = "Company field is required"
	}
	if in.From.IsZero() {
		errs["from"] = "From date field is required"
	}

	return errs
}

// ValidateEducation checks a schooling payload.
func ValidateEducation(in EducationInput) map[string]string {
	errs := map[string]string{}

	if isBlank(in.School) {
		errs["school"] = "School field is required"
	}
	if isBlank(in.Degree) {
		errs["degree"] = "Degree field is required"
	}
	if isBlank(in.FieldOfStudy) {
		errs["fieldofstudy"] = "Field of study is required"
	}
	if in.From.IsZero() {
		errs["from"] = "From date field is required"
	}

	return errs
}

// ValidatePost checks a post payload.
func ValidatePost(in PostInput) map[string]string {
	errs := map[string]string{}

	if isBlank(in.Text) {
		errs["text"] = "Text field is required"
	} else if l := len(strings.TrimSpace(in.Text)); l < 10 || l > 300 {
		errs["text"] = "Post must be between 10 and 300 characters"
	}

	return errs
}

// SplitSkills turns a comma-separated skills string into a trimmed list.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
