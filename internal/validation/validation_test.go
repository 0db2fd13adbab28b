package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name       string
		input      RegisterInput
		wantFields []string
	}{
		{
			name:  "Valid",
			input: RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"},
		},
		{
			name:       "All Missing",
			input:      RegisterInput{},
			wantFields: []string{"name", "email", "password"},
		},
		{
			name:       "Name Too Short",
			input:      RegisterInput{Name: "A", Email: "a@x.com", Password: "secret123"},
			wantFields: []string{"name"},
		},
		{
			name:       "Invalid Email",
			input:      RegisterInput{Name: "Alice", Email: "not-an-email", Password: "secret123"},
			wantFields: []string{"email"},
		},
		{
			name:       "Password Too Short",
			input:      RegisterInput{Name: "Alice", Email: "a@x.com", Password: "abc"},
			wantFields: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegister(tt.input)
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Empty(t, ValidateLogin(LoginInput{Email: "a@x.com", Password: "pw"}))

	errs := ValidateLogin(LoginInput{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestValidateProfile(t *testing.T) {
	valid := ProfileInput{Handle: "alice", Status: "Developer", Skills: "Go,SQL"}
	assert.Empty(t, ValidateProfile(valid))

	errs := ValidateProfile(ProfileInput{})
	assert.Contains(t, errs, "handle")
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "skills")

	badURL := valid
	badURL.Website = "not a url"
	assert.Contains(t, ValidateProfile(badURL), "website")

	badTwitter := valid
	badTwitter.Twitter = "alice"
	assert.Contains(t, ValidateProfile(badTwitter), "twitter")
}

func TestValidateExperience(t *testing.T) {
	valid := ExperienceInput{Title: "Engineer", Company: "Acme", From: time.Now()}
	assert.Empty(t, ValidateExperience(valid))

	errs := ValidateExperience(ExperienceInput{})
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "company")
	assert.Contains(t, errs, "from")
}

func TestValidateEducation(t *testing.T) {
	valid := EducationInput{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: time.Now()}
	assert.Empty(t, ValidateEducation(valid))

	errs := ValidateEducation(EducationInput{})
	assert.Contains(t, errs, "school")
	assert.Contains(t, errs, "degree")
	assert.Contains(t, errs, "fieldofstudy")
	assert.Contains(t, errs, "from")
}

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"Valid", "This is a long enough post", false},
		{"Empty", "", true},
		{"Too Short", "short", true},
		{"Too Long", strings.Repeat("a", 301), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePost(PostInput{Text: tt.text})
			if tt.wantErr {
				assert.Contains(t, errs, "text")
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, SplitSkills("Go, SQL ,Docker"))
	assert.Equal(t, []string{"Go"}, SplitSkills("Go,,  ,"))
	assert.Empty(t, SplitSkills(""))
}
