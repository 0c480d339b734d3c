package service

import (
	"context"
	"strings"
	"time"

	"github.com/prasad-s-h/dev-connector/internal/cache"
	"github.com/prasad-s-h/dev-connector/internal/github"
	"github.com/prasad-s-h/dev-connector/internal/models"
	"github.com/prasad-s-h/dev-connector/internal/repository"
)

// ProfileService handles profile upserts, experience/education lists, account
// deletion and the GitHub repository passthrough.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	github      *github.Client
}

// ProfilePatch carries profile fields with per-field presence: a nil pointer
// means "not supplied, leave as is", a non-nil pointer overwrites, even with
// an empty value.
type ProfilePatch struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Status         *string `json:"status"`
	Skills         *string `json:"skills"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Youtube        *string `json:"youtube"`
	Facebook       *string `json:"facebook"`
	Twitter        *string `json:"twitter"`
	Instagram      *string `json:"instagram"`
	Linkedin       *string `json:"linkedin"`
}

// ExperienceInput carries a new experience entry. Dates arrive as strings and
// are validated here.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationInput carries a new education entry.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// NewProfileService returns a ProfileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	githubClient *github.Client,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		github:      githubClient,
	}
}

// Upsert creates the caller's profile or partially updates the existing one.
// Only supplied fields overwrite; status and skills are always required.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, patch ProfilePatch) (*models.Profile, error) {
	var problems []string
	if patch.Status == nil || strings.TrimSpace(*patch.Status) == "" {
		problems = append(problems, "Status is required")
	}
	if patch.Skills == nil || strings.TrimSpace(*patch.Skills) == "" {
		problems = append(problems, "Skills is required")
	}
	if len(problems) > 0 {
		return nil, models.NewValidationError(problems...)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	isNew := profile == nil
	if isNew {
		profile = &models.Profile{UserID: userID}
	}
	applyPatch(profile, patch)

	if isNew {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}

	return s.reload(ctx, userID)
}

func applyPatch(profile *models.Profile, patch ProfilePatch) {
	if patch.Company != nil {
		profile.Company = *patch.Company
	}
	if patch.Website != nil {
		profile.Website = *patch.Website
	}
	if patch.Location != nil {
		profile.Location = *patch.Location
	}
	if patch.Status != nil {
		profile.Status = *patch.Status
	}
	if patch.Skills != nil {
		profile.Skills = SplitSkills(*patch.Skills)
	}
	if patch.Bio != nil {
		profile.Bio = *patch.Bio
	}
	if patch.GithubUsername != nil {
		profile.GithubUsername = *patch.GithubUsername
	}
	if patch.Youtube != nil {
		profile.Youtube = *patch.Youtube
	}
	if patch.Facebook != nil {
		profile.Facebook = *patch.Facebook
	}
	if patch.Twitter != nil {
		profile.Twitter = *patch.Twitter
	}
	if patch.Instagram != nil {
		profile.Instagram = *patch.Instagram
	}
	if patch.Linkedin != nil {
		profile.Linkedin = *patch.Linkedin
	}
}

// SplitSkills turns a comma-separated skills string into a trimmed ordered
// list, dropping empty entries.
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetOwn returns the caller's profile.
func (s *ProfileService) GetOwn(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("There is no profile for this user")
	}
	return profile, nil
}

// GetByUser returns another user's profile.
func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile not found")
	}
	return profile, nil
}

// List returns all profiles.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// DeleteAccount removes the caller's profile (if any) and user record.
// Posts are intentionally left in place.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// AddExperience prepends a work history entry to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Profile, error) {
	var problems []string
	if strings.TrimSpace(in.Title) == "" {
		problems = append(problems, "Title is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		problems = append(problems, "Company is required")
	}
	from, fromProblems := parseRequiredDate(in.From, "From date")
	problems = append(problems, fromProblems...)
	to, toProblems := parseOptionalDate(in.To, "To date")
	problems = append(problems, toProblems...)
	if len(problems) > 0 {
		return nil, models.NewValidationError(problems...)
	}

	profile, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, profile.ID, exp); err != nil {
		return nil, err
	}

	return s.reload(ctx, userID)
}

// RemoveExperience deletes the entry with the given id from the caller's
// profile. An unknown id is a no-op so removal is idempotent.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.reload(ctx, userID)
}

// AddEducation prepends a schooling entry to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Profile, error) {
	var problems []string
	if strings.TrimSpace(in.School) == "" {
		problems = append(problems, "School is required")
	}
	if strings.TrimSpace(in.Degree) == "" {
		problems = append(problems, "Degree is required")
	}
	if strings.TrimSpace(in.FieldOfStudy) == "" {
		problems = append(problems, "Field of study is required")
	}
	from, fromProblems := parseRequiredDate(in.From, "From date")
	problems = append(problems, fromProblems...)
	to, toProblems := parseOptionalDate(in.To, "To date")
	problems = append(problems, toProblems...)
	if len(problems) > 0 {
		return nil, models.NewValidationError(problems...)
	}

	profile, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, profile.ID, edu); err != nil {
		return nil, err
	}

	return s.reload(ctx, userID)
}

// RemoveEducation deletes the entry with the given id from the caller's profile.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.DeleteEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.reload(ctx, userID)
}

// GithubRepos lists a GitHub user's public repository names, caching upstream
// responses briefly.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]string, error) {
	if strings.TrimSpace(username) == "" {
		return nil, models.NewNotFoundError("GitHub profile not found")
	}

	var names []string
	err := cache.Aside(ctx, cache.GithubReposKey(username), &names, cache.GithubTTL, func() error {
		var fetchErr error
		names, fetchErr = s.github.ListRepos(ctx, username)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *ProfileService) reload(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("There is no profile for this user")
	}
	return profile, nil
}

// dateLayouts are the accepted request formats for experience/education dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseRequiredDate(value, label string) (time.Time, []string) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, []string{label + " is required"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, []string{"Invalid " + strings.ToLower(label)}
}

func parseOptionalDate(value, label string) (*time.Time, []string) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, []string{"Invalid " + strings.ToLower(label)}
}
