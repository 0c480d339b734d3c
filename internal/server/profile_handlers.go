package server

import (
	"github.com/prasad-s-h/dev-connector/internal/models"
	"github.com/prasad-s-h/dev-connector/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UpsertProfile handles POST /api/profile: creates the caller's profile or
// partially updates the existing one. Absent fields never overwrite stored
// values.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var patch service.ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.Upsert(c.UserContext(), currentUserID(c), patch)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// GetMyProfile handles GET /api/profile/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetOwn(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// GetProfileByUser handles GET /api/profile/user/:user_id. A malformed id is
// answered like an unknown one.
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return models.RespondWithError(c,
			models.NewNotFoundError("Profile not found"))
	}

	profile, err := s.profileService.GetByUser(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// ListProfiles handles GET /api/profile.
func (s *Server) ListProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profiles)
}

// DeleteAccount handles DELETE /api/profile: removes the caller's profile and
// user record. The caller's posts are intentionally left in place.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.UserContext(), currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "User deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var in service.ExperienceInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddExperience(c.UserContext(), currentUserID(c), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// RemoveExperience handles DELETE /api/profile/experience/:exp_id. An unknown
// or malformed id leaves the profile unchanged.
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	expID, _ := parseID(c, "exp_id")

	profile, err := s.profileService.RemoveExperience(c.UserContext(), currentUserID(c), expID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// AddEducation handles PUT /api/profile/education.
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var in service.EducationInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddEducation(c.UserContext(), currentUserID(c), in)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// RemoveEducation handles DELETE /api/profile/education/:edu_id.
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	eduID, _ := parseID(c, "edu_id")

	profile, err := s.profileService.RemoveEducation(c.UserContext(), currentUserID(c), eduID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}

// GetGithubRepos handles GET /api/profile/github/users/:username: lists the
// GitHub user's public repository names.
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	names, err := s.profileService.GithubRepos(c.UserContext(), c.Params("username"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"userRepo": names})
}
