package server

import (
	"strconv"

	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profiles
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("noprofile", "There is no profile for this user"))
	}

	return c.JSON(profile)
}

// GetAllProfiles handles GET /api/profiles/all. An empty database yields an
// empty list, not an error.
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileRepo.GetAll(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	return c.JSON(profiles)
}

// GetProfileByHandle handles GET /api/profiles/handle/:handle
func (s *Server) GetProfileByHandle(c *fiber.Ctx) error {
	handle := c.Params("handle")

	profile, err := s.profileRepo.GetByHandle(c.Context(), handle)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("noprofile", "There is no profile for this user"))
	}

	return c.JSON(profile)
}

// GetProfileByUserID handles GET /api/profiles/user/:user_id
func (s *Server) GetProfileByUserID(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("user_id"), 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("noprofile", "There is no profile for this user"))
	}

	profile, err2 := s.profileRepo.GetByUserID(c.Context(), uint(userID))
	if err2 != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err2)
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("noprofile", "There is no profile for this user"))
	}

	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profiles. An existing profile is updated in
// place; otherwise the handle is checked for uniqueness and a new profile is
// created. The check and the write are not atomic; the unique index on handle
// is the backstop for concurrent submissions.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req validation.ProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationErrors(map[string]string{"error": "Invalid request body"}))
	}

	if errs := validation.ValidateProfile(req); len(errs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationErrors(errs))
	}

	social := models.SocialLinks{
		Youtube:   req.Youtube,
		Twitter:   req.Twitter,
		Facebook:  req.Facebook,
		Linkedin:  req.Linkedin,
		Instagram: req.Instagram,
	}

	existing, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if existing != nil {
		existing.Handle = req.Handle
		existing.Company = req.Company
		existing.Website = req.Website
		existing.Location = req.Location
		existing.Status = req.Status
		existing.Skills = validation.SplitSkills(req.Skills)
		existing.Bio = req.Bio
		existing.GithubUsername = req.GithubUsername
		existing.Social = social

		if saveErr := s.profileRepo.Save(c.Context(), existing); saveErr != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, saveErr)
		}
		return c.JSON(existing)
	}

	taken, err := s.profileRepo.GetByHandle(c.Context(), req.Handle)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if taken != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewConflictError("handle", "That handle already exists"))
	}

	profile := &models.Profile{
		UserID:         userID,
		Handle:         req.Handle,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         validation.SplitSkills(req.Skills),
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social:         social,
	}

	if createErr := s.profileRepo.Create(c.Context(), profile); createErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, createErr)
	}

	return c.JSON(profile)
}

// AddExperience handles POST /api/profiles/experience
func (s *Server) AddExperience(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req validation.ExperienceInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationErrors(map[string]string{"error": "Invalid request body"}))
	}

	if errs := validation.ValidateExperience(req); len(errs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationErrors(errs))
	}

	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("noprofile", "There is no profile for this user"))
	}

	exp := &models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}
	if addErr := s.profileRepo.AddExperience(c.Context(), profile, exp); addErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, addErr)
	}

	return s.respondWithProfile(c, userID)
}

// AddEducation handles POST /api/profiles/education
func (s *Server) AddEducation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req validation.EducationInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationErrors(map[string]string{"error": "Invalid request body"}))
	}

	if errs := validation.ValidateEducation(req); len(errs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationErrors(errs))
	}

	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("noprofile", "There is no profile for this user"))
	}

	edu := &models.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}
	if addErr := s.profileRepo.AddEducation(c.Context(), profile, edu); addErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, addErr)
	}

	return s.respondWithProfile(c, userID)
}

// RemoveExperience handles DELETE /api/profiles/experience/:id. Unknown
// entry identifiers are a silent no-op; the profile is returned either way.
func (s *Server) RemoveExperience(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	expID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("noprofile", "There is no profile for this user"))
	}

	if rmErr := s.profileRepo.RemoveExperience(c.Context(), profile, expID); rmErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, rmErr)
	}

	return s.respondWithProfile(c, userID)
}

// RemoveEducation handles DELETE /api/profiles/education/:id
func (s *Server) RemoveEducation(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	eduID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("noprofile", "There is no profile for this user"))
	}

	if rmErr := s.profileRepo.RemoveEducation(c.Context(), profile, eduID); rmErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, rmErr)
	}

	return s.respondWithProfile(c, userID)
}

// DeleteAccount handles DELETE /api/profiles. The profile and user deletes
// are a best-effort pair, not a transaction.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if profile != nil {
		if delErr := s.profileRepo.Delete(c.Context(), profile.ID); delErr != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, delErr)
		}
	}

	if delErr := s.userRepo.Delete(c.Context(), userID); delErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, delErr)
	}

	return c.JSON(fiber.Map{"success": true})
}

// respondWithProfile re-reads the caller's profile so responses include the
// freshly mutated experience/education lists.
func (s *Server) respondWithProfile(c *fiber.Ctx, userID uint) error {
	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(profile)
}
