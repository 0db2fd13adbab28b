package server

import (
	"devconnect/internal/models"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id, 0)
	if err != nil {
		return s.respondLookupError(c, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/posts. The author's name and avatar are
// snapshotted onto the post at creation time.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	user := s.currentUser(c)

	var req validation.PostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationErrors(map[string]string{"error": "Invalid request body"}))
	}

	if errs := validation.ValidatePost(req); len(errs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationErrors(errs))
	}

	post := &models.Post{
		UserID: user.ID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. Only the author may delete a post.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id, userID)
	if err != nil {
		return s.respondLookupError(c, err)
	}

	if post.UserID != userID {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewForbiddenError("User not authorized"))
	}

	if delErr := s.postRepo.Delete(c.Context(), id); delErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, delErr)
	}

	return c.JSON(fiber.Map{"success": true})
}

// LikePost handles POST /api/posts/like/:id. A user may hold at most one
// like per post; the like list is scanned before inserting.
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id, userID)
	if err != nil {
		return s.respondLookupError(c, err)
	}

	for _, like := range post.Likes {
		if like.UserID == userID {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewConflictError("alreadyliked", "User already liked this post"))
		}
	}

	if likeErr := s.postRepo.AddLike(c.Context(), post.ID, userID); likeErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, likeErr)
	}

	updated, err := s.postRepo.GetByID(c.Context(), id, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(updated)
}

// UnlikePost handles POST /api/posts/unlike/:id. The caller's like is located
// by scanning the like list; unliking a post that was never liked is rejected.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id, userID)
	if err != nil {
		return s.respondLookupError(c, err)
	}

	var likeID uint
	for _, like := range post.Likes {
		if like.UserID == userID {
			likeID = like.ID
			break
		}
	}
	if likeID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewPreconditionError("notliked", "You have not yet liked this post"))
	}

	if rmErr := s.postRepo.RemoveLike(c.Context(), post.ID, likeID); rmErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, rmErr)
	}

	updated, err := s.postRepo.GetByID(c.Context(), id, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(updated)
}
