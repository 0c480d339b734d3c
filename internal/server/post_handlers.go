package server

import (
	"github.com/prasad-s-h/dev-connector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(c.UserContext(), currentUserID(c), req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// GetPosts handles GET /api/posts: all posts, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("No post found"))
	}

	post, err := s.postService.Get(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id: author-only.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("No post found"))
	}

	if err := s.postService.Delete(c.UserContext(), currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id and returns the likes list.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("No post found"))
	}

	likes, err := s.postService.Like(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id and returns the likes list.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("No post found"))
	}

	likes, err := s.postService.Unlike(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(likes)
}

// CreateComment handles POST /api/posts/comment/:id and returns the comment list.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("No post found"))
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	comments, err := s.postService.AddComment(c.UserContext(), currentUserID(c), postID, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comments)
}

// DeleteComment handles DELETE /api/posts/comment/:post_id/:comment_id:
// comment-author-only; returns the remaining comment list.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, ok := parseID(c, "post_id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("No post found"))
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return models.RespondWithError(c, models.NewNotFoundError("Comment not found"))
	}

	comments, err := s.postService.RemoveComment(c.UserContext(), currentUserID(c), postID, commentID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comments)
}
