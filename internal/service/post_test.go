package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasad-s-h/dev-connector/internal/models"
)

func TestCreatePostRequiresText(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())

	_, err := svc.Create(context.Background(), 1, "   ")
	appErr := requireAppErrorCode(t, err, models.CodeValidation)
	assert.Equal(t, []string{"Text is required"}, appErr.Messages)
}

func TestCreatePostCopiesAuthorDetails(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Name: "Jane", Avatar: "https://example.com/jane.png"}, nil
	}
	var created *models.Post
	postRepo := noopPostRepo()
	postRepo.createFn = func(_ context.Context, post *models.Post) error {
		post.ID = 11
		created = post
		return nil
	}
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return created, nil
	}
	svc := NewPostService(postRepo, userRepo)

	post, err := svc.Create(context.Background(), 4, "first post")
	require.NoError(t, err)

	assert.Equal(t, uint(11), post.ID)
	assert.Equal(t, uint(4), post.UserID)
	assert.Equal(t, "Jane", post.Name)
	assert.Equal(t, "https://example.com/jane.png", post.Avatar)
}

func TestDeletePostOnlyByAuthor(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1}, nil
	}
	var deleted bool
	postRepo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := NewPostService(postRepo, noopUserRepo())

	err := svc.Delete(context.Background(), 2, 10)
	appErr := requireAppErrorCode(t, err, models.CodeForbidden)
	assert.Equal(t, []string{"User not authorized"}, appErr.Messages)
	assert.False(t, deleted)

	require.NoError(t, svc.Delete(context.Background(), 1, 10))
	assert.True(t, deleted)
}

func TestDeleteMissingPost(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("No post found")
	}
	svc := NewPostService(postRepo, noopUserRepo())

	err := svc.Delete(context.Background(), 1, 10)
	requireAppErrorCode(t, err, models.CodeNotFound)
}

func TestLikePostTwice(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.isLikedFn = func(_ context.Context, _, _ uint) (bool, error) { return true, nil }
	svc := NewPostService(postRepo, noopUserRepo())

	_, err := svc.Like(context.Background(), 1, 10)
	appErr := requireAppErrorCode(t, err, models.CodeBadRequest)
	assert.Equal(t, []string{"Post already liked"}, appErr.Messages)
}

func TestLikePostReturnsLikes(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.listLikesFn = func(_ context.Context, postID uint) ([]models.Like, error) {
		return []models.Like{{ID: 1, PostID: postID, UserID: 1}}, nil
	}
	svc := NewPostService(postRepo, noopUserRepo())

	likes, err := svc.Like(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, uint(1), likes[0].UserID)
}

func TestUnlikeWithoutLike(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())

	_, err := svc.Unlike(context.Background(), 1, 10)
	appErr := requireAppErrorCode(t, err, models.CodeBadRequest)
	assert.Equal(t, []string{"Post has not been liked"}, appErr.Messages)
}

func TestUnlikeRemovesLike(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.isLikedFn = func(_ context.Context, _, _ uint) (bool, error) { return true, nil }
	var unliked bool
	postRepo.unlikeFn = func(_ context.Context, userID, postID uint) error {
		unliked = true
		assert.Equal(t, uint(1), userID)
		assert.Equal(t, uint(10), postID)
		return nil
	}
	svc := NewPostService(postRepo, noopUserRepo())

	likes, err := svc.Unlike(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.True(t, unliked)
	assert.Empty(t, likes)
}

func TestAddCommentRequiresText(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())

	_, err := svc.AddComment(context.Background(), 1, 10, "")
	requireAppErrorCode(t, err, models.CodeValidation)
}

func TestAddCommentCopiesAuthorDetails(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Name: "Jane", Avatar: "https://example.com/jane.png"}, nil
	}
	var added *models.Comment
	postRepo := noopPostRepo()
	postRepo.addCommentFn = func(_ context.Context, comment *models.Comment) error {
		added = comment
		return nil
	}
	svc := NewPostService(postRepo, userRepo)

	_, err := svc.AddComment(context.Background(), 4, 10, "nice post")
	require.NoError(t, err)
	require.NotNil(t, added)

	assert.Equal(t, uint(10), added.PostID)
	assert.Equal(t, uint(4), added.UserID)
	assert.Equal(t, "Jane", added.Name)
	assert.Equal(t, "nice post", added.Text)
}

func TestRemoveCommentNotFound(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())

	_, err := svc.RemoveComment(context.Background(), 1, 10, 99)
	appErr := requireAppErrorCode(t, err, models.CodeNotFound)
	assert.Equal(t, []string{"Comment not found"}, appErr.Messages)
}

func TestRemoveCommentOnlyByAuthor(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getCommentFn = func(_ context.Context, postID, commentID uint) (*models.Comment, error) {
		return &models.Comment{ID: commentID, PostID: postID, UserID: 2}, nil
	}
	var deleted bool
	postRepo.deleteCommentFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := NewPostService(postRepo, noopUserRepo())

	_, err := svc.RemoveComment(context.Background(), 1, 10, 5)
	requireAppErrorCode(t, err, models.CodeForbidden)
	assert.False(t, deleted)

	_, err = svc.RemoveComment(context.Background(), 2, 10, 5)
	require.NoError(t, err)
	assert.True(t, deleted)
}
