package server

import (
	"net/http"
	"testing"
	"time"

	"telx/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListComments(t *testing.T) {
	_, app, db := newTestServer(t)
	author := createUser(t, db, 100, "author")
	commenter := createUser(t, db, 200, "commenter")
	post := createPost(t, db, author.ID, "discussable")

	target := "/api/posts/" + itoa(post.ID) + "/comments"

	resp, err := app.Test(asUser(jsonRequest(http.MethodPost, target, fiber.Map{
		"content": "  great point  ",
	}), commenter.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var comment models.Comment
	decodeBody(t, resp, &comment)
	assert.Equal(t, "great point", comment.Content)
	assert.Equal(t, "@commenter", comment.Author.Handle)

	// Backdate the first comment so ordering does not depend on timing.
	require.NoError(t, db.Model(&models.Comment{}).Where("id = ?", comment.ID).
		Update("created_at", comment.CreatedAt.Add(-time.Minute)).Error)

	resp, err = app.Test(asUser(jsonRequest(http.MethodPost, target, fiber.Map{
		"content": "follow-up",
	}), commenter.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(jsonRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing struct {
		Post     models.Post      `json:"post"`
		Comments []models.Comment `json:"comments"`
	}
	decodeBody(t, resp, &listing)
	assert.Equal(t, post.ID, listing.Post.ID)
	assert.Equal(t, int64(2), listing.Post.CommentsCount)
	require.Len(t, listing.Comments, 2)
	assert.Equal(t, "follow-up", listing.Comments[0].Content)
	assert.Equal(t, "great point", listing.Comments[1].Content)

	// The post view reflects the comments immediately.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/posts/"+itoa(post.ID), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Post
	decodeBody(t, resp, &got)
	assert.Equal(t, int64(2), got.CommentsCount)
}

func TestCreateComment_MissingPost(t *testing.T) {
	_, app, db := newTestServer(t)
	commenter := createUser(t, db, 100, "commenter")

	resp, err := app.Test(asUser(jsonRequest(http.MethodPost, "/api/posts/999/comments", fiber.Map{
		"content": "into the void",
	}), commenter.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestListComments_EmptyPost(t *testing.T) {
	_, app, db := newTestServer(t)
	author := createUser(t, db, 100, "author")
	post := createPost(t, db, author.ID, "lonely")

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/posts/"+itoa(post.ID)+"/comments", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing struct {
		Post     models.Post      `json:"post"`
		Comments []models.Comment `json:"comments"`
	}
	decodeBody(t, resp, &listing)
	assert.Equal(t, post.ID, listing.Post.ID)
	assert.Empty(t, listing.Comments)
}
