package repository

import (
	"testing"
	"time"

	"forge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPublishedHidesDrafts(t *testing.T) {
	repo := NewNoteRepository(openTestDB(t))

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now().Add(-1 * time.Hour)
	require.NoError(t, repo.Create(&models.BlogPost{
		Title: "Older note", Slug: "older-note", IsPublished: true, PublishedDate: &old,
	}))
	require.NoError(t, repo.Create(&models.BlogPost{
		Title: "Newer note", Slug: "newer-note", IsPublished: true, PublishedDate: &recent,
	}))
	require.NoError(t, repo.Create(&models.BlogPost{
		Title: "Draft", Slug: "draft",
	}))

	posts, err := repo.ListPublished()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer-note", posts[0].Slug)
	assert.Equal(t, "older-note", posts[1].Slug)
}

func TestCommentsHiddenUntilApproved(t *testing.T) {
	repo := NewNoteRepository(openTestDB(t))

	now := time.Now()
	post := &models.BlogPost{Title: "A note", Slug: "a-note", IsPublished: true, PublishedDate: &now}
	require.NoError(t, repo.Create(post))

	pending := &models.BlogComment{PostID: post.ID, AuthorName: "Reader", AuthorEmail: "reader@example.com", Content: "First!"}
	require.NoError(t, repo.CreateComment(pending))

	got, err := repo.GetPublishedBySlug("a-note")
	require.NoError(t, err)
	assert.Empty(t, got.Comments)

	require.NoError(t, repo.ApproveComment(pending.ID))
	got, err = repo.GetPublishedBySlug("a-note")
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Reader", got.Comments[0].AuthorName)
}
