package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sohaibmughall/crm-panel/internal/client/cache"
	"github.com/sohaibmughall/crm-panel/internal/client/models"
)

func newContentFixture() (*ContentService, *fakeGateway[models.Post], *fakeGateway[models.Page], *fakeGateway[models.Category]) {
	posts := &fakeGateway[models.Post]{}
	pages := &fakeGateway[models.Page]{}
	categories := &fakeGateway[models.Category]{}
	svc := NewContentService(
		posts, cache.New[models.Post](),
		pages, cache.New[models.Page](),
		categories, cache.New[models.Category](),
		testLogger(),
	)
	return svc, posts, pages, categories
}

func TestCreatePost_DefaultsToDraft(t *testing.T) {
	ctx := context.Background()
	svc, posts, _, _ := newContentFixture()
	posts.createResult = models.Post{ID: 1, Title: "Hello", Slug: "hello", Status: models.StatusDraft}

	_, err := svc.CreatePost(ctx, PostInput{Title: "Hello", Slug: "hello"})
	require.NoError(t, err)
	require.Equal(t, "draft", posts.createdWith["status"])
}

func TestCreatePost_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc, posts, _, _ := newContentFixture()

	_, err := svc.CreatePost(ctx, PostInput{Title: "Hello", Slug: "hello", Status: "pending"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Nil(t, posts.createdWith)
}

func TestDeleteCategory_LeavesPostReferencesDangling(t *testing.T) {
	ctx := context.Background()
	svc, posts, _, categories := newContentFixture()

	categories.listResult = []models.Category{{ID: 5, Name: "News", Slug: "news"}}
	posts.listResult = []models.Post{{ID: 1, Title: "Hello", Slug: "hello", CategoryID: 5}}

	_, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	_, err = svc.ListPosts(ctx)
	require.NoError(t, err)

	name, ok := svc.CategoryName(svc.CachedPosts()[0])
	require.True(t, ok)
	require.Equal(t, "News", name)

	require.NoError(t, svc.DeleteCategory(ctx, 5))

	// the post keeps its category_id; the reference now resolves to nothing
	cached := svc.CachedPosts()
	require.Len(t, cached, 1)
	require.Equal(t, int64(5), cached[0].CategoryID)

	_, ok = svc.CategoryName(cached[0])
	require.False(t, ok)
}

func TestPages_FullCycle(t *testing.T) {
	ctx := context.Background()
	svc, _, pages, _ := newContentFixture()

	pages.listResult = []models.Page{{ID: 1, Title: "About", Slug: "about"}}
	got, err := svc.ListPages(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	pages.createResult = models.Page{ID: 2, Title: "Contact", Slug: "contact", Status: models.StatusPublished}
	created, err := svc.CreatePage(ctx, PageInput{Title: "Contact", Slug: "contact", Status: models.StatusPublished})
	require.NoError(t, err)
	require.Equal(t, int64(2), created.ID)
	require.Len(t, svc.CachedPages(), 2)

	pages.updateResult = models.Page{ID: 2, Title: "Contact Us", Slug: "contact", Status: models.StatusPublished}
	_, err = svc.UpdatePage(ctx, 2, PageInput{Title: "Contact Us", Slug: "contact", Status: models.StatusPublished})
	require.NoError(t, err)
	require.Equal(t, "Contact Us", svc.CachedPages()[1].Title)

	require.NoError(t, svc.DeletePage(ctx, 1))
	require.Len(t, svc.CachedPages(), 1)
}
