package services

import (
	"context"

	"github.com/sohaibmughall/crm-panel/internal/client/cache"
	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/logging"
)

// ContentService manages the three content collections: posts, pages, and
// categories. Each has its own gateway table and mirror; there is no
// cross-collection consistency. Deleting a category leaves posts pointing
// at the dead id, and their references resolve to nothing until edited.
type ContentService struct {
	posts      collection[models.Post]
	pages      collection[models.Page]
	categories collection[models.Category]
}

func NewContentService(
	posts Gateway[models.Post], postCache *cache.Store[models.Post],
	pages Gateway[models.Page], pageCache *cache.Store[models.Page],
	categories Gateway[models.Category], categoryCache *cache.Store[models.Category],
	log logging.Logger,
) *ContentService {
	return &ContentService{
		posts:      collection[models.Post]{gw: posts, cache: postCache, log: log},
		pages:      collection[models.Page]{gw: pages, cache: pageCache, log: log},
		categories: collection[models.Category]{gw: categories, cache: categoryCache, log: log},
	}
}

type PostInput struct {
	Title      string `validate:"required"`
	Slug       string `validate:"required"`
	Content    string
	CategoryID int64
	Status     models.ContentStatus `validate:"omitempty,oneof=draft published archived"`
}

func (in PostInput) fields() map[string]any {
	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	return map[string]any{
		"title":       in.Title,
		"slug":        in.Slug,
		"content":     in.Content,
		"category_id": in.CategoryID,
		"status":      string(status),
	}
}

type PageInput struct {
	Title   string `validate:"required"`
	Slug    string `validate:"required"`
	Content string
	Status  models.ContentStatus `validate:"omitempty,oneof=draft published archived"`
}

func (in PageInput) fields() map[string]any {
	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	return map[string]any{
		"title":   in.Title,
		"slug":    in.Slug,
		"content": in.Content,
		"status":  string(status),
	}
}

type CategoryInput struct {
	Name        string `validate:"required"`
	Slug        string `validate:"required"`
	Description string
}

func (in CategoryInput) fields() map[string]any {
	return map[string]any{
		"name":        in.Name,
		"slug":        in.Slug,
		"description": in.Description,
	}
}

func (s *ContentService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.refresh(ctx)
}

func (s *ContentService) CreatePost(ctx context.Context, in PostInput) (models.Post, error) {
	if err := check(in); err != nil {
		return models.Post{}, err
	}
	return s.posts.create(ctx, in.fields())
}

func (s *ContentService) UpdatePost(ctx context.Context, id int64, in PostInput) (models.Post, error) {
	if err := check(in); err != nil {
		return models.Post{}, err
	}
	return s.posts.update(ctx, id, in.fields())
}

func (s *ContentService) DeletePost(ctx context.Context, id int64) error {
	return s.posts.remove(ctx, id)
}

func (s *ContentService) CachedPosts() []models.Post {
	return s.posts.cache.All()
}

func (s *ContentService) ListPages(ctx context.Context) ([]models.Page, error) {
	return s.pages.refresh(ctx)
}

func (s *ContentService) CreatePage(ctx context.Context, in PageInput) (models.Page, error) {
	if err := check(in); err != nil {
		return models.Page{}, err
	}
	return s.pages.create(ctx, in.fields())
}

func (s *ContentService) UpdatePage(ctx context.Context, id int64, in PageInput) (models.Page, error) {
	if err := check(in); err != nil {
		return models.Page{}, err
	}
	return s.pages.update(ctx, id, in.fields())
}

func (s *ContentService) DeletePage(ctx context.Context, id int64) error {
	return s.pages.remove(ctx, id)
}

func (s *ContentService) CachedPages() []models.Page {
	return s.pages.cache.All()
}

func (s *ContentService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.refresh(ctx)
}

func (s *ContentService) CreateCategory(ctx context.Context, in CategoryInput) (models.Category, error) {
	if err := check(in); err != nil {
		return models.Category{}, err
	}
	return s.categories.create(ctx, in.fields())
}

func (s *ContentService) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (models.Category, error) {
	if err := check(in); err != nil {
		return models.Category{}, err
	}
	return s.categories.update(ctx, id, in.fields())
}

// DeleteCategory removes the category only. Posts keep whatever category_id
// they had; nothing is cascaded or rewritten.
func (s *ContentService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categories.remove(ctx, id)
}

func (s *ContentService) CachedCategories() []models.Category {
	return s.categories.cache.All()
}

// CategoryName resolves a post's category reference against the cached
// categories at render time. A dangling reference returns ok=false and the
// caller renders a placeholder.
func (s *ContentService) CategoryName(p models.Post) (string, bool) {
	cat, ok := s.categories.cache.Get(p.CategoryID)
	if !ok {
		return "", false
	}
	return cat.Name, true
}
