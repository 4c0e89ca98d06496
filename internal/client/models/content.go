package models

import "time"

// ContentStatus is the publication state of a post or page.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

// Post is a blog post. CategoryID is a weak reference: it points at a
// Category by id with no existence guarantee, and may dangle after the
// category is deleted. It is resolved lazily at render time.
type Post struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	Slug       string        `json:"slug"`
	Content    string        `json:"content"`
	CategoryID int64         `json:"category_id"`
	Status     ContentStatus `json:"status"`
	UserID     string        `json:"user_id"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (p Post) Identity() int64 { return p.ID }

// Page is a standalone content page; same shape as Post minus the category.
type Page struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Slug      string        `json:"slug"`
	Content   string        `json:"content"`
	Status    ContentStatus `json:"status"`
	UserID    string        `json:"user_id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (p Page) Identity() int64 { return p.ID }

// Category groups posts.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (c Category) Identity() int64 { return c.ID }
