package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/client/services"
)

func (a *App) listPosts(ctx context.Context) error {
	// categories are fetched first so references resolve when printing
	if _, err := a.content.ListCategories(ctx); err != nil {
		printlnFn("Could not load categories:", err.Error())
	}

	items, err := a.content.ListPosts(ctx)
	if err != nil {
		printlnFn("Could not load posts:", err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No posts yet.")
		return nil
	}
	for _, p := range items {
		category := "(none)"
		if name, ok := a.content.CategoryName(p); ok {
			category = name
		}
		printlnFn(fmt.Sprintf("%d\t%s\t%s\t%s", p.ID, p.Title, p.Status, category))
	}
	return nil
}

func (a *App) listPages(ctx context.Context) error {
	items, err := a.content.ListPages(ctx)
	if err != nil {
		printlnFn("Could not load pages:", err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No pages yet.")
		return nil
	}
	for _, p := range items {
		printlnFn(fmt.Sprintf("%d\t%s\t%s", p.ID, p.Title, p.Status))
	}
	return nil
}

func (a *App) listCategories(ctx context.Context) error {
	items, err := a.content.ListCategories(ctx)
	if err != nil {
		printlnFn("Could not load categories:", err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No categories yet.")
		return nil
	}
	for _, c := range items {
		printlnFn(fmt.Sprintf("%d\t%s\t%s", c.ID, c.Name, c.Slug))
	}
	return nil
}

func (a *App) promptPost() (services.PostInput, error) {
	var in services.PostInput
	var err error

	if in.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return in, err
	}
	if in.Slug, err = getSimpleText(a.reader, "Slug", os.Stdout); err != nil {
		return in, err
	}
	if in.Content, err = GetMultiline(a.reader, "Content", os.Stdout); err != nil {
		return in, err
	}

	rawCategory, err := getSimpleText(a.reader, "Category id (optional)", os.Stdout)
	if err != nil {
		return in, err
	}
	if rawCategory != "" {
		if id, ok := parseID(rawCategory); ok {
			in.CategoryID = id
		}
	}

	status, err := getSimpleText(a.reader, "Status (draft/published/archived, default draft)", os.Stdout)
	if err != nil {
		return in, err
	}
	in.Status = models.ContentStatus(status)
	return in, nil
}

func (a *App) addPost(ctx context.Context) error {
	in, err := a.promptPost()
	if err != nil {
		return err
	}

	created, err := a.content.CreatePost(ctx, in)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return err
	}
	printlnFn("Created post", created.ID)
	return nil
}

func (a *App) editPost(ctx context.Context, id int64) error {
	in, err := a.promptPost()
	if err != nil {
		return err
	}

	if _, err := a.content.UpdatePost(ctx, id, in); err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn("Updated post", id)
	return nil
}

func (a *App) promptPage() (services.PageInput, error) {
	var in services.PageInput
	var err error

	if in.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return in, err
	}
	if in.Slug, err = getSimpleText(a.reader, "Slug", os.Stdout); err != nil {
		return in, err
	}
	if in.Content, err = GetMultiline(a.reader, "Content", os.Stdout); err != nil {
		return in, err
	}

	status, err := getSimpleText(a.reader, "Status (draft/published/archived, default draft)", os.Stdout)
	if err != nil {
		return in, err
	}
	in.Status = models.ContentStatus(status)
	return in, nil
}

func (a *App) addPage(ctx context.Context) error {
	in, err := a.promptPage()
	if err != nil {
		return err
	}

	created, err := a.content.CreatePage(ctx, in)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return err
	}
	printlnFn("Created page", created.ID)
	return nil
}

func (a *App) editPage(ctx context.Context, id int64) error {
	in, err := a.promptPage()
	if err != nil {
		return err
	}

	if _, err := a.content.UpdatePage(ctx, id, in); err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn("Updated page", id)
	return nil
}

func (a *App) promptCategory() (services.CategoryInput, error) {
	var in services.CategoryInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return in, err
	}
	if in.Slug, err = getSimpleText(a.reader, "Slug", os.Stdout); err != nil {
		return in, err
	}
	if in.Description, err = getSimpleText(a.reader, "Description (optional)", os.Stdout); err != nil {
		return in, err
	}
	return in, nil
}

func (a *App) addCategory(ctx context.Context) error {
	in, err := a.promptCategory()
	if err != nil {
		return err
	}

	created, err := a.content.CreateCategory(ctx, in)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return err
	}
	printlnFn("Created category", created.ID)
	return nil
}

func (a *App) editCategory(ctx context.Context, id int64) error {
	in, err := a.promptCategory()
	if err != nil {
		return err
	}

	if _, err := a.content.UpdateCategory(ctx, id, in); err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn("Updated category", id)
	return nil
}
