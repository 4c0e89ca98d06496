package cli

import (
	"context"
	"strconv"
	"strings"
)

// screenFor maps the current route onto one of the record screens. Content
// sub-paths select the collection: /content/posts, /content/pages,
// /content/categories; bare /content shows posts.
func (a *App) screenFor(route string) string {
	switch {
	case strings.HasPrefix(route, "/customers"):
		return "customers"
	case route == "/content" || strings.HasPrefix(route, "/content/posts"):
		return "posts"
	case strings.HasPrefix(route, "/content/pages"):
		return "pages"
	case strings.HasPrefix(route, "/content/categories"):
		return "categories"
	case route == "/media":
		return "media"
	case route == "/users":
		return "users"
	}
	return ""
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}

// List fetches and prints the current screen's records.
func (a *App) List(ctx context.Context) error {
	switch a.screenFor(a.route) {
	case "customers":
		return a.listCustomers(ctx)
	case "posts":
		return a.listPosts(ctx)
	case "pages":
		return a.listPages(ctx)
	case "categories":
		return a.listCategories(ctx)
	case "media":
		return a.listMedia(ctx)
	case "users":
		return a.listUsers(ctx)
	}
	printlnFn("Nothing to list here. Try 'open /customers'.")
	return nil
}

// Add creates a record on the current screen after prompting for its fields.
func (a *App) Add(ctx context.Context) error {
	switch a.screenFor(a.route) {
	case "customers":
		return a.addCustomer(ctx)
	case "posts":
		return a.addPost(ctx)
	case "pages":
		return a.addPage(ctx)
	case "categories":
		return a.addCategory(ctx)
	case "users":
		return a.addUser(ctx)
	}
	printlnFn("Nothing to add here.")
	return nil
}

// Edit updates the record with the given id on the current screen.
func (a *App) Edit(ctx context.Context, rawID string) error {
	id, ok := parseID(rawID)
	if !ok {
		printlnFn("Invalid id:", rawID)
		return nil
	}

	switch a.screenFor(a.route) {
	case "customers":
		return a.editCustomer(ctx, id)
	case "posts":
		return a.editPost(ctx, id)
	case "pages":
		return a.editPage(ctx, id)
	case "categories":
		return a.editCategory(ctx, id)
	case "users":
		return a.editUser(ctx, id)
	}
	printlnFn("Nothing to edit here.")
	return nil
}

// Delete removes the record with the given id on the current screen.
func (a *App) Delete(ctx context.Context, rawID string) error {
	id, ok := parseID(rawID)
	if !ok {
		printlnFn("Invalid id:", rawID)
		return nil
	}

	var err error
	switch a.screenFor(a.route) {
	case "customers":
		err = a.customers.Delete(ctx, id)
	case "posts":
		err = a.content.DeletePost(ctx, id)
	case "pages":
		err = a.content.DeletePage(ctx, id)
	case "categories":
		err = a.content.DeleteCategory(ctx, id)
	case "media":
		err = a.media.Delete(ctx, id)
	case "users":
		a.users.Remove(id)
	default:
		printlnFn("Nothing to delete here.")
		return nil
	}

	if err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}
	printlnFn("Deleted", rawID)
	return nil
}
