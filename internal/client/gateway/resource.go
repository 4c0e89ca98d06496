package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Resource is one table's operation group. All entity tables share the same
// uniform shape: a server-ordered list, an insert that attaches the calling
// user, a partial update by id, and a delete by id.
type Resource[T any] struct {
	c     *Client
	table string
	order string
}

// NewResource binds a table. order is the server-side ordering expression,
// e.g. "created_at.desc" or "name.asc".
func NewResource[T any](c *Client, table, order string) *Resource[T] {
	return &Resource[T]{c: c, table: table, order: order}
}

func (r *Resource[T]) path() string {
	return "/rest/v1/" + r.table
}

// List fetches all rows, sorted server-side.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	query := url.Values{"select": {"*"}, "order": {r.order}}

	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path(), query, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts one row. The current user's id is attached as the owning
// user; the server assigns id and timestamps. The session is checked before
// the write is attempted, never inferred from a failed write.
func (r *Resource[T]) Create(ctx context.Context, fields map[string]any) (T, error) {
	var zero T
	if !r.c.hasSession() {
		return zero, errAuthRequired()
	}

	row := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		row[k] = v
	}
	row["user_id"] = r.c.tokens.UserID()

	headers := map[string]string{
		"Prefer": "return=representation",
		"Accept": "application/vnd.pgrst.object+json",
	}

	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path(), nil, headers, []map[string]any{row}, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Update applies the provided fields to the row with the given id and
// returns the updated row. Existence is not validated locally; a missing id
// surfaces as a RemoteError from the backend.
func (r *Resource[T]) Update(ctx context.Context, id int64, fields map[string]any) (T, error) {
	var zero T
	query := url.Values{"id": {fmt.Sprintf("eq.%d", id)}}
	headers := map[string]string{
		"Prefer": "return=representation",
		"Accept": "application/vnd.pgrst.object+json",
	}

	var out T
	if err := r.c.do(ctx, http.MethodPatch, r.path(), query, headers, fields, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Delete removes the row with the given id. No cascading cleanup happens:
// deleting a category leaves posts referencing it dangling.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	query := url.Values{"id": {fmt.Sprintf("eq.%d", id)}}
	return r.c.do(ctx, http.MethodDelete, r.path(), query, nil, nil, nil)
}
