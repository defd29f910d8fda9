// File: services/admin/list.go
package admin

import (
	"context"
	"sync"

	"menagio/models"

	"go.uber.org/zap"
)

// ListFunc fetches one page of rows plus the total match count.
type ListFunc[T any] func(ctx context.Context, q models.ListQuery) ([]T, int64, error)

// ListController holds the filter, search and pagination state backing one
// back-office resource table. Every reload carries a generation number;
// responses from superseded reloads are discarded so the table always
// reflects the most recently requested page.
type ListController[T any] struct {
	mu         sync.Mutex
	query      models.ListQuery
	rows       []T
	total      int64
	generation uint64

	fetch  ListFunc[T]
	logger *zap.Logger
}

// NewListController builds a controller around a fetch function.
func NewListController[T any](fetch ListFunc[T], logger *zap.Logger) *ListController[T] {
	return &ListController[T]{fetch: fetch, logger: logger}
}

// SetSearch replaces the search string, resets the page to 0 and reloads.
func (c *ListController[T]) SetSearch(ctx context.Context, search string) error {
	c.mu.Lock()
	c.query.Search = search
	c.query.Page = 0
	c.mu.Unlock()
	return c.Reload(ctx)
}

// SetStatusFilter replaces the status filter, resets the page to 0 and reloads.
func (c *ListController[T]) SetStatusFilter(ctx context.Context, status string) error {
	c.mu.Lock()
	c.query.Status = status
	c.query.Page = 0
	c.mu.Unlock()
	return c.Reload(ctx)
}

// SetPage clamps the requested page to [0, totalPages-1] and reloads.
func (c *ListController[T]) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	if page < 0 {
		page = 0
	}
	if max := c.totalPagesLocked() - 1; page > max {
		page = max
	}
	c.query.Page = page
	c.mu.Unlock()
	return c.Reload(ctx)
}

// Reload fetches the current page. A reload that has been superseded by a
// newer one leaves the controller untouched.
func (c *ListController[T]) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	q := c.query
	c.mu.Unlock()

	rows, total, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		if c.logger != nil {
			c.logger.Debug("discarding stale list response", zap.Uint64("generation", gen))
		}
		return nil
	}
	if err != nil {
		return err
	}
	c.rows = rows
	c.total = total
	return nil
}

// PatchRow replaces the first loaded row matched by the predicate. Used after
// a confirmed status write so the table reflects it without a full reload.
func (c *ListController[T]) PatchRow(match func(T) bool, replacement T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, row := range c.rows {
		if match(row) {
			c.rows[i] = replacement
			return true
		}
	}
	return false
}

// Rows returns the currently loaded page.
func (c *ListController[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.rows))
	copy(out, c.rows)
	return out
}

// Total returns the total match count of the last reload.
func (c *ListController[T]) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Page returns the current page index.
func (c *ListController[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query.Page
}

// Query returns the current filter state.
func (c *ListController[T]) Query() models.ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// TotalPages derives the page count from the last known total.
func (c *ListController[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPagesLocked()
}

func (c *ListController[T]) totalPagesLocked() int {
	pages := int((c.total + models.AdminPageSize - 1) / models.AdminPageSize)
	if pages < 1 {
		pages = 1
	}
	return pages
}
