package admin

import (
	"context"
	"errors"
	"sync"
	"testing"

	"menagio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetch serves a canned window of rows honoring the query's paging.
func fakeFetch(rows []string, total int64) ListFunc[string] {
	return func(ctx context.Context, q models.ListQuery) ([]string, int64, error) {
		return rows, total, nil
	}
}

func TestSetSearchResetsPage(t *testing.T) {
	var lastQuery models.ListQuery
	ctrl := NewListController(func(ctx context.Context, q models.ListQuery) ([]string, int64, error) {
		lastQuery = q
		return []string{"row"}, 100, nil
	}, nil)

	require.NoError(t, ctrl.Reload(context.Background()))
	require.NoError(t, ctrl.SetPage(context.Background(), 3))
	assert.Equal(t, 3, ctrl.Page())

	require.NoError(t, ctrl.SetSearch(context.Background(), "dubois"))
	assert.Equal(t, 0, ctrl.Page())
	assert.Equal(t, "dubois", lastQuery.Search)
	assert.Equal(t, 0, lastQuery.Page)
}

func TestSetStatusFilterResetsPage(t *testing.T) {
	ctrl := NewListController(fakeFetch([]string{"row"}, 100), nil)

	require.NoError(t, ctrl.Reload(context.Background()))
	require.NoError(t, ctrl.SetPage(context.Background(), 2))
	require.NoError(t, ctrl.SetStatusFilter(context.Background(), "confirmed"))

	assert.Equal(t, 0, ctrl.Page())
	assert.Equal(t, "confirmed", ctrl.Query().Status)
}

func TestSetPageClamps(t *testing.T) {
	// 100 rows at page size 15 means 7 pages (0..6).
	ctrl := NewListController(fakeFetch([]string{"row"}, 100), nil)
	require.NoError(t, ctrl.Reload(context.Background()))
	require.Equal(t, 7, ctrl.TotalPages())

	tests := []struct {
		name string
		page int
		want int
	}{
		{"negative clamps to zero", -3, 0},
		{"within range", 4, 4},
		{"last page", 6, 6},
		{"beyond total pages", 12, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, ctrl.SetPage(context.Background(), tt.page))
			assert.Equal(t, tt.want, ctrl.Page())
		})
	}
}

func TestSetPageClampsBeforeFirstLoad(t *testing.T) {
	ctrl := NewListController(fakeFetch(nil, 0), nil)
	require.NoError(t, ctrl.SetPage(context.Background(), 5))
	assert.Equal(t, 0, ctrl.Page())
}

func TestReloadDiscardsStaleResponse(t *testing.T) {
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	ctrl := NewListController(func(ctx context.Context, q models.ListQuery) ([]string, int64, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			// The first fetch is slow and finishes after it has been
			// superseded.
			<-release
			return []string{"stale"}, 1, nil
		}
		return []string{"fresh"}, 1, nil
	}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = ctrl.Reload(context.Background())
	}()

	// Wait for the slow fetch to be in flight, then supersede it.
	for {
		mu.Lock()
		started := calls >= 1
		mu.Unlock()
		if started {
			break
		}
	}
	require.NoError(t, ctrl.Reload(context.Background()))
	assert.Equal(t, []string{"fresh"}, ctrl.Rows())

	close(release)
	wg.Wait()

	// The slow response arrived last but must not replace the fresh one.
	assert.Equal(t, []string{"fresh"}, ctrl.Rows())
}

func TestReloadErrorKeepsRows(t *testing.T) {
	var fail bool
	ctrl := NewListController(func(ctx context.Context, q models.ListQuery) ([]string, int64, error) {
		if fail {
			return nil, 0, errors.New("connection reset")
		}
		return []string{"kept"}, 1, nil
	}, nil)

	require.NoError(t, ctrl.Reload(context.Background()))
	fail = true
	require.Error(t, ctrl.Reload(context.Background()))
	assert.Equal(t, []string{"kept"}, ctrl.Rows())
	assert.Equal(t, int64(1), ctrl.Total())
}

func TestPatchRow(t *testing.T) {
	ctrl := NewListController(fakeFetch([]string{"a", "b", "c"}, 3), nil)
	require.NoError(t, ctrl.Reload(context.Background()))

	assert.True(t, ctrl.PatchRow(func(s string) bool { return s == "b" }, "B"))
	assert.Equal(t, []string{"a", "B", "c"}, ctrl.Rows())

	assert.False(t, ctrl.PatchRow(func(s string) bool { return s == "missing" }, "x"))
}
