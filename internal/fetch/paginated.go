package fetch

import (
	"context"
	"net/url"
	"sync"

	"github.com/bazarly/bazarly-go/models"
)

// PageFunc fetches one page of a collection. Implementations come from the
// domain services (e.g. item search).
type PageFunc[T any] func(ctx context.Context, params url.Values, page, pageSize int) (models.Page[T], error)

// PageSnapshot is the observable state of a Paginator.
type PageSnapshot[T any] struct {
	// Items is the accumulated ordered list across all fetched pages.
	Items []T
	// Loading reports whether a page fetch is in flight.
	Loading bool
	// Err is the classified error of the last failed fetch.
	Err error
	// HasMore reports whether a further page may exist.
	HasMore bool
	// Page is the next page to fetch (1-based).
	Page int
	// TotalCount is the server-reported overall count, zero when absent.
	TotalCount int
}

// Paginator is the page-accumulating hook. Pages are appended in fetch order;
// the cursor advances only on success and resets to page 1 on refresh.
type Paginator[T any] struct {
	fetch    PageFunc[T]
	pageSize int

	mu         sync.Mutex
	params     url.Values
	items      []T
	page       int
	hasMore    bool
	totalCount int
	loading    bool
	err        error
}

// NewPaginator creates a Paginator with the given page size. The cursor
// starts at page 1 with HasMore true; nothing is fetched until Execute or
// LoadMore is called.
func NewPaginator[T any](fetch PageFunc[T], pageSize int) *Paginator[T] {
	return &Paginator[T]{
		fetch:    fetch,
		pageSize: pageSize,
		page:     1,
		hasMore:  true,
	}
}

// Execute fetches the current page with the given params. When reset is true
// the accumulated items are discarded and the cursor returns to page 1 before
// fetching; otherwise the fetched page is appended to the existing list.
//
// After a successful fetch HasMore is recomputed as "the page came back
// full": a page with fewer items than the page size is treated as the last
// one. The cursor advances only on success.
func (p *Paginator[T]) Execute(ctx context.Context, params url.Values, reset bool) ([]T, error) {
	p.mu.Lock()
	if reset {
		p.items = nil
		p.page = 1
		p.hasMore = true
		p.totalCount = 0
	}
	p.params = params
	page := p.page
	p.loading = true
	p.err = nil
	p.mu.Unlock()

	// loading clears even if the wrapped call panics
	defer func() {
		p.mu.Lock()
		p.loading = false
		p.mu.Unlock()
	}()

	result, err := p.fetch(ctx, params, page, p.pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.err = err
		return nil, err
	}

	p.items = append(p.items, result.Items...)
	p.hasMore = len(result.Items) == p.pageSize
	p.page++
	if result.TotalCount > 0 {
		p.totalCount = result.TotalCount
	}

	return p.items, nil
}

// LoadMore fetches the next page with the params of the previous Execute. It
// is a no-op while a fetch is in flight or when HasMore is false, so repeated
// tail triggers never issue duplicate requests.
func (p *Paginator[T]) LoadMore(ctx context.Context) ([]T, error) {
	p.mu.Lock()
	if p.loading || !p.hasMore {
		items := p.items
		p.mu.Unlock()
		return items, nil
	}
	params := p.params
	p.mu.Unlock()

	return p.Execute(ctx, params, false)
}

// Refresh discards the accumulated list and re-fetches from page 1 with
// empty params.
func (p *Paginator[T]) Refresh(ctx context.Context) ([]T, error) {
	return p.Execute(ctx, url.Values{}, true)
}

// Snapshot returns the current state.
func (p *Paginator[T]) Snapshot() PageSnapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	return PageSnapshot[T]{
		Items:      p.items,
		Loading:    p.loading,
		Err:        p.err,
		HasMore:    p.hasMore,
		Page:       p.page,
		TotalCount: p.totalCount,
	}
}
