package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/transport"
	"github.com/bazarly/bazarly-go/models"
)

// ItemService serves the public item catalog: paginated search and detail
// lookups.
type ItemService struct {
	client *transport.Client
	logger *logger.Logger
}

func NewItemService(client *transport.Client, log *logger.Logger) *ItemService {
	return &ItemService{client: client, logger: log}
}

// Search fetches one page of items matching the filter.
func (s *ItemService) Search(ctx context.Context, filter models.ItemFilter, page, pageSize int) (models.Page[models.Item], error) {
	return s.SearchPage(ctx, filterQuery(filter), page, pageSize)
}

// SearchPage is the fetch.PageFunc form of Search: the filter arrives as
// pre-built query values so a paginator can replay it page after page.
func (s *ItemService) SearchPage(ctx context.Context, params url.Values, page, pageSize int) (models.Page[models.Item], error) {
	query := url.Values{}
	for k, vs := range params {
		query[k] = vs
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	raw, err := s.client.Get(ctx, "/items", query)
	if err != nil {
		return models.Page[models.Item]{}, err
	}

	return transport.DecodePage[models.Item](raw)
}

// Item returns a single listing by ID.
func (s *ItemService) Item(ctx context.Context, id string) (*models.Item, error) {
	raw, err := s.client.Get(ctx, "/items/"+id, nil)
	if err != nil {
		return nil, err
	}

	return decodeOne[models.Item](raw)
}

// filterQuery converts the filter to query values, omitting zero fields.
func filterQuery(f models.ItemFilter) url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.CategoryID != "" {
		q.Set("category_id", f.CategoryID)
	}
	if f.RegionID != "" {
		q.Set("region_id", f.RegionID)
	}
	if f.MinPrice > 0 {
		q.Set("min_price", strconv.FormatInt(f.MinPrice, 10))
	}
	if f.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatInt(f.MaxPrice, 10))
	}
	if f.SellerID != "" {
		q.Set("seller_id", f.SellerID)
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}

	return q
}
