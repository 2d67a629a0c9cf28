package service

import (
	"context"

	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/transport"
	"github.com/bazarly/bazarly-go/models"
)

// CatalogService serves the static taxonomy endpoints: category tree and
// region list.
type CatalogService struct {
	client *transport.Client
	logger *logger.Logger
}

func NewCatalogService(client *transport.Client, log *logger.Logger) *CatalogService {
	return &CatalogService{client: client, logger: log}
}

// Categories returns the category taxonomy.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	raw, err := s.client.Get(ctx, "/categories", nil)
	if err != nil {
		return nil, err
	}

	return transport.DecodeList[models.Category](raw)
}

// Regions returns the regions available for scoping item searches.
func (s *CatalogService) Regions(ctx context.Context) ([]models.Region, error) {
	raw, err := s.client.Get(ctx, "/regions", nil)
	if err != nil {
		return nil, err
	}

	return transport.DecodeList[models.Region](raw)
}
