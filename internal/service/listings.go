package service

import (
	"context"
	"strconv"

	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/transport"
	"github.com/bazarly/bazarly-go/models"
)

// ListingService manages the caller's own listings. Creation goes through a
// multipart upload because the images travel alongside the draft fields.
type ListingService struct {
	client *transport.Client
	logger *logger.Logger
}

func NewListingService(client *transport.Client, log *logger.Logger) *ListingService {
	return &ListingService{client: client, logger: log}
}

// Create uploads a new listing draft with its images. progress may be nil.
func (s *ListingService) Create(ctx context.Context, draft models.ListingDraft, images []transport.FilePart, progress transport.ProgressFunc) (*models.Item, error) {
	raw, err := s.client.Upload(ctx, "/listings", draftFields(draft), images, progress)
	if err != nil {
		return nil, err
	}

	return decodeOne[models.Item](raw)
}

// Update replaces the draft fields of an existing listing.
func (s *ListingService) Update(ctx context.Context, id string, draft models.ListingDraft) (*models.Item, error) {
	raw, err := s.client.Put(ctx, "/listings/"+id, draft)
	if err != nil {
		return nil, err
	}

	return decodeOne[models.Item](raw)
}

// Delete removes one of the caller's listings.
func (s *ListingService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, "/listings/"+id)
	return err
}

// Mine returns the caller's own listings.
func (s *ListingService) Mine(ctx context.Context) ([]models.Item, error) {
	raw, err := s.client.Get(ctx, "/listings/mine", nil)
	if err != nil {
		return nil, err
	}

	return transport.DecodeList[models.Item](raw)
}

// draftFields flattens a draft into multipart form fields.
func draftFields(d models.ListingDraft) map[string]string {
	fields := map[string]string{
		"title":       d.Title,
		"price":       strconv.FormatInt(d.Price, 10),
		"currency":    d.Currency,
		"category_id": d.CategoryID,
	}
	if d.Description != "" {
		fields["description"] = d.Description
	}
	if d.RegionID != "" {
		fields["region_id"] = d.RegionID
	}

	return fields
}
