package service

import (
	"context"

	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/transport"
	"github.com/bazarly/bazarly-go/models"
)

// BidService serves the bidding endpoints.
type BidService struct {
	client *transport.Client
	logger *logger.Logger
}

func NewBidService(client *transport.Client, log *logger.Logger) *BidService {
	return &BidService{client: client, logger: log}
}

// Place submits a bid on an item.
func (s *BidService) Place(ctx context.Context, req models.PlaceBidRequest) (*models.Bid, error) {
	raw, err := s.client.Post(ctx, "/bids", req)
	if err != nil {
		return nil, err
	}

	return decodeOne[models.Bid](raw)
}

// ForItem returns the bids placed on an item.
func (s *BidService) ForItem(ctx context.Context, itemID string) ([]models.Bid, error) {
	raw, err := s.client.Get(ctx, "/items/"+itemID+"/bids", nil)
	if err != nil {
		return nil, err
	}

	return transport.DecodeList[models.Bid](raw)
}

// Mine returns the caller's own bids.
func (s *BidService) Mine(ctx context.Context) ([]models.Bid, error) {
	raw, err := s.client.Get(ctx, "/bids/mine", nil)
	if err != nil {
		return nil, err
	}

	return transport.DecodeList[models.Bid](raw)
}
