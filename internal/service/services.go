package service

import (
	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/transport"
)

// Services groups all domain façades behind the shared transport client.
type Services struct {
	Auth     *AuthService
	Catalog  *CatalogService
	Items    *ItemService
	Listings *ListingService
	Bids     *BidService
	Chat     *ChatService
	Profile  *ProfileService
}

func NewServices(client *transport.Client, log *logger.Logger) *Services {
	return &Services{
		Auth:     NewAuthService(client, log),
		Catalog:  NewCatalogService(client, log),
		Items:    NewItemService(client, log),
		Listings: NewListingService(client, log),
		Bids:     NewBidService(client, log),
		Chat:     NewChatService(client, log),
		Profile:  NewProfileService(client, log),
	}
}
