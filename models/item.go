package models

import "time"

// Item is a marketplace listing as returned by the catalog endpoints.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Currency    string    `json:"currency"`
	CategoryID  string    `json:"category_id"`
	RegionID    string    `json:"region_id,omitempty"`
	SellerID    string    `json:"seller_id"`
	ImageURLs   []string  `json:"image_urls,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemFilter narrows an item listing request. Zero-valued fields are omitted
// from the query string.
type ItemFilter struct {
	CategoryID string
	RegionID   string
	Query      string
	MinPrice   int64
	MaxPrice   int64
	SellerID   string
	Sort       string
}

// ListingDraft is the payload for creating or updating the caller's own
// listing. Images travel separately as multipart file parts.
type ListingDraft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	CategoryID  string `json:"category_id"`
	RegionID    string `json:"region_id,omitempty"`
}

// Bid is an offer placed on an item.
type Bid struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PlaceBidRequest carries the payload for POST /bids.
type PlaceBidRequest struct {
	ItemID   string `json:"item_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}
