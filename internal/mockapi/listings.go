package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bazarly/bazarly-go/models"
)

// maxUploadSize bounds multipart listing uploads.
const maxUploadSize = 32 << 20

func (s *Server) createListing(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed multipart body")
		return
	}

	title := r.FormValue("title")
	price, err := strconv.ParseInt(r.FormValue("price"), 10, 64)
	if title == "" || err != nil || price <= 0 || r.FormValue("category_id") == "" {
		s.writeMessage(w, http.StatusUnprocessableEntity, "Title, positive price and category are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	item := models.Item{
		ID:          s.ids.Generate(),
		Title:       title,
		Description: r.FormValue("description"),
		Price:       price,
		Currency:    r.FormValue("currency"),
		CategoryID:  r.FormValue("category_id"),
		RegionID:    r.FormValue("region_id"),
		SellerID:    requestUserID(r),
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			item.ImageURLs = append(item.ImageURLs, "/uploads/"+item.ID+"/"+header.Filename)
		}
	}
	s.items = append(s.items, item)

	s.writeJSON(w, map[string]models.Item{"data": item}, http.StatusCreated)
}

func (s *Server) myListings(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	mine := []models.Item{}
	for _, item := range s.items {
		if item.SellerID == userID {
			mine = append(mine, item)
		}
	}

	s.writeJSON(w, listEnvelope{Data: mine, Total: len(mine)}, http.StatusOK)
}

func (s *Server) updateListing(w http.ResponseWriter, r *http.Request) {
	var draft models.ListingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, status := s.ownListingLocked(r, chi.URLParam(r, "listingID"))
	if item == nil {
		s.writeMessage(w, status, listingErrorMessage(status))
		return
	}

	if draft.Title != "" {
		item.Title = draft.Title
	}
	if draft.Description != "" {
		item.Description = draft.Description
	}
	if draft.Price > 0 {
		item.Price = draft.Price
	}
	if draft.Currency != "" {
		item.Currency = draft.Currency
	}
	if draft.CategoryID != "" {
		item.CategoryID = draft.CategoryID
	}
	if draft.RegionID != "" {
		item.RegionID = draft.RegionID
	}
	item.UpdatedAt = time.Now().UTC()

	s.writeJSON(w, map[string]models.Item{"data": *item}, http.StatusOK)
}

func (s *Server) deleteListing(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingID")

	s.mu.Lock()
	defer s.mu.Unlock()

	item, status := s.ownListingLocked(r, listingID)
	if item == nil {
		s.writeMessage(w, status, listingErrorMessage(status))
		return
	}

	for i := range s.items {
		if s.items[i].ID == listingID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}

	s.writeMessage(w, http.StatusOK, "Listing deleted")
}

// ownListingLocked finds the listing and checks ownership. Caller holds s.mu.
// A nil item comes with the HTTP status to answer with.
func (s *Server) ownListingLocked(r *http.Request, listingID string) (*models.Item, int) {
	for i := range s.items {
		if s.items[i].ID != listingID {
			continue
		}
		if s.items[i].SellerID != requestUserID(r) {
			return nil, http.StatusForbidden
		}
		return &s.items[i], http.StatusOK
	}
	return nil, http.StatusNotFound
}

func listingErrorMessage(status int) string {
	if status == http.StatusForbidden {
		return "Listing belongs to another seller"
	}
	return "Listing not found"
}
