package mockapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bazarly/bazarly-go/models"
)

const defaultPageSize = 20

// listEnvelope is the shape list endpoints answer with: a "data" array plus
// an overall count, matching what the client's decoder expects.
type listEnvelope struct {
	Data  any `json:"data"`
	Total int `json:"total"`
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeJSON(w, s.categories, http.StatusOK)
}

func (s *Server) listRegions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeJSON(w, listEnvelope{Data: s.regions, Total: len(s.regions)}, http.StatusOK)
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := intParam(query.Get("page"), 1)
	pageSize := intParam(query.Get("pageSize"), defaultPageSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	// never nil: a null "data" field would not decode as an empty list
	matched := []models.Item{}
	for _, item := range s.items {
		if !matchesFilter(item, query) {
			continue
		}
		matched = append(matched, item)
	}

	if query.Get("sort") == "price_asc" {
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	}

	start := (page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	s.writeJSON(w, listEnvelope{Data: matched[start:end], Total: len(matched)}, http.StatusOK)
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == itemID {
			s.writeJSON(w, map[string]models.Item{"data": item}, http.StatusOK)
			return
		}
	}

	s.writeMessage(w, http.StatusNotFound, "Item not found")
}

func (s *Server) listItemBids(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	s.mu.Lock()
	defer s.mu.Unlock()

	bids := []models.Bid{}
	for _, bid := range s.bids {
		if bid.ItemID == itemID {
			bids = append(bids, bid)
		}
	}

	s.writeJSON(w, bids, http.StatusOK)
}

func matchesFilter(item models.Item, query map[string][]string) bool {
	get := func(key string) string {
		if vs := query[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	if v := get("category_id"); v != "" && item.CategoryID != v {
		return false
	}
	if v := get("region_id"); v != "" && item.RegionID != v {
		return false
	}
	if v := get("seller_id"); v != "" && item.SellerID != v {
		return false
	}
	if v := get("q"); v != "" && !containsFold(item.Title, v) {
		return false
	}
	if v := get("min_price"); v != "" {
		if min, err := strconv.ParseInt(v, 10, 64); err == nil && item.Price < min {
			return false
		}
	}
	if v := get("max_price"); v != "" {
		if max, err := strconv.ParseInt(v, 10, 64); err == nil && item.Price > max {
			return false
		}
	}

	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func intParam(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
