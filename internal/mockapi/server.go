// Package mockapi is an in-memory rendition of the marketplace backend used
// for local development and integration tests. It implements the same wire
// contract the client targets: JSON bodies, bearer tokens issued in the
// Authorization response header, and loosely-shaped list envelopes.
package mockapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/utils"
	"github.com/bazarly/bazarly-go/models"
)

// account is a registered user plus the secrets the real backend would keep
// server-side.
type account struct {
	profile  models.UserProfile
	password string
	otp      string
}

// Server holds all mock state behind one mutex. Handlers are deliberately
// simple; fidelity to the wire contract matters, fidelity to marketplace
// business rules does not.
type Server struct {
	logger *logger.Logger
	ids    *utils.UUIDGenerator

	mu            sync.Mutex
	accounts      map[string]*account // keyed by user ID
	tokens        map[string]string   // token -> user ID
	categories    []models.Category
	regions       []models.Region
	items         []models.Item
	bids          []models.Bid
	conversations []models.Conversation
	messages      map[string][]models.Message // conversation ID -> history
}

// New creates a Server pre-seeded with a category tree, regions, and a small
// item catalog so list endpoints return data out of the box.
func New(log *logger.Logger) *Server {
	s := &Server{
		logger:   log,
		ids:      utils.NewUUIDGenerator(),
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
		messages: make(map[string][]models.Message),
	}
	s.seed()

	return s
}

// Router assembles the chi router with all marketplace routes.
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.requestLogger)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", s.register)
		r.Post("/auth/login", s.login)
		r.Post("/auth/verify-otp", s.verifyOTP)
		r.Post("/auth/resend-otp", s.resendOTP)
		r.Post("/auth/forgot-password", s.forgotPassword)
		r.Post("/auth/reset-password", s.resetPassword)

		r.Get("/categories", s.listCategories)
		r.Get("/regions", s.listRegions)
		r.Get("/items", s.listItems)
		r.Get("/items/{itemID}", s.getItem)
		r.Get("/items/{itemID}/bids", s.listItemBids)
	})

	// routes behind the bearer token
	router.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Post("/auth/logout", s.logout)

		r.Get("/users/me", s.me)
		r.Put("/users/me", s.updateMe)

		r.Post("/listings", s.createListing)
		r.Get("/listings/mine", s.myListings)
		r.Put("/listings/{listingID}", s.updateListing)
		r.Delete("/listings/{listingID}", s.deleteListing)

		r.Post("/bids", s.placeBid)
		r.Get("/bids/mine", s.myBids)

		r.Get("/conversations", s.listConversations)
		r.Get("/conversations/{convID}/messages", s.listMessages)
		r.Post("/conversations/{convID}/messages", s.sendMessage)
	})

	return router
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("mockapi request")
	})
}

func (s *Server) seed() {
	s.categories = []models.Category{
		{ID: "c-electronics", Name: "Electronics", Slug: "electronics", Children: []models.Category{
			{ID: "c-phones", Name: "Phones", Slug: "phones", ParentID: "c-electronics"},
			{ID: "c-laptops", Name: "Laptops", Slug: "laptops", ParentID: "c-electronics"},
		}},
		{ID: "c-vehicles", Name: "Vehicles", Slug: "vehicles", Children: []models.Category{
			{ID: "c-cars", Name: "Cars", Slug: "cars", ParentID: "c-vehicles"},
			{ID: "c-bikes", Name: "Bikes", Slug: "bikes", ParentID: "c-vehicles"},
		}},
		{ID: "c-home", Name: "Home & Garden", Slug: "home-garden"},
	}

	s.regions = []models.Region{
		{ID: "r-north", Name: "North"},
		{ID: "r-south", Name: "South"},
		{ID: "r-east", Name: "East"},
		{ID: "r-west", Name: "West"},
	}

	now := time.Now().UTC()
	for i, seed := range []struct {
		title    string
		price    int64
		category string
	}{
		{"Mountain bike, barely used", 45000, "c-bikes"},
		{"iPhone 13, good condition", 38000, "c-phones"},
		{"Gaming laptop RTX 3060", 92000, "c-laptops"},
		{"Garden table with 4 chairs", 15000, "c-home"},
		{"City bike with basket", 21000, "c-bikes"},
		{"Compact sedan, 2018", 780000, "c-cars"},
		{"Android phone, cracked screen", 9000, "c-phones"},
	} {
		s.items = append(s.items, models.Item{
			ID:         s.ids.Generate(),
			Title:      seed.title,
			Price:      seed.price,
			Currency:   "USD",
			CategoryID: seed.category,
			RegionID:   s.regions[i%len(s.regions)].ID,
			SellerID:   "seed-seller",
			Status:     "active",
			CreatedAt:  now.Add(-time.Duration(i) * time.Hour),
			UpdatedAt:  now.Add(-time.Duration(i) * time.Hour),
		})
	}
}
