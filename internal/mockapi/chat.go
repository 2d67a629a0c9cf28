package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bazarly/bazarly-go/models"
)

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[requestUserID(r)]
	if !ok {
		s.writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	s.writeJSON(w, map[string]models.UserProfile{"data": acc.profile}, http.StatusOK)
}

func (s *Server) updateMe(w http.ResponseWriter, r *http.Request) {
	var req models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[requestUserID(r)]
	if !ok {
		s.writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	if req.Name != "" {
		acc.profile.Name = req.Name
	}
	if req.AvatarURL != "" {
		acc.profile.AvatarURL = req.AvatarURL
	}
	acc.profile.UpdatedAt = time.Now().UTC()

	s.writeJSON(w, map[string]models.UserProfile{"data": acc.profile}, http.StatusOK)
}

func (s *Server) placeBid(w http.ResponseWriter, r *http.Request) {
	var req models.PlaceBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if req.ItemID == "" || req.Amount <= 0 {
		s.writeMessage(w, http.StatusUnprocessableEntity, "Item and positive amount are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var item *models.Item
	for i := range s.items {
		if s.items[i].ID == req.ItemID {
			item = &s.items[i]
			break
		}
	}
	if item == nil {
		s.writeMessage(w, http.StatusNotFound, "Item not found")
		return
	}
	if item.SellerID == requestUserID(r) {
		s.writeMessage(w, http.StatusConflict, "Cannot bid on your own listing")
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = item.Currency
	}
	bid := models.Bid{
		ID:        s.ids.Generate(),
		ItemID:    req.ItemID,
		BidderID:  requestUserID(r),
		Amount:    req.Amount,
		Currency:  currency,
		Status:    "pending",
		CreatedAt: time.Now().UTC(),
	}
	s.bids = append(s.bids, bid)

	s.writeJSON(w, map[string]models.Bid{"data": bid}, http.StatusCreated)
}

func (s *Server) myBids(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	mine := []models.Bid{}
	for _, bid := range s.bids {
		if bid.BidderID == userID {
			mine = append(mine, bid)
		}
	}

	s.writeJSON(w, mine, http.StatusOK)
}

func (s *Server) listConversations(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	convs := []models.Conversation{}
	for _, conv := range s.conversations {
		if conv.PeerID != userID && !s.participatesLocked(userID, conv.ID) {
			continue
		}
		convs = append(convs, conv)
	}

	s.writeJSON(w, convs, http.StatusOK)
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	convID := chi.URLParam(r, "convID")
	page := intParam(r.URL.Query().Get("page"), 1)
	pageSize := intParam(r.URL.Query().Get("pageSize"), defaultPageSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.messages[convID]
	if history == nil {
		history = []models.Message{}
	}
	start := (page - 1) * pageSize
	if start > len(history) {
		start = len(history)
	}
	end := start + pageSize
	if end > len(history) {
		end = len(history)
	}

	s.writeJSON(w, map[string]any{
		"items": history[start:end],
		"total": len(history),
	}, http.StatusOK)
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	convID := chi.URLParam(r, "convID")

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if req.Text == "" {
		s.writeMessage(w, http.StatusUnprocessableEntity, "Message text is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	msg := models.Message{
		ID:             s.ids.Generate(),
		ConversationID: convID,
		SenderID:       requestUserID(r),
		Text:           req.Text,
		CreatedAt:      now,
	}
	s.messages[convID] = append(s.messages[convID], msg)

	found := false
	for i := range s.conversations {
		if s.conversations[i].ID == convID {
			s.conversations[i].LastMessage = msg.Text
			s.conversations[i].LastMessageAt = now
			found = true
			break
		}
	}
	if !found {
		s.conversations = append(s.conversations, models.Conversation{
			ID:            convID,
			LastMessage:   msg.Text,
			LastMessageAt: now,
		})
	}

	s.writeJSON(w, msg, http.StatusCreated)
}

// participatesLocked reports whether the user sent a message in the
// conversation. Caller holds s.mu.
func (s *Server) participatesLocked(userID, convID string) bool {
	for _, msg := range s.messages[convID] {
		if msg.SenderID == userID {
			return true
		}
	}
	return false
}
