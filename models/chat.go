package models

import "time"

// Conversation is a chat thread between a buyer and a seller about one item.
type Conversation struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"item_id"`
	PeerID        string    `json:"peer_id"`
	PeerName      string    `json:"peer_name,omitempty"`
	LastMessage   string    `json:"last_message,omitempty"`
	UnreadCount   int       `json:"unread_count"`
	LastMessageAt time.Time `json:"last_message_at"`
}

// Message is a single chat message inside a conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// SendMessageRequest carries the payload for posting a new chat message.
type SendMessageRequest struct {
	Text string `json:"text"`
}
