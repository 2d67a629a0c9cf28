package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/transport"
	"github.com/bazarly/bazarly-go/models"
)

// ChatService serves the buyer-seller messaging endpoints.
type ChatService struct {
	client *transport.Client
	logger *logger.Logger
}

func NewChatService(client *transport.Client, log *logger.Logger) *ChatService {
	return &ChatService{client: client, logger: log}
}

// Conversations returns the caller's chat threads, most recent first.
func (s *ChatService) Conversations(ctx context.Context) ([]models.Conversation, error) {
	raw, err := s.client.Get(ctx, "/conversations", nil)
	if err != nil {
		return nil, err
	}

	return transport.DecodeList[models.Conversation](raw)
}

// Messages fetches one page of a conversation's history.
func (s *ChatService) Messages(ctx context.Context, conversationID string, page, pageSize int) (models.Page[models.Message], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	raw, err := s.client.Get(ctx, "/conversations/"+conversationID+"/messages", query)
	if err != nil {
		return models.Page[models.Message]{}, err
	}

	return transport.DecodePage[models.Message](raw)
}

// Send posts a new message into a conversation.
func (s *ChatService) Send(ctx context.Context, conversationID string, req models.SendMessageRequest) (*models.Message, error) {
	raw, err := s.client.Post(ctx, "/conversations/"+conversationID+"/messages", req)
	if err != nil {
		return nil, err
	}

	return decodeOne[models.Message](raw)
}
