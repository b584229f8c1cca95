package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nourishnet/domain"
	"nourishnet/entities"
)

type (
	ChatService interface {
		SendChatRequest(ctx context.Context, req domain.SendChatRequestRequest, fromUserID string) (*domain.ChatRequestResponse, error)
		GetChatRequests(ctx context.Context, userID string) ([]*domain.ChatRequestResponse, error)
		AnswerChatRequest(ctx context.Context, requestID, answer, userID string) (*domain.AnswerChatRequestResponse, error)
		GetConversations(ctx context.Context, userID string) ([]*domain.Conversation, error)
		GetMessages(ctx context.Context, conversationID, userID string) ([]*domain.ChatMessage, error)
		SendMessage(ctx context.Context, conversationID, userID string, req domain.SendMessageRequest) (*domain.ChatMessage, error)
	}

	chatService struct {
		chatRepository ChatRepository
	}
)

func NewChatService(chatRepository ChatRepository) ChatService {
	return &chatService{chatRepository: chatRepository}
}

func (s *chatService) SendChatRequest(ctx context.Context, req domain.SendChatRequestRequest, fromUserID string) (*domain.ChatRequestResponse, error) {
	from, err := uuid.Parse(fromUserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	to, err := uuid.Parse(req.ToUserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if from == to {
		return nil, domain.ErrChatRequestSelf
	}

	if existing, err := s.chatRepository.GetPendingChatRequest(ctx, fromUserID, req.ToUserID); err == nil && existing != nil {
		return nil, domain.ErrChatRequestExists
	}

	request := &entities.ChatRequest{
		ID:         uuid.New(),
		FromUserID: from,
		ToUserID:   to,
		Status:     domain.ChatRequestPending,
	}
	if err := s.chatRepository.CreateChatRequest(ctx, request); err != nil {
		return nil, err
	}

	return convertChatRequest(request), nil
}

func (s *chatService) GetChatRequests(ctx context.Context, userID string) ([]*domain.ChatRequestResponse, error) {
	requests, err := s.chatRepository.GetChatRequestsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ChatRequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, convertChatRequest(r))
	}
	return result, nil
}

// AnswerChatRequest resolves a pending request. Accepting opens a direct
// conversation between the two users; the requester cannot answer their own
// request.
func (s *chatService) AnswerChatRequest(ctx context.Context, requestID, answer, userID string) (*domain.AnswerChatRequestResponse, error) {
	request, err := s.chatRepository.GetChatRequestByID(ctx, requestID)
	if err != nil {
		return nil, domain.ErrChatRequestNotFound
	}
	if request.ToUserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	if request.Status != domain.ChatRequestPending {
		return nil, domain.ErrChatRequestResolved
	}

	if answer != "accept" {
		if err := s.chatRepository.UpdateChatRequestStatus(ctx, requestID, domain.ChatRequestRejected); err != nil {
			return nil, err
		}
		return &domain.AnswerChatRequestResponse{Status: domain.ChatRequestRejected}, nil
	}

	if err := s.chatRepository.UpdateChatRequestStatus(ctx, requestID, domain.ChatRequestAccepted); err != nil {
		return nil, err
	}

	conversation := &entities.Conversation{
		ID: uuid.New(),
		Participants: []*entities.ConversationParticipant{
			{ID: uuid.New(), UserID: request.FromUserID},
			{ID: uuid.New(), UserID: request.ToUserID},
		},
	}
	if err := s.chatRepository.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	return &domain.AnswerChatRequestResponse{
		Status:         domain.ChatRequestAccepted,
		ConversationID: conversation.ID.String(),
	}, nil
}

func (s *chatService) GetConversations(ctx context.Context, userID string) ([]*domain.Conversation, error) {
	conversations, err := s.chatRepository.GetConversationsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Conversation, 0, len(conversations))
	for _, c := range conversations {
		result = append(result, convertConversation(c))
	}
	return result, nil
}

func (s *chatService) GetMessages(ctx context.Context, conversationID, userID string) ([]*domain.ChatMessage, error) {
	if err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	messages, err := s.chatRepository.GetMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ChatMessage, 0, len(messages))
	for _, m := range messages {
		result = append(result, convertMessage(m))
	}
	return result, nil
}

func (s *chatService) SendMessage(ctx context.Context, conversationID, userID string, req domain.SendMessageRequest) (*domain.ChatMessage, error) {
	if err := s.requireParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	conversationUUID, err := uuid.Parse(conversationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	senderID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	message := &entities.ChatMessage{
		ID:             uuid.New(),
		ConversationID: conversationUUID,
		SenderID:       &senderID,
		Text:           req.Text,
		SentAt:         time.Now(),
	}
	if err := s.chatRepository.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	return convertMessage(message), nil
}

func (s *chatService) requireParticipant(ctx context.Context, conversationID, userID string) error {
	ok, err := s.chatRepository.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return domain.ErrConversationNotFound
	}
	if !ok {
		return domain.ErrNotParticipant
	}
	return nil
}

func convertChatRequest(request *entities.ChatRequest) *domain.ChatRequestResponse {
	result := &domain.ChatRequestResponse{
		ID:         request.ID.String(),
		FromUserID: request.FromUserID.String(),
		ToUserID:   request.ToUserID.String(),
		Status:     request.Status,
		CreatedAt:  request.CreatedAt,
	}
	if request.FromUser != nil {
		result.FromUserName = request.FromUser.Name
	}
	return result
}

func convertConversation(conversation *entities.Conversation) *domain.Conversation {
	result := &domain.Conversation{
		ID:        conversation.ID.String(),
		CreatedAt: conversation.CreatedAt,
	}
	if conversation.ClaimID != nil {
		result.ClaimID = conversation.ClaimID.String()
	}
	for _, p := range conversation.Participants {
		result.ParticipantIDs = append(result.ParticipantIDs, p.UserID.String())
	}
	return result
}

func convertMessage(message *entities.ChatMessage) *domain.ChatMessage {
	result := &domain.ChatMessage{
		ID:              message.ID.String(),
		ConversationID:  message.ConversationID.String(),
		Text:            message.Text,
		IsSystemMessage: message.IsSystemMessage,
		SentAt:          message.SentAt,
	}
	if message.SenderID != nil {
		result.SenderID = message.SenderID.String()
	}
	return result
}
