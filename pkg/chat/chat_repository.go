package chat

import (
	"context"

	"gorm.io/gorm"

	"nourishnet/domain"
	"nourishnet/entities"
)

type (
	ChatRepository interface {
		CreateChatRequest(ctx context.Context, request *entities.ChatRequest) error
		GetChatRequestByID(ctx context.Context, id string) (*entities.ChatRequest, error)
		GetPendingChatRequest(ctx context.Context, fromUserID, toUserID string) (*entities.ChatRequest, error)
		GetChatRequestsForUser(ctx context.Context, userID string) ([]*entities.ChatRequest, error)
		UpdateChatRequestStatus(ctx context.Context, id, status string) error

		CreateConversation(ctx context.Context, conversation *entities.Conversation) error
		GetConversationByID(ctx context.Context, id string) (*entities.Conversation, error)
		GetConversationsForUser(ctx context.Context, userID string) ([]*entities.Conversation, error)
		IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)

		CreateMessage(ctx context.Context, message *entities.ChatMessage) error
		GetMessages(ctx context.Context, conversationID string) ([]*entities.ChatMessage, error)
	}

	chatRepository struct {
		db *gorm.DB
	}
)

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateChatRequest(ctx context.Context, request *entities.ChatRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *chatRepository) GetChatRequestByID(ctx context.Context, id string) (*entities.ChatRequest, error) {
	var request entities.ChatRequest
	if err := r.db.WithContext(ctx).
		Preload("FromUser").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *chatRepository) GetPendingChatRequest(ctx context.Context, fromUserID, toUserID string) (*entities.ChatRequest, error) {
	var request entities.ChatRequest
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ? AND status = ?",
			fromUserID, toUserID, domain.ChatRequestPending).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *chatRepository) GetChatRequestsForUser(ctx context.Context, userID string) ([]*entities.ChatRequest, error) {
	var requests []*entities.ChatRequest
	err := r.db.WithContext(ctx).
		Preload("FromUser").
		Where("to_user_id = ? AND status = ?", userID, domain.ChatRequestPending).
		Order("created_at desc").
		Find(&requests).Error
	return requests, err
}

func (r *chatRepository) UpdateChatRequestStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).Model(&entities.ChatRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *chatRepository) CreateConversation(ctx context.Context, conversation *entities.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *chatRepository) GetConversationByID(ctx context.Context, id string) (*entities.Conversation, error) {
	var conversation entities.Conversation
	if err := r.db.WithContext(ctx).
		Preload("Participants").
		Where("id = ?", id).
		First(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *chatRepository) GetConversationsForUser(ctx context.Context, userID string) ([]*entities.Conversation, error) {
	var conversations []*entities.Conversation
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Joins("JOIN conversation_participants cp ON cp.conversation_id = conversations.id").
		Where("cp.user_id = ?", userID).
		Order("conversations.created_at desc").
		Find(&conversations).Error
	return conversations, err
}

func (r *chatRepository) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *entities.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *chatRepository) GetMessages(ctx context.Context, conversationID string) ([]*entities.ChatMessage, error) {
	var messages []*entities.ChatMessage
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at asc").
		Find(&messages).Error
	return messages, err
}
