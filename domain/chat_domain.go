package domain

import (
	"errors"
	"time"
)

const (
	ChatRequestPending  = "Pending"
	ChatRequestAccepted = "Accepted"
	ChatRequestRejected = "Rejected"
)

var (
	MessageSuccessSendChatRequest   = "chat request sent successfully"
	MessageSuccessAnswerChatRequest = "chat request answered successfully"
	MessageSuccessGetConversations  = "conversations retrieved successfully"
	MessageSuccessGetMessages       = "messages retrieved successfully"
	MessageSuccessSendMessage       = "message sent successfully"

	MessageFailedSendChatRequest   = "failed to send chat request"
	MessageFailedAnswerChatRequest = "failed to answer chat request"
	MessageFailedGetConversations  = "failed to retrieve conversations"
	MessageFailedGetMessages       = "failed to retrieve messages"
	MessageFailedSendMessage       = "failed to send message"

	ErrChatRequestNotFound  = errors.New("chat request not found")
	ErrChatRequestExists    = errors.New("a pending chat request already exists")
	ErrChatRequestResolved  = errors.New("chat request already answered")
	ErrChatRequestSelf      = errors.New("cannot send a chat request to yourself")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("user is not a participant of this conversation")
)

type (
	SendChatRequestRequest struct {
		ToUserID string `json:"to_user_id" validate:"required,uuid"`
	}

	AnswerChatRequestRequest struct {
		Answer string `json:"answer" validate:"required,oneof=accept reject"`
	}

	AnswerChatRequestResponse struct {
		Status         string `json:"status"`
		ConversationID string `json:"conversation_id,omitempty"`
	}

	ChatRequestResponse struct {
		ID           string    `json:"id"`
		FromUserID   string    `json:"from_user_id"`
		FromUserName string    `json:"from_user_name,omitempty"`
		ToUserID     string    `json:"to_user_id"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
	}

	Conversation struct {
		ID             string    `json:"id"`
		ClaimID        string    `json:"claim_id,omitempty"`
		ParticipantIDs []string  `json:"participant_ids"`
		CreatedAt      time.Time `json:"created_at"`
	}

	SendMessageRequest struct {
		Text string `json:"text" validate:"required"`
	}

	ChatMessage struct {
		ID              string    `json:"id"`
		ConversationID  string    `json:"conversation_id"`
		SenderID        string    `json:"sender_id,omitempty"`
		Text            string    `json:"text"`
		IsSystemMessage bool      `json:"is_system_message"`
		SentAt          time.Time `json:"sent_at"`
	}
)
