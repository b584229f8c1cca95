package entities

import (
	"github.com/google/uuid"
	"time"
)

type Conversation struct {
	// ClaimID is unique so a claim can never spawn more than one conversation.
	ID      uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ClaimID *uuid.UUID `gorm:"uniqueIndex" json:"claim_id,omitempty"`

	Claim        *Claim                     `gorm:"foreignKey:ClaimID"`
	Participants []*ConversationParticipant `gorm:"foreignKey:ConversationID"`
	Messages     []*ChatMessage             `gorm:"foreignKey:ConversationID"`
	Timestamp
}

type ConversationParticipant struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ConversationID uuid.UUID `gorm:"uniqueIndex:idx_conversation_user" json:"conversation_id"`
	UserID         uuid.UUID `gorm:"uniqueIndex:idx_conversation_user" json:"user_id"`

	Conversation *Conversation `gorm:"foreignKey:ConversationID"`
	User         *User         `gorm:"foreignKey:UserID"`
	Timestamp
}

type ChatMessage struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ConversationID  uuid.UUID  `gorm:"index" json:"conversation_id"`
	SenderID        *uuid.UUID `json:"sender_id,omitempty"` // nil for system messages
	Text            string     `gorm:"type:text" json:"text"`
	IsSystemMessage bool       `json:"is_system_message"`
	SentAt          time.Time  `json:"sent_at"`

	Conversation *Conversation `gorm:"foreignKey:ConversationID"`
	Sender       *User         `gorm:"foreignKey:SenderID"`
	Timestamp
}

type ChatRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FromUserID uuid.UUID `gorm:"index" json:"from_user_id"`
	ToUserID   uuid.UUID `gorm:"index" json:"to_user_id"`
	Status     string    `json:"status"` // "Pending", "Accepted", "Rejected"

	FromUser *User `gorm:"foreignKey:FromUserID"`
	ToUser   *User `gorm:"foreignKey:ToUserID"`
	Timestamp
}
