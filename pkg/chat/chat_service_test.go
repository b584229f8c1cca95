package chat

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nourishnet/domain"
	"nourishnet/entities"
)

type fakeChatRepo struct {
	requests      map[string]*entities.ChatRequest
	conversations map[string]*entities.Conversation
	messages      []*entities.ChatMessage
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		requests:      map[string]*entities.ChatRequest{},
		conversations: map[string]*entities.Conversation{},
	}
}

func (f *fakeChatRepo) CreateChatRequest(ctx context.Context, request *entities.ChatRequest) error {
	f.requests[request.ID.String()] = request
	return nil
}

func (f *fakeChatRepo) GetChatRequestByID(ctx context.Context, id string) (*entities.ChatRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return request, nil
}

func (f *fakeChatRepo) GetPendingChatRequest(ctx context.Context, fromUserID, toUserID string) (*entities.ChatRequest, error) {
	for _, r := range f.requests {
		if r.FromUserID.String() == fromUserID && r.ToUserID.String() == toUserID && r.Status == domain.ChatRequestPending {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeChatRepo) GetChatRequestsForUser(ctx context.Context, userID string) ([]*entities.ChatRequest, error) {
	var result []*entities.ChatRequest
	for _, r := range f.requests {
		if r.ToUserID.String() == userID && r.Status == domain.ChatRequestPending {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeChatRepo) UpdateChatRequestStatus(ctx context.Context, id, status string) error {
	request, ok := f.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	request.Status = status
	return nil
}

func (f *fakeChatRepo) CreateConversation(ctx context.Context, conversation *entities.Conversation) error {
	f.conversations[conversation.ID.String()] = conversation
	return nil
}

func (f *fakeChatRepo) GetConversationByID(ctx context.Context, id string) (*entities.Conversation, error) {
	conversation, ok := f.conversations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return conversation, nil
}

func (f *fakeChatRepo) GetConversationsForUser(ctx context.Context, userID string) ([]*entities.Conversation, error) {
	var result []*entities.Conversation
	for _, c := range f.conversations {
		for _, p := range c.Participants {
			if p.UserID.String() == userID {
				result = append(result, c)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeChatRepo) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	conversation, ok := f.conversations[conversationID]
	if !ok {
		return false, nil
	}
	for _, p := range conversation.Participants {
		if p.UserID.String() == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeChatRepo) CreateMessage(ctx context.Context, message *entities.ChatMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeChatRepo) GetMessages(ctx context.Context, conversationID string) ([]*entities.ChatMessage, error) {
	var result []*entities.ChatMessage
	for _, m := range f.messages {
		if m.ConversationID.String() == conversationID {
			result = append(result, m)
		}
	}
	return result, nil
}

func TestSendChatRequestToSelfRejected(t *testing.T) {
	service := NewChatService(newFakeChatRepo())
	userID := uuid.New().String()

	_, err := service.SendChatRequest(context.Background(), domain.SendChatRequestRequest{ToUserID: userID}, userID)
	assert.ErrorIs(t, err, domain.ErrChatRequestSelf)
}

func TestSendChatRequestDeduplicated(t *testing.T) {
	service := NewChatService(newFakeChatRepo())
	from := uuid.New().String()
	to := uuid.New().String()

	_, err := service.SendChatRequest(context.Background(), domain.SendChatRequestRequest{ToUserID: to}, from)
	require.NoError(t, err)

	_, err = service.SendChatRequest(context.Background(), domain.SendChatRequestRequest{ToUserID: to}, from)
	assert.ErrorIs(t, err, domain.ErrChatRequestExists)
}

func TestAnswerChatRequestOnlyRecipient(t *testing.T) {
	repo := newFakeChatRepo()
	service := NewChatService(repo)
	from := uuid.New().String()
	to := uuid.New().String()

	sent, err := service.SendChatRequest(context.Background(), domain.SendChatRequestRequest{ToUserID: to}, from)
	require.NoError(t, err)

	_, err = service.AnswerChatRequest(context.Background(), sent.ID, "accept", from)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestAcceptChatRequestOpensConversation(t *testing.T) {
	repo := newFakeChatRepo()
	service := NewChatService(repo)
	from := uuid.New().String()
	to := uuid.New().String()

	sent, err := service.SendChatRequest(context.Background(), domain.SendChatRequestRequest{ToUserID: to}, from)
	require.NoError(t, err)

	res, err := service.AnswerChatRequest(context.Background(), sent.ID, "accept", to)
	require.NoError(t, err)
	assert.Equal(t, domain.ChatRequestAccepted, res.Status)
	require.NotEmpty(t, res.ConversationID)

	conversation := repo.conversations[res.ConversationID]
	require.NotNil(t, conversation)
	require.Len(t, conversation.Participants, 2)

	// answering a second time is a conflict
	_, err = service.AnswerChatRequest(context.Background(), sent.ID, "reject", to)
	assert.ErrorIs(t, err, domain.ErrChatRequestResolved)
}

func TestRejectChatRequestOpensNothing(t *testing.T) {
	repo := newFakeChatRepo()
	service := NewChatService(repo)
	from := uuid.New().String()
	to := uuid.New().String()

	sent, err := service.SendChatRequest(context.Background(), domain.SendChatRequestRequest{ToUserID: to}, from)
	require.NoError(t, err)

	res, err := service.AnswerChatRequest(context.Background(), sent.ID, "reject", to)
	require.NoError(t, err)
	assert.Equal(t, domain.ChatRequestRejected, res.Status)
	assert.Empty(t, res.ConversationID)
	assert.Empty(t, repo.conversations)
}

func TestMessagingRequiresParticipation(t *testing.T) {
	repo := newFakeChatRepo()
	service := NewChatService(repo)

	memberA := uuid.New()
	memberB := uuid.New()
	conversation := &entities.Conversation{
		ID: uuid.New(),
		Participants: []*entities.ConversationParticipant{
			{ID: uuid.New(), UserID: memberA},
			{ID: uuid.New(), UserID: memberB},
		},
	}
	repo.conversations[conversation.ID.String()] = conversation

	outsider := uuid.New().String()
	_, err := service.SendMessage(context.Background(), conversation.ID.String(), outsider, domain.SendMessageRequest{Text: "hello"})
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	sent, err := service.SendMessage(context.Background(), conversation.ID.String(), memberA.String(), domain.SendMessageRequest{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, memberA.String(), sent.SenderID)
	assert.False(t, sent.IsSystemMessage)

	_, err = service.GetMessages(context.Background(), conversation.ID.String(), outsider)
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	messages, err := service.GetMessages(context.Background(), conversation.ID.String(), memberB.String())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Text)
}
