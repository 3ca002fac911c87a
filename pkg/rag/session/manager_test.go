package session

import (
	"context"
	"io"
	"log"
	"testing"

	"guru-ai-be/internal/constant"
	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/repository/contract"
	"guru-ai-be/internal/repository/specification"
	"guru-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	sessions []*entity.ChatSession
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	session.Id = uuid.New()
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	if len(f.sessions) == 0 {
		return nil, nil
	}
	return f.sessions[0], nil
}

func (f *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	return f.sessions, nil
}

type fakeMessageRepo struct {
	messages []*entity.ChatMessage
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	message.Id = uuid.New()
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	return f.messages, nil
}

type fakeUnitOfWork struct {
	sessionRepo *fakeSessionRepo
	messageRepo *fakeMessageRepo
	began       bool
	committed   bool
	rolledBack  bool
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { f.began = true; return nil }
func (f *fakeUnitOfWork) Commit() error                   { f.committed = true; return nil }
func (f *fakeUnitOfWork) Rollback() error                 { f.rolledBack = true; return nil }

func (f *fakeUnitOfWork) ProfileRepository() contract.ProfileRepository     { return nil }
func (f *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository   { return nil }
func (f *fakeUnitOfWork) FigureRepository() contract.FigureRepository       { return nil }
func (f *fakeUnitOfWork) DocumentEmbeddingRepository() contract.DocumentEmbeddingRepository {
	return nil
}

func (f *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return f.sessionRepo
}

func (f *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return f.messageRepo
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newTestManager() (*Manager, *fakeUnitOfWork) {
	uow := &fakeUnitOfWork{
		sessionRepo: &fakeSessionRepo{},
		messageRepo: &fakeMessageRepo{},
	}
	return NewManager(&fakeFactory{uow: uow}, log.New(io.Discard, "", 0)), uow
}

func TestManager_EnsureCreatesSessionWithTitle(t *testing.T) {
	m, uow := newTestManager()
	userId := uuid.New()

	sessionId, err := m.Ensure(context.Background(), nil, userId, "Science", "mata photosynthesis gana kiyala denna puluwanda")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sessionId)
	require.Len(t, uow.sessionRepo.sessions, 1)

	created := uow.sessionRepo.sessions[0]
	assert.Equal(t, userId, created.UserId)
	assert.Equal(t, "Science", created.Subject)
	assert.Equal(t, "mata photosynthesis gana kiyala...", created.Title)
}

func TestManager_EnsurePassesThroughExistingId(t *testing.T) {
	m, uow := newTestManager()
	existing := uuid.New()

	sessionId, err := m.Ensure(context.Background(), &existing, uuid.New(), "Science", "follow up question")

	require.NoError(t, err)
	assert.Equal(t, existing, sessionId)
	assert.Empty(t, uow.sessionRepo.sessions)
}

func TestManager_EnsureShortMessageTitle(t *testing.T) {
	m, uow := newTestManager()

	_, err := m.Ensure(context.Background(), nil, uuid.New(), "Science", "api kawda")

	require.NoError(t, err)
	assert.Equal(t, "api kawda...", uow.sessionRepo.sessions[0].Title)
}

func TestManager_AppendTurnWritesPairInOrder(t *testing.T) {
	m, uow := newTestManager()
	sessionId := uuid.New()
	imageURL := "https://cdn.example.com/fig.png"

	err := m.AppendTurn(context.Background(), sessionId, "mage prashne", "uttare meka", &imageURL)

	require.NoError(t, err)
	assert.True(t, uow.began)
	assert.True(t, uow.committed)
	require.Len(t, uow.messageRepo.messages, 2)

	userMsg, aiMsg := uow.messageRepo.messages[0], uow.messageRepo.messages[1]
	assert.Equal(t, constant.ChatMessageRoleUser, userMsg.Role)
	assert.Equal(t, "mage prashne", userMsg.Content)
	assert.Nil(t, userMsg.ImageURL)

	assert.Equal(t, constant.ChatMessageRoleAI, aiMsg.Role)
	assert.Equal(t, "uttare meka", aiMsg.Content)
	require.NotNil(t, aiMsg.ImageURL)
	assert.Equal(t, imageURL, *aiMsg.ImageURL)
	assert.True(t, aiMsg.CreatedAt.After(userMsg.CreatedAt))
}

func TestManager_ListRoundTrip(t *testing.T) {
	m, uow := newTestManager()
	userId := uuid.New()

	sessionId, err := m.Ensure(context.Background(), nil, userId, "Science", "first question here now")
	require.NoError(t, err)

	require.NoError(t, m.AppendTurn(context.Background(), sessionId, "first question here now", "the answer", nil))

	sessions, err := m.ListSessions(context.Background(), userId)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	messages, err := m.ListMessages(context.Background(), sessionId)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, messages[0].Role)
	assert.Equal(t, constant.ChatMessageRoleAI, messages[1].Role)

	// Ensure with the returned id is a passthrough.
	again, err := m.Ensure(context.Background(), &sessionId, userId, "Science", "another")
	require.NoError(t, err)
	assert.Equal(t, sessionId, again)
	assert.Len(t, uow.sessionRepo.sessions, 1)
}
