package session

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"guru-ai-be/internal/constant"
	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/repository/specification"
	"guru-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager owns conversation bookkeeping: creating sessions lazily on the
// first message and appending finished turns as user/ai message pairs.
type Manager struct {
	repositoryFactory unitofwork.RepositoryFactory
	logger            *log.Logger
}

func NewManager(repositoryFactory unitofwork.RepositoryFactory, logger *log.Logger) *Manager {
	return &Manager{
		repositoryFactory: repositoryFactory,
		logger:            logger,
	}
}

// Ensure returns the id of the session this turn belongs to. A nil
// sessionId creates a fresh session titled after the opening words of
// the message; an existing id is passed through untouched.
func (m *Manager) Ensure(ctx context.Context, sessionId *uuid.UUID, userId uuid.UUID, subject, message string) (uuid.UUID, error) {
	if sessionId != nil {
		return *sessionId, nil
	}

	uow := m.repositoryFactory.NewUnitOfWork(ctx)
	session := &entity.ChatSession{
		UserId:  userId,
		Subject: subject,
		Title:   sessionTitle(message),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	m.logger.Printf("[SESSION] Created session %s (%q)", session.Id, session.Title)
	return session.Id, nil
}

// AppendTurn writes the user question and the assistant answer as one
// transactional pair. The ai message gets a slightly later timestamp so
// chronological reads keep the pair ordered.
func (m *Manager) AppendTurn(ctx context.Context, sessionId uuid.UUID, userMessage, aiMessage string, imageURL *string) error {
	uow := m.repositoryFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	now := time.Now()
	userMsg := &entity.ChatMessage{
		SessionId: sessionId,
		Role:      constant.ChatMessageRoleUser,
		Content:   userMessage,
		CreatedAt: now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		_ = uow.Rollback()
		return fmt.Errorf("failed to save user message: %w", err)
	}

	aiMsg := &entity.ChatMessage{
		SessionId: sessionId,
		Role:      constant.ChatMessageRoleAI,
		Content:   aiMessage,
		ImageURL:  imageURL,
		CreatedAt: now.Add(time.Millisecond),
	}
	if err := uow.ChatMessageRepository().Create(ctx, aiMsg); err != nil {
		_ = uow.Rollback()
		return fmt.Errorf("failed to save ai message: %w", err)
	}

	return uow.Commit()
}

// ListSessions returns a user's sessions, newest first.
func (m *Manager) ListSessions(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error) {
	uow := m.repositoryFactory.NewUnitOfWork(ctx)
	return uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

// ListMessages returns a session's messages, oldest first.
func (m *Manager) ListMessages(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	uow := m.repositoryFactory.NewUnitOfWork(ctx)
	return uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
}

// sessionTitle derives a short label from the opening words of a message.
func sessionTitle(message string) string {
	tokens := strings.Fields(message)
	if len(tokens) > 4 {
		tokens = tokens[:4]
	}
	return strings.Join(tokens, " ") + "..."
}
