package service

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"guru-ai-be/internal/constant"
	"guru-ai-be/internal/dto"
	"guru-ai-be/internal/pkg/logger"
	"guru-ai-be/internal/repository/unitofwork"
	"guru-ai-be/pkg/events"
	"guru-ai-be/pkg/llm"
	pktNats "guru-ai-be/pkg/nats"
	"guru-ai-be/pkg/rag/credit"
	"guru-ai-be/pkg/rag/figure"
	"guru-ai-be/pkg/rag/interpret"
	"guru-ai-be/pkg/rag/response"
	"guru-ai-be/pkg/rag/search"
	"guru-ai-be/pkg/rag/session"

	"github.com/google/uuid"
)

// ITutorService defines the tutoring chat service interface
type ITutorService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	GetMessages(ctx context.Context, sessionId uuid.UUID) ([]*dto.MessageResponse, error)
}

// tutorService coordinates the chat pipeline:
// credit gate -> interpret -> retrieve -> generate -> figures -> persist -> deduct
type tutorService struct {
	eventPublisher *pktNats.Publisher
	sysLogger      logger.ILogger
	llmLogger      *log.Logger

	ledger            *credit.Ledger
	interpreter       *interpret.Interpreter
	retriever         *search.Retriever
	responseGenerator *response.Generator
	figureMatcher     *figure.Matcher
	sessionManager    *session.Manager
}

// NewTutorService creates the tutoring service with all pipeline components
func NewTutorService(
	uowFactory unitofwork.RepositoryFactory,
	profileStore credit.ProfileStore,
	documentStore search.DocumentStore,
	figureCatalog figure.Catalog,
	llmProvider llm.LLMProvider,
	interpretCache interpret.Cache,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
	perKeywordLimit int,
) ITutorService {

	llmLogger := initLLMLogger()
	retrier := llm.NewRetryCaller()

	return &tutorService{
		eventPublisher: eventPublisher,
		sysLogger:      sysLogger,
		llmLogger:      llmLogger,

		ledger:            credit.NewLedger(profileStore, llmLogger),
		interpreter:       interpret.NewInterpreter(llmProvider, retrier, interpretCache, llmLogger),
		retriever:         search.NewRetriever(documentStore, perKeywordLimit, llmLogger),
		responseGenerator: response.NewGenerator(llmProvider, retrier, llmLogger),
		figureMatcher:     figure.NewMatcher(figureCatalog, llmLogger),
		sessionManager:    session.NewManager(uowFactory, llmLogger),
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_rag.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-RAG] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// Chat runs one full tutoring turn. Internal failures never surface as
// errors: the student always gets a fixed message in their medium, and
// only credit exhaustion is distinguished at the status level.
func (ts *tutorService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	// 1. Credit gate: hard stop before any model or store work.
	check := ts.ledger.Check(ctx, request.UserId)
	if !check.Allowed {
		resp := &dto.ChatResponse{
			Answer:      response.OutOfCreditsMessage,
			CreditsLeft: check.CreditsLeft,
			Status:      constant.ChatStatusNoCredits,
		}
		if request.SessionId != nil {
			resp.SessionId = *request.SessionId
		}
		return resp, nil
	}

	// 2. Interpret the raw question. A failed interpretation skips
	// retrieval entirely but the turn is still recorded.
	var answer string
	var passages []string
	var imageURL *string
	figureCount := 0

	interpretation := ts.interpreter.Interpret(ctx, request.Message, request.Subject, request.Medium)
	if interpretation == nil {
		answer = response.CannotUnderstandMessage(request.Medium)
	} else {
		// 3. Retrieve matching passages.
		passages = ts.retriever.Retrieve(ctx, interpretation.SearchKeywords, search.Filters{
			Subject: request.Subject,
			Medium:  request.Medium,
			Grade:   request.Grade,
		})

		// 4. Generate the grounded answer (fixed no-notes message when empty).
		answer = ts.responseGenerator.Generate(ctx, passages, interpretation.InterpretedQuestion, request.Subject, request.Medium)

		// 5. Resolve figure references, first match rides on the chat bubble.
		figures := ts.figureMatcher.Match(ctx, passages, request.Subject, request.Medium)
		figureCount = len(figures)
		if len(figures) > 0 {
			imageURL = &figures[0].ImageURL
		}
	}

	// 6. Persist the turn. Bookkeeping failures never downgrade the answer.
	sessionId, err := ts.sessionManager.Ensure(ctx, request.SessionId, request.UserId, request.Subject, request.Message)
	if err != nil {
		ts.sysLogger.Error("tutor_service", "Failed to ensure chat session", map[string]interface{}{
			"user_id": request.UserId.String(),
			"error":   err.Error(),
		})
		if request.SessionId != nil {
			sessionId = *request.SessionId
		}
	} else {
		if err := ts.sessionManager.AppendTurn(ctx, sessionId, request.Message, answer, imageURL); err != nil {
			ts.sysLogger.Error("tutor_service", "Failed to append chat turn", map[string]interface{}{
				"session_id": sessionId.String(),
				"error":      err.Error(),
			})
		}
	}

	// 7. Deduct one credit, only when real context was served and the
	// student is on a metered plan.
	creditsLeft := check.CreditsLeft
	if len(passages) > 0 && check.ProfileFound && check.PlanType != constant.PlanTypeGenius {
		creditsLeft = ts.ledger.Deduct(ctx, request.UserId, check.CreditsLeft)
	}

	ts.publishTurnServed(ctx, request, sessionId, len(passages), figureCount)

	return &dto.ChatResponse{
		SessionId:   sessionId,
		Answer:      answer,
		ImageURL:    imageURL,
		CreditsLeft: creditsLeft,
		Status:      constant.ChatStatusSuccess,
	}, nil
}

func (ts *tutorService) publishTurnServed(ctx context.Context, request *dto.ChatRequest, sessionId uuid.UUID, passageCount, figureCount int) {
	if ts.eventPublisher == nil {
		return
	}
	evt := events.NewChatTurnServedEvent(
		request.UserId, sessionId,
		request.Subject, request.Medium,
		constant.ChatStatusSuccess,
		passageCount, figureCount,
	)
	if err := ts.eventPublisher.Publish(ctx, evt); err != nil {
		ts.sysLogger.Warn("tutor_service", "Failed to publish turn event", map[string]interface{}{
			"event_type": evt.EventType(),
			"error":      err.Error(),
		})
	}
}

// GetSessions lists a user's chat sessions, newest first.
func (ts *tutorService) GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	sessions, err := ts.sessionManager.ListSessions(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, &dto.SessionResponse{
			Id:        s.Id,
			Subject:   s.Subject,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
		})
	}
	return result, nil
}

// GetMessages lists a session's messages, oldest first.
func (ts *tutorService) GetMessages(ctx context.Context, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	messages, err := ts.sessionManager.ListMessages(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, &dto.MessageResponse{
			Id:        m.Id,
			Role:      m.Role,
			Content:   m.Content,
			ImageURL:  m.ImageURL,
			CreatedAt: m.CreatedAt,
		})
	}
	return result, nil
}
