package service

import (
	"context"
	"testing"

	"guru-ai-be/internal/constant"
	"guru-ai-be/internal/dto"
	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/repository/contract"
	"guru-ai-be/internal/repository/specification"
	"guru-ai-be/internal/repository/unitofwork"
	"guru-ai-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeSessionRepo struct {
	sessions []*entity.ChatSession
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	session.Id = uuid.New()
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	return nil, nil
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
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) ProfileRepository() contract.ProfileRepository   { return nil }
func (f *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository { return nil }
func (f *fakeUnitOfWork) DocumentEmbeddingRepository() contract.DocumentEmbeddingRepository {
	return nil
}
func (f *fakeUnitOfWork) FigureRepository() contract.FigureRepository { return nil }
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

type fakeProfileStore struct {
	profile *entity.Profile
	deducts int
}

func (f *fakeProfileStore) FindProfile(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	return f.profile, nil
}

func (f *fakeProfileStore) DeductCredit(ctx context.Context, userId uuid.UUID) (int, error) {
	f.deducts++
	f.profile.CreditsLeft--
	return f.profile.CreditsLeft, nil
}

type fakeDocumentStore struct {
	hits map[string][]string
}

func (f *fakeDocumentStore) SearchContent(ctx context.Context, keyword, subject, medium, grade string, limit int) ([]string, error) {
	return f.hits[keyword], nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type fakeCatalog struct {
	figures map[string]*entity.ContentFigure
}

func (f *fakeCatalog) FindFigure(ctx context.Context, subject, medium, figureId string) (*entity.ContentFigure, error) {
	return f.figures[figureId], nil
}

// scriptedProvider returns canned responses in call order.
type scriptedProvider struct {
	responses []string
	errs      []error
	calls     int
}

func (s *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	idx := s.calls
	s.calls++
	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	return "", nil
}

func (s *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

// --- harness ---

type tutorFixture struct {
	service  ITutorService
	profiles *fakeProfileStore
	provider *scriptedProvider
	uow      *fakeUnitOfWork
}

func newTutorFixture(profile *entity.Profile, provider *scriptedProvider, docs *fakeDocumentStore, catalog *fakeCatalog) *tutorFixture {
	uow := &fakeUnitOfWork{
		sessionRepo: &fakeSessionRepo{},
		messageRepo: &fakeMessageRepo{},
	}
	profiles := &fakeProfileStore{profile: profile}

	svc := NewTutorService(
		&fakeFactory{uow: uow},
		profiles,
		docs,
		catalog,
		provider,
		nil, // no interpretation cache
		nil, // no event bus
		noopLogger{},
		8,
	)
	return &tutorFixture{service: svc, profiles: profiles, provider: provider, uow: uow}
}

// --- tests ---

func TestTutorService_SinglishTurnEndToEnd(t *testing.T) {
	provider := &scriptedProvider{
		responses: []string{
			`{"interpreted_question": "මගේ නම මොකක්ද", "search_keywords": ["නම"]}`,
			"ඔයාගේ ප්‍රශ්නයට උත්තරේ මෙන්න. See Figure 4.5.",
		},
	}
	docs := &fakeDocumentStore{
		hits: map[string][]string{
			"නම": {"Figure 4.5 shows the digestive system"},
		},
	}
	catalog := &fakeCatalog{
		figures: map[string]*entity.ContentFigure{
			"4.5": {ImageURL: "https://cdn.example.com/fig-4-5.png"},
		},
	}
	fx := newTutorFixture(&entity.Profile{PlanType: constant.PlanTypeStandard, CreditsLeft: 5}, provider, docs, catalog)

	resp, err := fx.service.Chat(context.Background(), &dto.ChatRequest{
		UserId:  uuid.New(),
		Message: "mage nama monawada",
		Subject: "Science",
		Medium:  constant.MediumSinhala,
	})

	require.NoError(t, err)
	assert.Equal(t, constant.ChatStatusSuccess, resp.Status)
	assert.Equal(t, "ඔයාගේ ප්‍රශ්නයට උත්තරේ මෙන්න. See Figure 4.5.", resp.Answer)
	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "https://cdn.example.com/fig-4-5.png", *resp.ImageURL)
	assert.Equal(t, 4, resp.CreditsLeft)
	assert.Equal(t, 1, fx.profiles.deducts)

	// One interpretation call plus one generation call.
	assert.Equal(t, 2, provider.calls)

	// Session created from the opening words, turn persisted as a pair.
	require.Len(t, fx.uow.sessionRepo.sessions, 1)
	assert.Equal(t, "mage nama monawada...", fx.uow.sessionRepo.sessions[0].Title)
	require.Len(t, fx.uow.messageRepo.messages, 2)
	assert.Equal(t, "mage nama monawada", fx.uow.messageRepo.messages[0].Content)
	require.NotNil(t, fx.uow.messageRepo.messages[1].ImageURL)
}

func TestTutorService_NoCreditsShortCircuits(t *testing.T) {
	provider := &scriptedProvider{}
	fx := newTutorFixture(
		&entity.Profile{PlanType: constant.PlanTypeStandard, CreditsLeft: 0},
		provider,
		&fakeDocumentStore{},
		&fakeCatalog{},
	)

	resp, err := fx.service.Chat(context.Background(), &dto.ChatRequest{
		UserId:  uuid.New(),
		Message: "mata kiyanna",
		Subject: "Science",
		Medium:  constant.MediumSinhala,
	})

	require.NoError(t, err)
	assert.Equal(t, constant.ChatStatusNoCredits, resp.Status)
	assert.Contains(t, resp.Answer, "අයියෝ පුතේ")
	// No model work, no persistence, no deduction.
	assert.Equal(t, 0, provider.calls)
	assert.Empty(t, fx.uow.sessionRepo.sessions)
	assert.Empty(t, fx.uow.messageRepo.messages)
	assert.Equal(t, 0, fx.profiles.deducts)
}

func TestTutorService_GeniusPlanIsExempt(t *testing.T) {
	provider := &scriptedProvider{
		responses: []string{
			`{"interpreted_question": "q", "search_keywords": ["osmosis"]}`,
			"the answer",
		},
	}
	docs := &fakeDocumentStore{hits: map[string][]string{"osmosis": {"a passage"}}}
	fx := newTutorFixture(&entity.Profile{PlanType: constant.PlanTypeGenius, CreditsLeft: 0}, provider, docs, &fakeCatalog{})

	resp, err := fx.service.Chat(context.Background(), &dto.ChatRequest{
		UserId:  uuid.New(),
		Message: "what is osmosis",
		Subject: "Science",
		Medium:  constant.MediumEnglish,
	})

	require.NoError(t, err)
	assert.Equal(t, constant.ChatStatusSuccess, resp.Status)
	assert.Equal(t, "the answer", resp.Answer)
	assert.Equal(t, 0, fx.profiles.deducts)
}

func TestTutorService_InterpretationFailureStillRecordsTurn(t *testing.T) {
	provider := &scriptedProvider{
		responses: []string{"this is not json"},
	}
	fx := newTutorFixture(&entity.Profile{PlanType: constant.PlanTypeStandard, CreditsLeft: 5}, provider, &fakeDocumentStore{}, &fakeCatalog{})

	resp, err := fx.service.Chat(context.Background(), &dto.ChatRequest{
		UserId:  uuid.New(),
		Message: "gibberish input",
		Subject: "Science",
		Medium:  constant.MediumEnglish,
	})

	require.NoError(t, err)
	assert.Equal(t, constant.ChatStatusSuccess, resp.Status)
	assert.Equal(t, "Sorry, I couldn't understand the question. Please try again.", resp.Answer)
	// Only the failed interpretation call, no retrieval or generation.
	assert.Equal(t, 1, provider.calls)
	// The turn is still persisted so the student sees it in history.
	assert.Len(t, fx.uow.messageRepo.messages, 2)
	// No context served, no credit burned.
	assert.Equal(t, 0, fx.profiles.deducts)
	assert.Equal(t, 5, resp.CreditsLeft)
}

func TestTutorService_EmptyRetrievalSkipsGeneration(t *testing.T) {
	provider := &scriptedProvider{
		responses: []string{
			`{"interpreted_question": "ප්‍රභාසංස්ලේෂණය", "search_keywords": ["ප්‍රභාසංස්ලේෂණය"]}`,
		},
	}
	fx := newTutorFixture(&entity.Profile{PlanType: constant.PlanTypeStandard, CreditsLeft: 5}, provider, &fakeDocumentStore{}, &fakeCatalog{})

	resp, err := fx.service.Chat(context.Background(), &dto.ChatRequest{
		UserId:  uuid.New(),
		Message: "photosynthesis gana kiyanna",
		Subject: "Science",
		Medium:  constant.MediumSinhala,
	})

	require.NoError(t, err)
	assert.Equal(t, constant.ChatStatusSuccess, resp.Status)
	assert.Contains(t, resp.Answer, "ප්‍රභාසංස්ලේෂණය")
	assert.Nil(t, resp.ImageURL)
	// Generation is never attempted without context.
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 0, fx.profiles.deducts)
}

func TestTutorService_GuestWithoutProfileIsServed(t *testing.T) {
	provider := &scriptedProvider{
		responses: []string{
			`{"interpreted_question": "q", "search_keywords": ["cells"]}`,
			"an answer",
		},
	}
	docs := &fakeDocumentStore{hits: map[string][]string{"cells": {"a passage"}}}
	uow := &fakeUnitOfWork{sessionRepo: &fakeSessionRepo{}, messageRepo: &fakeMessageRepo{}}
	profiles := &fakeProfileStore{profile: nil}

	svc := NewTutorService(&fakeFactory{uow: uow}, profiles, docs, &fakeCatalog{}, provider, nil, nil, noopLogger{}, 8)

	resp, err := svc.Chat(context.Background(), &dto.ChatRequest{
		UserId:  uuid.New(),
		Message: "tell me about cells",
		Subject: "Science",
		Medium:  constant.MediumEnglish,
	})

	require.NoError(t, err)
	assert.Equal(t, constant.ChatStatusSuccess, resp.Status)
	assert.Equal(t, "an answer", resp.Answer)
	// No profile, nothing to deduct.
	assert.Equal(t, 0, profiles.deducts)
}
