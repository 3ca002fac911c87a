package service

import (
	"context"
	"encoding/json"
	"log"

	"guru-ai-be/internal/dto"
	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/repository/unitofwork"
)

// IContentService manages the curriculum corpus: textbook passages and
// the figure catalog.
type IContentService interface {
	CreateDocument(ctx context.Context, request *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error)
	CreateFigure(ctx context.Context, request *dto.CreateFigureRequest) (*dto.CreateFigureResponse, error)
}

type contentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewContentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IContentService {
	return &contentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// CreateDocument stores a passage and queues it for embedding.
func (c *contentService) CreateDocument(ctx context.Context, request *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	document := &entity.Document{
		Content: request.Content,
		Subject: request.Subject,
		Medium:  request.Medium,
		Grade:   request.Grade,
	}
	if err := uow.DocumentRepository().Create(ctx, document); err != nil {
		return nil, err
	}

	// Queue embedding generation. The passage is already searchable by
	// keyword, so a failed publish is not fatal.
	msgPayload := dto.PublishEmbedDocumentMessage{
		DocumentId: document.Id,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal embed message for document %s: %v", document.Id, err)
	} else if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		log.Printf("[ERROR] Failed to publish embed message for document %s: %v", document.Id, err)
	}

	return &dto.CreateDocumentResponse{Id: document.Id}, nil
}

// CreateFigure adds an image to the figure catalog.
func (c *contentService) CreateFigure(ctx context.Context, request *dto.CreateFigureRequest) (*dto.CreateFigureResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	fig := &entity.ContentFigure{
		Subject:     request.Subject,
		Medium:      request.Medium,
		ImageURL:    request.ImageURL,
		Description: request.Description,
	}
	if err := uow.FigureRepository().Create(ctx, fig); err != nil {
		return nil, err
	}

	return &dto.CreateFigureResponse{Id: fig.Id}, nil
}
