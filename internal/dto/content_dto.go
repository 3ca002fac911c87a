package dto

import "github.com/google/uuid"

type CreateDocumentRequest struct {
	Content string `json:"content" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Medium  string `json:"medium" validate:"required"`
	Grade   string `json:"grade,omitempty"`
}

type CreateDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

type CreateFigureRequest struct {
	Subject     string `json:"subject" validate:"required"`
	Medium      string `json:"medium" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Description string `json:"description" validate:"required"`
}

type CreateFigureResponse struct {
	Id uuid.UUID `json:"id"`
}

// PublishEmbedDocumentMessage is the payload carried on the embedding
// topic between the content service and the embedding consumer.
type PublishEmbedDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
