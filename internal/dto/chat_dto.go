package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	UserId    uuid.UUID  `json:"user_id" validate:"required"`
	SessionId *uuid.UUID `json:"session_id,omitempty"`
	Message   string     `json:"message" validate:"required"`
	Subject   string     `json:"subject" validate:"required"`
	Grade     string     `json:"grade,omitempty"`
	Medium    string     `json:"medium" validate:"required"`
}

type ChatResponse struct {
	SessionId   uuid.UUID `json:"session_id"`
	Answer      string    `json:"answer"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreditsLeft int       `json:"credits_left"`
	Status      string    `json:"status"` // "success" | "no_credits" | "error"
}

type SessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
