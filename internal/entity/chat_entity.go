package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Subject   string
	Title     string
	CreatedAt time.Time
}

type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string
	Content   string
	ImageURL  *string
	CreatedAt time.Time
}
