package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContentFigure struct {
	Id          uuid.UUID
	Subject     string
	Medium      string
	ImageURL    string
	Description string
	CreatedAt   time.Time
}
