package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentFigure is a catalog row for a textbook illustration. Matching is
// done through Description, which carries the "Figure <id>" marker.
type ContentFigure struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Subject     string    `gorm:"type:varchar(100);not null;index"`
	Medium      string    `gorm:"type:varchar(50);not null;index"`
	ImageURL    string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ContentFigure) TableName() string {
	return "content_library"
}
