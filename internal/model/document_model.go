package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Document is one textbook passage. Subject/medium/grade live in the
// metadata JSON column so the search filters match the content pipeline
// that produced the rows (metadata->>subject etc).
type Document struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string            `gorm:"type:text;not null"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}
