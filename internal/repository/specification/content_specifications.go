package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetadataEquals filters documents on a metadata JSON key (metadata->>key = value).
type MetadataEquals struct {
	Key   string
	Value string
}

func (s MetadataEquals) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("metadata->>? = ?", s.Key, s.Value)
}

// ContentContains is a case-insensitive substring match on passage content.
type ContentContains struct {
	Keyword string
}

func (s ContentContains) Apply(db *gorm.DB) *gorm.DB {
	// ILIKE for Postgres (case insensitive)
	return db.Where("content ILIKE ?", "%"+s.Keyword+"%")
}

// SubjectIs filters the figure catalog by exact subject
type SubjectIs struct {
	Subject string
}

func (s SubjectIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject = ?", s.Subject)
}

// MediumIs filters the figure catalog by exact medium
type MediumIs struct {
	Medium string
}

func (s MediumIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("medium = ?", s.Medium)
}

// DescriptionContains matches figure descriptions case-insensitively,
// used for the literal "Figure <id>" marker.
type DescriptionContains struct {
	Text string
}

func (s DescriptionContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("description ILIKE ?", "%"+s.Text+"%")
}

// BySessionID filters chat messages by their session
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByDocumentID filters embeddings by their source document
type ByDocumentID struct {
	DocumentID uuid.UUID
}

func (s ByDocumentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_id = ?", s.DocumentID)
}
