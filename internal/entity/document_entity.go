package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id        uuid.UUID
	Content   string
	Subject   string
	Medium    string
	Grade     string
	CreatedAt time.Time
}

type DocumentEmbedding struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	Chunk      string
	Values     []float32
	ChunkIndex int
	CreatedAt  time.Time
}
