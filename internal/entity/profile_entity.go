package entity

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id          uuid.UUID
	PlanType    string
	CreditsLeft int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
