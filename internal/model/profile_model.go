package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanType    string    `gorm:"type:varchar(50);not null;default:'standard'"`
	CreditsLeft int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
