package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Prd struct {
	Id          int            `gorm:"primaryKey;autoIncrement"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text;not null"`
	Sections    datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Prd) TableName() string {
	return "prds"
}
