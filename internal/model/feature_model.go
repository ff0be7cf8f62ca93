package model

import (
	"time"

	"github.com/google/uuid"
)

type Feature struct {
	Id          int       `gorm:"primaryKey;autoIncrement"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Reach       int       `gorm:"not null"`
	Impact      int       `gorm:"not null"`
	Confidence  int       `gorm:"not null"`
	Effort      int       `gorm:"not null"`
	Score       float64   `gorm:"type:numeric(10,2);not null"`
	Order       int       `gorm:"column:order;not null"`
	Priority    string    `gorm:"type:varchar(20);not null;default:'should'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Feature) TableName() string {
	return "features"
}
