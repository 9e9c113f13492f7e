package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantId *uuid.UUID     `gorm:"type:uuid;index"`
	DishId       *uuid.UUID     `gorm:"type:uuid;index"`
	Rating       int            `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment      string         `gorm:"type:text"`
	IsVerified   bool           `gorm:"default:false"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Review) TableName() string {
	return "reviews"
}

type RatingAggregate struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantId  *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DishId        *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AverageRating float64    `gorm:"default:0"`
	TotalReviews  int        `gorm:"default:0"`
}

func (RatingAggregate) TableName() string {
	return "rating_aggregates"
}
