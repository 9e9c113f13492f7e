package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Dish struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name            string         `gorm:"type:varchar(200);not null"`
	Description     string         `gorm:"type:text"`
	Price           float64        `gorm:"type:numeric(8,2);not null"`
	Calories        int            `gorm:"default:0"`
	Category        string         `gorm:"type:varchar(100)"`
	Tags            datatypes.JSON `gorm:"type:jsonb"`
	Ingredients     datatypes.JSON `gorm:"type:jsonb"`
	ChefSpecial     bool           `gorm:"default:false"`
	ImageURL        string         `gorm:"type:text"`
	VideoURL        string         `gorm:"type:text"`
	Model3DURL      string         `gorm:"type:text"`
	IsActive        bool           `gorm:"default:true"`
	GstRate         float64        `gorm:"type:numeric(5,2);default:5.0"`
	DiscountPercent float64        `gorm:"type:numeric(5,2);default:0.0"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Dish) TableName() string {
	return "dishes"
}
