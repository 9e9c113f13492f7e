package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Items        []OrderItem    `gorm:"foreignKey:OrderId"`
	Total        float64        `gorm:"type:numeric(10,2);not null"`
	Status       string         `gorm:"type:varchar(20);default:'pending'"`
	CustomerName string         `gorm:"type:varchar(200)"`
	TableLabel   string         `gorm:"type:varchar(50)"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderId  uuid.UUID `gorm:"type:uuid;not null;index"`
	DishId   uuid.UUID `gorm:"type:uuid;index"`
	Name     string    `gorm:"type:varchar(200);not null"` // snapshot name
	Price    float64   `gorm:"type:numeric(8,2);not null"` // snapshot price
	Quantity int       `gorm:"default:1"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
