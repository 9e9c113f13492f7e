package mapper

import (
	"time"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	items := make([]entity.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = entity.OrderItem{
			Id:       it.Id,
			OrderId:  it.OrderId,
			DishId:   it.DishId,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}

	return &entity.Order{
		Id:           o.Id,
		RestaurantId: o.RestaurantId,
		Items:        items,
		Total:        o.Total,
		Status:       o.Status,
		CustomerName: o.CustomerName,
		TableLabel:   o.TableLabel,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	items := make([]model.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = model.OrderItem{
			Id:       it.Id,
			OrderId:  it.OrderId,
			DishId:   it.DishId,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}

	return &model.Order{
		Id:           o.Id,
		RestaurantId: o.RestaurantId,
		Items:        items,
		Total:        o.Total,
		Status:       o.Status,
		CustomerName: o.CustomerName,
		TableLabel:   o.TableLabel,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}
