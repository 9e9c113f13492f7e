package mapper

import (
	"encoding/json"
	"time"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/model"

	"gorm.io/datatypes"
)

type DishMapper struct{}

func NewDishMapper() *DishMapper {
	return &DishMapper{}
}

func (m *DishMapper) ToEntity(d *model.Dish) *entity.Dish {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Dish{
		Id:              d.Id,
		RestaurantId:    d.RestaurantId,
		Name:            d.Name,
		Description:     d.Description,
		Price:           d.Price,
		Calories:        d.Calories,
		Category:        d.Category,
		Tags:            jsonToStrings(d.Tags),
		Ingredients:     jsonToStrings(d.Ingredients),
		ChefSpecial:     d.ChefSpecial,
		ImageURL:        d.ImageURL,
		VideoURL:        d.VideoURL,
		Model3DURL:      d.Model3DURL,
		IsActive:        d.IsActive,
		GstRate:         d.GstRate,
		DiscountPercent: d.DiscountPercent,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *DishMapper) ToModel(d *entity.Dish) *model.Dish {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Dish{
		Id:              d.Id,
		RestaurantId:    d.RestaurantId,
		Name:            d.Name,
		Description:     d.Description,
		Price:           d.Price,
		Calories:        d.Calories,
		Category:        d.Category,
		Tags:            stringsToJSON(d.Tags),
		Ingredients:     stringsToJSON(d.Ingredients),
		ChefSpecial:     d.ChefSpecial,
		ImageURL:        d.ImageURL,
		VideoURL:        d.VideoURL,
		Model3DURL:      d.Model3DURL,
		IsActive:        d.IsActive,
		GstRate:         d.GstRate,
		DiscountPercent: d.DiscountPercent,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func jsonToStrings(blob datatypes.JSON) []string {
	if len(blob) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(blob, &values); err != nil {
		return nil
	}
	return values
}

func stringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	blob, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(blob)
}
