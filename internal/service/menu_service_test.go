package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"
)

type fakeDishRepo struct {
	dishes map[uuid.UUID]*entity.Dish
}

func newFakeDishRepo(dishes ...*entity.Dish) *fakeDishRepo {
	repo := &fakeDishRepo{dishes: map[uuid.UUID]*entity.Dish{}}
	for _, d := range dishes {
		copied := *d
		repo.dishes[d.Id] = &copied
	}
	return repo
}

func (f *fakeDishRepo) Create(ctx context.Context, dish *entity.Dish) error {
	copied := *dish
	f.dishes[dish.Id] = &copied
	return nil
}

func (f *fakeDishRepo) Update(ctx context.Context, dish *entity.Dish) error {
	copied := *dish
	f.dishes[dish.Id] = &copied
	return nil
}

func (f *fakeDishRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.dishes, id)
	return nil
}

func (f *fakeDishRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Dish, error) {
	var byID *specification.ByID
	var byRestaurant *specification.ByRestaurantId
	var byName *specification.ByNameInsensitive
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			byID = &s
		case specification.ByRestaurantId:
			byRestaurant = &s
		case specification.ByNameInsensitive:
			byName = &s
		}
	}

	if byID != nil {
		if dish, ok := f.dishes[byID.ID]; ok {
			copied := *dish
			return &copied, nil
		}
		return nil, nil
	}

	for _, dish := range f.dishes {
		if byRestaurant != nil && dish.RestaurantId != byRestaurant.RestaurantId {
			continue
		}
		if byName != nil && !strings.EqualFold(dish.Name, byName.Name) {
			continue
		}
		copied := *dish
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeDishRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Dish, error) {
	out := make([]*entity.Dish, 0, len(f.dishes))
	for _, dish := range f.dishes {
		copied := *dish
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeDishRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.dishes)), nil
}

type fakePublisher struct {
	published [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.published = append(f.published, payload)
	return nil
}

func newMenuHarness(dishes ...*entity.Dish) (IMenuService, *fakeDishRepo) {
	dishRepo := newFakeDishRepo(dishes...)
	uow := &fakeUnitOfWork{dishRepo: dishRepo}
	svc := NewMenuService(&fakeUowFactory{uow: uow}, &fakePublisher{}, nopLogger{})
	return svc, dishRepo
}

func specialDish() *entity.Dish {
	return &entity.Dish{
		Id:           uuid.New(),
		RestaurantId: uuid.New(),
		Name:         "Paneer Tikka",
		Price:        150,
		Calories:     280,
		ChefSpecial:  true,
		IsActive:     true,
	}
}

func TestUpdateDish_OmittedChefSpecialSurvives(t *testing.T) {
	dish := specialDish()
	svc, repo := newMenuHarness(dish)

	res, err := svc.UpdateDish(context.Background(), dish.Id, &dto.UpdateDishRequest{Price: 175})
	require.NoError(t, err)

	assert.Equal(t, 175.0, res.Price)
	assert.True(t, res.ChefSpecial)
	assert.True(t, repo.dishes[dish.Id].ChefSpecial)
}

func TestUpdateDish_ExplicitChefSpecialFalseClears(t *testing.T) {
	dish := specialDish()
	svc, repo := newMenuHarness(dish)

	off := false
	res, err := svc.UpdateDish(context.Background(), dish.Id, &dto.UpdateDishRequest{ChefSpecial: &off})
	require.NoError(t, err)

	assert.False(t, res.ChefSpecial)
	assert.False(t, repo.dishes[dish.Id].ChefSpecial)
}

func TestUpdateDish_RenameEvictsOldNameFromCache(t *testing.T) {
	dish := specialDish()
	svc, _ := newMenuHarness(dish)

	// Warm the cache under the old name.
	cached, err := svc.GetDishByName(context.Background(), dish.RestaurantId, "paneer tikka")
	require.NoError(t, err)
	require.NotNil(t, cached)

	_, err = svc.UpdateDish(context.Background(), dish.Id, &dto.UpdateDishRequest{Name: "Paneer Tikka Royale"})
	require.NoError(t, err)

	// The old name no longer resolves, cached or otherwise.
	stale, err := svc.GetDishByName(context.Background(), dish.RestaurantId, "paneer tikka")
	require.NoError(t, err)
	assert.Nil(t, stale)

	renamed, err := svc.GetDishByName(context.Background(), dish.RestaurantId, "paneer tikka royale")
	require.NoError(t, err)
	require.NotNil(t, renamed)
	assert.Equal(t, "Paneer Tikka Royale", renamed.Name)
}

func TestUpdateDish_UnknownDish(t *testing.T) {
	svc, _ := newMenuHarness()

	_, err := svc.UpdateDish(context.Background(), uuid.New(), &dto.UpdateDishRequest{Price: 10})
	assert.ErrorIs(t, err, ErrDishNotFound)
}
