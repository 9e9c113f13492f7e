package waiter

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"
	"github.com/sajjad006/ardine-backend/pkg/embedding"
)

type fakeEmbedder struct {
	calls int
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls++
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

type fakeEmbeddingRepo struct {
	results          []*entity.DishEmbedding
	lastRestaurantId uuid.UUID
	searchCalls      int
}

func (f *fakeEmbeddingRepo) Create(ctx context.Context, e *entity.DishEmbedding) error        { return nil }
func (f *fakeEmbeddingRepo) CreateBulk(ctx context.Context, e []*entity.DishEmbedding) error  { return nil }
func (f *fakeEmbeddingRepo) DeleteByDishId(ctx context.Context, dishId uuid.UUID) error       { return nil }
func (f *fakeEmbeddingRepo) DeleteAll(ctx context.Context) error                              { return nil }
func (f *fakeEmbeddingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DishEmbedding, error) {
	return nil, nil
}
func (f *fakeEmbeddingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (f *fakeEmbeddingRepo) SearchSimilar(ctx context.Context, emb []float32, limit int, restaurantId uuid.UUID) ([]*entity.DishEmbedding, error) {
	f.searchCalls++
	f.lastRestaurantId = restaurantId
	return f.results, nil
}

func TestRetrieve_BlankQuerySkipsIndex(t *testing.T) {
	embedder := &fakeEmbedder{}
	repo := &fakeEmbeddingRepo{}
	retriever := NewRetriever(embedder, repo, nopLogger{})

	for _, query := range []string{"", "   ", "\n\t"} {
		items, err := retriever.Retrieve(context.Background(), uuid.New(), query, 5)
		require.NoError(t, err)
		assert.Nil(t, items)
	}

	assert.Zero(t, embedder.calls)
	assert.Zero(t, repo.searchCalls)
}

func TestRetrieve_ScopesToRestaurant(t *testing.T) {
	embedder := &fakeEmbedder{}
	repo := &fakeEmbeddingRepo{}
	retriever := NewRetriever(embedder, repo, nopLogger{})
	restaurantId := uuid.New()

	_, err := retriever.Retrieve(context.Background(), restaurantId, "something spicy", 5)
	require.NoError(t, err)

	assert.Equal(t, restaurantId, repo.lastRestaurantId)
}

func TestRetrieve_DefensiveMetadataDefaults(t *testing.T) {
	dishId := uuid.New()
	repo := &fakeEmbeddingRepo{
		results: []*entity.DishEmbedding{
			{
				DishId: dishId,
				Metadata: map[string]interface{}{
					"name": "Paneer Tikka",
					// price/calories/tags absent, calories as wrong type elsewhere
				},
			},
			{
				DishId: uuid.New(),
				Metadata: map[string]interface{}{
					"name":         "Chicken Soup",
					"price":        120.0,
					"calories":     180.0, // JSON round-trip float
					"tags":         "non-veg, light",
					"chef_special": true,
				},
			},
		},
	}
	retriever := NewRetriever(&fakeEmbedder{}, repo, nopLogger{})

	items, err := retriever.Retrieve(context.Background(), uuid.New(), "soup", 5)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, dishId, items[0].DishId)
	assert.Equal(t, "Paneer Tikka", items[0].Name)
	assert.Zero(t, items[0].Price)
	assert.Zero(t, items[0].Calories)
	assert.Empty(t, items[0].Tags)
	assert.False(t, items[0].ChefSpecial)

	assert.Equal(t, 120.0, items[1].Price)
	assert.Equal(t, 180, items[1].Calories)
	assert.Equal(t, "non-veg, light", items[1].Tags)
	assert.True(t, items[1].ChefSpecial)
}
