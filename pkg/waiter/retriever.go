package waiter

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/repository/contract"
	"github.com/sajjad006/ardine-backend/pkg/embedding"

	"github.com/sajjad006/ardine-backend/internal/pkg/logger"
)

// RetrievedItem is one semantic search hit with its metadata flattened
// into typed fields. Every field is defensively defaulted so formatting
// downstream never trips on a partially indexed document.
type RetrievedItem struct {
	DishId      uuid.UUID
	Name        string
	Price       float64
	Calories    int
	Category    string
	Tags        string
	Ingredients string
	ChefSpecial bool
	ImageURL    string
	VideoURL    string
	Model3DURL  string
}

// Retriever embeds the user's query and searches the restaurant-scoped
// dish index.
type Retriever struct {
	embedder   embedding.EmbeddingProvider
	embeddings contract.DishEmbeddingRepository
	log        logger.ILogger
}

func NewRetriever(embedder embedding.EmbeddingProvider, embeddings contract.DishEmbeddingRepository, log logger.ILogger) *Retriever {
	return &Retriever{
		embedder:   embedder,
		embeddings: embeddings,
		log:        log,
	}
}

// Retrieve returns at most k items in the index's relevance order.
// A blank query short-circuits to nil without touching the index.
func (r *Retriever) Retrieve(ctx context.Context, restaurantId uuid.UUID, query string, k int) ([]RetrievedItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	resp, err := r.embedder.Generate(query, embedding.TaskTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	matches, err := r.embeddings.SearchSimilar(ctx, resp.Embedding.Values, k, restaurantId)
	if err != nil {
		return nil, fmt.Errorf("search embeddings: %w", err)
	}

	items := make([]RetrievedItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, itemFromMetadata(m.DishId, m.Metadata))
	}

	r.log.Debug("Retriever", "Menu retrieval completed", map[string]interface{}{
		"restaurant_id": restaurantId.String(),
		"matches":       len(items),
	})

	return items, nil
}

func itemFromMetadata(dishId uuid.UUID, meta map[string]interface{}) RetrievedItem {
	return RetrievedItem{
		DishId:      dishId,
		Name:        metaString(meta, "name"),
		Price:       metaFloat(meta, "price"),
		Calories:    metaInt(meta, "calories"),
		Category:    metaString(meta, "category"),
		Tags:        metaString(meta, "tags"),
		Ingredients: metaString(meta, "ingredients"),
		ChefSpecial: metaBool(meta, "chef_special"),
		ImageURL:    metaString(meta, "image_url"),
		VideoURL:    metaString(meta, "video_url"),
		Model3DURL:  metaString(meta, "model_3d_url"),
	}
}

func metaString(meta map[string]interface{}, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

func metaFloat(meta map[string]interface{}, key string) float64 {
	switch v := meta[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func metaInt(meta map[string]interface{}, key string) int {
	// JSON round-trips put numbers back as float64
	switch v := meta[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func metaBool(meta map[string]interface{}, key string) bool {
	if v, ok := meta[key].(bool); ok {
		return v
	}
	return false
}
