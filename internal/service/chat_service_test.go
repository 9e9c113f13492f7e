package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/repository/contract"
	"github.com/sajjad006/ardine-backend/internal/repository/memory"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"
	"github.com/sajjad006/ardine-backend/internal/repository/unitofwork"
	"github.com/sajjad006/ardine-backend/pkg/embedding"
	"github.com/sajjad006/ardine-backend/pkg/llm"
	"github.com/sajjad006/ardine-backend/pkg/waiter"
)

// --- Fakes ---

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeRestaurantRepo struct {
	restaurants map[uuid.UUID]*entity.Restaurant
}

func (f *fakeRestaurantRepo) Create(ctx context.Context, r *entity.Restaurant) error { return nil }
func (f *fakeRestaurantRepo) Update(ctx context.Context, r *entity.Restaurant) error { return nil }
func (f *fakeRestaurantRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }
func (f *fakeRestaurantRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Restaurant, error) {
	return nil, nil
}
func (f *fakeRestaurantRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (f *fakeRestaurantRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Restaurant, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			return f.restaurants[byID.ID], nil
		}
	}
	return nil, nil
}

type fakeUnitOfWork struct {
	restaurantRepo *fakeRestaurantRepo
	dishRepo       contract.DishRepository
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) RestaurantRepository() contract.RestaurantRepository { return f.restaurantRepo }
func (f *fakeUnitOfWork) DishRepository() contract.DishRepository             { return f.dishRepo }
func (f *fakeUnitOfWork) OrderRepository() contract.OrderRepository           { return nil }
func (f *fakeUnitOfWork) DishEmbeddingRepository() contract.DishEmbeddingRepository {
	return nil
}
func (f *fakeUnitOfWork) ReviewRepository() contract.ReviewRepository           { return nil }
func (f *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository { return nil }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.ChatSession
	creates  int
	saves    int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[uuid.UUID]*entity.ChatSession{}}
}

func (f *fakeSessionRepo) Get(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error) {
	return f.sessions[id], nil
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *entity.ChatSession) error {
	f.creates++
	f.sessions[s.Id] = s
	return nil
}

func (f *fakeSessionRepo) Save(ctx context.Context, s *entity.ChatSession) error {
	f.saves++
	f.sessions[s.Id] = s
	return nil
}

type fakeEmbedder struct{}

func (fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.5, 0.5}},
	}, nil
}

type fakeEmbeddingRepo struct {
	results []*entity.DishEmbedding
}

func (f *fakeEmbeddingRepo) Create(ctx context.Context, e *entity.DishEmbedding) error       { return nil }
func (f *fakeEmbeddingRepo) CreateBulk(ctx context.Context, e []*entity.DishEmbedding) error { return nil }
func (f *fakeEmbeddingRepo) DeleteByDishId(ctx context.Context, dishId uuid.UUID) error      { return nil }
func (f *fakeEmbeddingRepo) DeleteAll(ctx context.Context) error                             { return nil }
func (f *fakeEmbeddingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DishEmbedding, error) {
	return nil, nil
}
func (f *fakeEmbeddingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (f *fakeEmbeddingRepo) SearchSimilar(ctx context.Context, emb []float32, limit int, restaurantId uuid.UUID) ([]*entity.DishEmbedding, error) {
	return f.results, nil
}

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.response, f.err
}

type fakeMenuStore struct{}

func (fakeMenuStore) GetDishByName(ctx context.Context, restaurantId uuid.UUID, name string) (*entity.Dish, error) {
	return nil, nil
}

type fakeOrderStore struct {
	created []*entity.Order
}

func (f *fakeOrderStore) CreateOrder(ctx context.Context, order *entity.Order) error {
	order.Id = uuid.New()
	f.created = append(f.created, order)
	return nil
}

// --- Harness ---

type chatHarness struct {
	service     IChatService
	sessionRepo *fakeSessionRepo
	orderStore  *fakeOrderStore
	restaurant  *entity.Restaurant
}

func newChatHarness(t *testing.T, llmResponse string, llmErr error, searchResults []*entity.DishEmbedding) *chatHarness {
	t.Helper()

	restaurant := &entity.Restaurant{Id: uuid.New(), Name: "Spice Villa"}
	restaurantRepo := &fakeRestaurantRepo{
		restaurants: map[uuid.UUID]*entity.Restaurant{restaurant.Id: restaurant},
	}
	sessionRepo := newFakeSessionRepo()
	orderStore := &fakeOrderStore{}

	retriever := waiter.NewRetriever(fakeEmbedder{}, &fakeEmbeddingRepo{results: searchResults}, nopLogger{})
	policy := waiter.NewPolicy(&fakeLLM{response: llmResponse, err: llmErr}, nopLogger{})
	executor := waiter.NewExecutor(fakeMenuStore{}, orderStore, nopLogger{})

	svc := NewChatService(
		&fakeUowFactory{uow: &fakeUnitOfWork{restaurantRepo: restaurantRepo}},
		sessionRepo,
		memory.NewSessionLocker(),
		retriever,
		policy,
		executor,
		nopLogger{},
		5,
	)

	return &chatHarness{
		service:     svc,
		sessionRepo: sessionRepo,
		orderStore:  orderStore,
		restaurant:  restaurant,
	}
}

func dishEmbedding(name string, price float64) *entity.DishEmbedding {
	return &entity.DishEmbedding{
		DishId: uuid.New(),
		Metadata: map[string]interface{}{
			"name":  name,
			"price": price,
		},
	}
}

// --- Tests ---

func TestChat_FirstContactMintsSession(t *testing.T) {
	h := newChatHarness(t,
		`{"intent": "recommend_dish", "reply": "Try the Paneer Tikka!", "items": []}`,
		nil,
		[]*entity.DishEmbedding{dishEmbedding("Paneer Tikka", 150)},
	)

	res, err := h.service.Chat(context.Background(), &dto.ChatRequest{
		RestaurantId: h.restaurant.Id.String(),
		UserQuery:    "something spicy under 200",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionId)
	assert.Equal(t, "recommend_dish", res.Intent)
	assert.Equal(t, "Try the Paneer Tikka!", res.Reply)
	require.Len(t, res.ContextItems, 1)
	assert.Equal(t, "Paneer Tikka", res.ContextItems[0].Name)
	assert.Equal(t, 1, h.sessionRepo.creates)
	assert.Equal(t, 0, h.sessionRepo.saves)
}

func TestChat_UnknownRestaurant(t *testing.T) {
	h := newChatHarness(t, `{"intent": "chat", "reply": "hi", "items": []}`, nil, nil)

	_, err := h.service.Chat(context.Background(), &dto.ChatRequest{
		RestaurantId: uuid.New().String(),
		UserQuery:    "hello",
	})

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	assert.Empty(t, h.sessionRepo.sessions)
}

func TestChat_ExactlyTwoHistoryEntriesPerTurn(t *testing.T) {
	h := newChatHarness(t, `{"intent": "chat", "reply": "hello there", "items": []}`, nil, nil)

	res, err := h.service.Chat(context.Background(), &dto.ChatRequest{
		RestaurantId: h.restaurant.Id.String(),
		UserQuery:    "hi",
	})
	require.NoError(t, err)

	sessionId := uuid.MustParse(res.SessionId)
	session := h.sessionRepo.sessions[sessionId]
	require.NotNil(t, session)
	require.Len(t, session.History, 2)
	assert.Equal(t, "user", session.History[0].Role)
	assert.Equal(t, "hi", session.History[0].Content)
	assert.Equal(t, "assistant", session.History[1].Role)
	assert.Equal(t, "hello there", session.History[1].Content)
	assert.Equal(t, "chat", session.History[1].Intent)

	// Second turn on the same session appends two more.
	_, err = h.service.Chat(context.Background(), &dto.ChatRequest{
		RestaurantId: h.restaurant.Id.String(),
		UserQuery:    "and again",
		SessionId:    res.SessionId,
	})
	require.NoError(t, err)
	assert.Len(t, h.sessionRepo.sessions[sessionId].History, 4)
	assert.Equal(t, 1, h.sessionRepo.creates)
	assert.Equal(t, 1, h.sessionRepo.saves)
}

func TestChat_UnknownSessionIdFallsBackToFresh(t *testing.T) {
	h := newChatHarness(t, `{"intent": "chat", "reply": "hi", "items": []}`, nil, nil)
	staleId := uuid.New()

	res, err := h.service.Chat(context.Background(), &dto.ChatRequest{
		RestaurantId: h.restaurant.Id.String(),
		UserQuery:    "hello again",
		SessionId:    staleId.String(),
	})
	require.NoError(t, err)

	// The client keeps its token; a fresh session is created under it.
	assert.Equal(t, staleId.String(), res.SessionId)
	assert.Equal(t, 1, h.sessionRepo.creates)
}

func TestChat_HistoryResponseTruncatedToWindow(t *testing.T) {
	h := newChatHarness(t, `{"intent": "chat", "reply": "ok", "items": []}`, nil, nil)

	var sessionId string
	for i := 0; i < 4; i++ {
		res, err := h.service.Chat(context.Background(), &dto.ChatRequest{
			RestaurantId: h.restaurant.Id.String(),
			UserQuery:    "turn",
			SessionId:    sessionId,
		})
		require.NoError(t, err)
		sessionId = res.SessionId

		if i == 3 {
			// 8 turns persisted, only the trailing 5 returned.
			assert.Len(t, res.History, 5)
		}
	}

	session := h.sessionRepo.sessions[uuid.MustParse(sessionId)]
	assert.Len(t, session.History, 8)
}

func TestChat_LLMFailureCommitsNothing(t *testing.T) {
	h := newChatHarness(t, "", errors.New("upstream timeout"), nil)

	_, err := h.service.Chat(context.Background(), &dto.ChatRequest{
		RestaurantId: h.restaurant.Id.String(),
		UserQuery:    "hello",
	})

	assert.Error(t, err)
	assert.Empty(t, h.sessionRepo.sessions)
	assert.Equal(t, 0, h.sessionRepo.creates)
}

func TestChat_ConfirmOrderFlow(t *testing.T) {
	h := newChatHarness(t,
		`{"intent": "confirm_order", "reply": "Placing it!", "items": []}`,
		nil,
		nil,
	)

	// Seed a session with a cart.
	sessionId := uuid.New()
	h.sessionRepo.sessions[sessionId] = &entity.ChatSession{
		Id:           sessionId,
		RestaurantId: h.restaurant.Id,
		History:      []entity.Turn{},
		Cart: []entity.CartEntry{
			{DishId: uuid.New(), Name: "Paneer Tikka", Price: 150, Qty: 1},
		},
	}

	res, err := h.service.Chat(context.Background(), &dto.ChatRequest{
		RestaurantId: h.restaurant.Id.String(),
		UserQuery:    "that's all, place my order",
		SessionId:    sessionId.String(),
	})
	require.NoError(t, err)

	require.Len(t, h.orderStore.created, 1)
	assert.Equal(t, 150.0, h.orderStore.created[0].Total)
	assert.Contains(t, res.Reply, "150.00")
	assert.Empty(t, res.Cart)
	assert.Empty(t, h.sessionRepo.sessions[sessionId].Cart)
}
