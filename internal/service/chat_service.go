package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/constant"
	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/entity"
	"github.com/sajjad006/ardine-backend/internal/pkg/logger"
	"github.com/sajjad006/ardine-backend/internal/repository/contract"
	"github.com/sajjad006/ardine-backend/internal/repository/memory"
	"github.com/sajjad006/ardine-backend/internal/repository/specification"
	"github.com/sajjad006/ardine-backend/internal/repository/unitofwork"
	"github.com/sajjad006/ardine-backend/pkg/waiter"
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo contract.ChatSessionRepository
	locker      *memory.SessionLocker
	retriever   *waiter.Retriever
	policy      *waiter.Policy
	executor    *waiter.Executor
	log         logger.ILogger
	topK        int
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo contract.ChatSessionRepository,
	locker *memory.SessionLocker,
	retriever *waiter.Retriever,
	policy *waiter.Policy,
	executor *waiter.Executor,
	log logger.ILogger,
	topK int,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
		locker:      locker,
		retriever:   retriever,
		policy:      policy,
		executor:    executor,
		log:         log,
		topK:        topK,
	}
}

// Chat runs one full turn: load session, retrieve menu context, let the
// model decide, execute the intent, then persist history and cart in one
// read-modify-write cycle. If retrieval, generation or execution fails,
// nothing is persisted for the turn.
func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	restaurantId, err := uuid.Parse(req.RestaurantId)
	if err != nil {
		return nil, fmt.Errorf("parse restaurant id: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.ByID{ID: restaurantId})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	sessionId, supplied, err := resolveSessionId(req.SessionId)
	if err != nil {
		return nil, err
	}

	// Two concurrent turns on the same session would race on the
	// read-modify-write below.
	s.locker.Lock(sessionId.String())
	defer s.locker.Unlock(sessionId.String())

	session, isNew, err := s.loadOrCreateSession(ctx, sessionId, restaurantId, supplied)
	if err != nil {
		return nil, err
	}

	contextItems, err := s.retriever.Retrieve(ctx, restaurantId, req.UserQuery, s.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieve menu items: %w", err)
	}

	menuContext := waiter.BuildMenuContext(contextItems)

	decision, err := s.policy.Decide(ctx, restaurant.Name, menuContext, req.UserQuery, session.History, session.Cart)
	if err != nil {
		return nil, fmt.Errorf("dialogue policy: %w", err)
	}

	reply, newCart, err := s.executor.Execute(ctx, restaurantId, decision, contextItems, session.Cart)
	if err != nil {
		return nil, fmt.Errorf("execute intent: %w", err)
	}

	session.Cart = newCart
	session.History = append(session.History,
		entity.Turn{
			Role:    constant.ChatRoleUser,
			Content: req.UserQuery,
		},
		entity.Turn{
			Role:    constant.ChatRoleAssistant,
			Content: reply,
			Intent:  decision.Intent,
			Context: turnContextItems(contextItems),
		},
	)

	now := time.Now()
	session.UpdatedAt = &now

	if isNew {
		err = s.sessionRepo.Create(ctx, session)
	} else {
		err = s.sessionRepo.Save(ctx, session)
	}
	if err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return s.buildResponse(session, decision.Intent, reply, contextItems), nil
}

func resolveSessionId(raw string) (uuid.UUID, bool, error) {
	if raw == "" {
		return uuid.New(), false, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("parse session id: %w", err)
	}
	return id, true, nil
}

// loadOrCreateSession never errors on an unknown session id: the client
// keeps its token and gets a fresh session under it. That fallback is
// logged separately from true first-contact creation since it can mask
// client bugs.
func (s *chatService) loadOrCreateSession(ctx context.Context, sessionId, restaurantId uuid.UUID, supplied bool) (*entity.ChatSession, bool, error) {
	if supplied {
		session, err := s.sessionRepo.Get(ctx, sessionId)
		if err != nil {
			return nil, false, fmt.Errorf("load session: %w", err)
		}
		if session != nil {
			return session, false, nil
		}

		s.log.Warn("ChatService", "Supplied session id not found, starting a fresh session", map[string]interface{}{
			"session_id":    sessionId.String(),
			"restaurant_id": restaurantId.String(),
		})
	} else {
		s.log.Info("ChatService", "New chat session started", map[string]interface{}{
			"session_id":    sessionId.String(),
			"restaurant_id": restaurantId.String(),
		})
	}

	return &entity.ChatSession{
		Id:           sessionId,
		RestaurantId: restaurantId,
		History:      []entity.Turn{},
		Cart:         []entity.CartEntry{},
		CreatedAt:    time.Now(),
	}, true, nil
}

func (s *chatService) buildResponse(session *entity.ChatSession, intent, reply string, contextItems []waiter.RetrievedItem) *dto.ChatResponse {
	items := make([]dto.ContextItemDTO, 0, len(contextItems))
	for _, item := range contextItems {
		items = append(items, dto.ContextItemDTO{
			DishId:      item.DishId.String(),
			Name:        item.Name,
			Price:       item.Price,
			Calories:    item.Calories,
			Category:    item.Category,
			Tags:        item.Tags,
			Ingredients: item.Ingredients,
			ChefSpecial: item.ChefSpecial,
			ImageURL:    item.ImageURL,
			VideoURL:    item.VideoURL,
			Model3DURL:  item.Model3DURL,
		})
	}

	cart := make([]dto.CartEntryDTO, 0, len(session.Cart))
	for _, entry := range session.Cart {
		cart = append(cart, dto.CartEntryDTO{
			DishId: entry.DishId.String(),
			Name:   entry.Name,
			Price:  entry.Price,
			Qty:    entry.Qty,
		})
	}

	history := session.History
	if len(history) > constant.HistoryWindow {
		history = history[len(history)-constant.HistoryWindow:]
	}
	turns := make([]dto.TurnDTO, 0, len(history))
	for _, turn := range history {
		turns = append(turns, dto.TurnDTO{
			Role:    turn.Role,
			Content: turn.Content,
			Intent:  turn.Intent,
		})
	}

	return &dto.ChatResponse{
		SessionId:    session.Id.String(),
		Intent:       intent,
		Reply:        reply,
		ContextItems: items,
		Cart:         cart,
		History:      turns,
	}
}

func turnContextItems(contextItems []waiter.RetrievedItem) []entity.TurnContextItem {
	if len(contextItems) == 0 {
		return nil
	}
	items := make([]entity.TurnContextItem, 0, len(contextItems))
	for _, item := range contextItems {
		items = append(items, entity.TurnContextItem{
			Name:     item.Name,
			Price:    item.Price,
			Calories: item.Calories,
			Tags:     item.Tags,
		})
	}
	return items
}
