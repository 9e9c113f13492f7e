package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/sajjad006/ardine-backend/internal/dto"
	"github.com/sajjad006/ardine-backend/internal/pkg/logger"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	indexer   IIndexerService
	log       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	indexer IIndexerService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		indexer:   indexer,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IndexDishMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("ConsumerService", "Failed to unmarshal index message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	dishId, err := uuid.Parse(payload.DishId)
	if err != nil {
		cs.log.Error("ConsumerService", "Index message carried a malformed dish id", map[string]interface{}{
			"dish_id": payload.DishId,
			"error":   err.Error(),
		})
		msg.Ack()
		return
	}

	if payload.Deleted {
		err = cs.indexer.RemoveDish(ctx, dishId)
	} else {
		err = cs.indexer.IndexDish(ctx, dishId)
	}

	if err != nil {
		cs.log.Error("ConsumerService", "Dish indexing failed", map[string]interface{}{
			"dish_id": payload.DishId,
			"deleted": payload.Deleted,
			"error":   err.Error(),
		})
		msg.Nack() // Retriable: embedding provider or DB hiccup
		return
	}

	cs.log.Info("ConsumerService", "Dish index updated", map[string]interface{}{
		"dish_id": payload.DishId,
		"deleted": payload.Deleted,
	})
	msg.Ack()
}
