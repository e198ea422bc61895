package service

import (
	"context"
	"encoding/json"

	"grocery-ai-be/internal/dto"
	"grocery-ai-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService wires list mutations to suggestion regeneration: every
// LIST_CHANGED event pushes the current item names into the coordinator.
// The coordinator itself stays free of any list subscription.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	suggestionService ISuggestionService
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	suggestionService ISuggestionService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		suggestionService: suggestionService,
		log:               log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.PublishListChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer_service", "Failed to unmarshal list changed event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.Action == "completed" {
		// A finished list does not need restocking ideas.
		msg.Ack()
		return
	}

	cs.log.Info("consumer_service", "List changed, regenerating suggestions", map[string]interface{}{
		"list_id": payload.ListId.String(),
		"action":  payload.Action,
		"items":   len(payload.ItemNames),
	})

	cs.suggestionService.Generate(payload.ItemNames)
	msg.Ack()
}
