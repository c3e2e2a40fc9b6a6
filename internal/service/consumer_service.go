// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"margadarsaka-be/internal/pkg/logger"
	"margadarsaka-be/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the usage topic and records each event in the
// structured log. Delivery is at-most-once; nothing replays.
type consumerService struct {
	pubSub *gochannel.GoChannel
	log    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		log:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicUsage)
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
	var evt events.UsageEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.log.Warn("consumer", "unreadable usage event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.log.Info("consumer", "usage event", map[string]interface{}{
		"kind":        evt.Kind,
		"user_id":     evt.UserID,
		"session_id":  evt.SessionID,
		"model":       evt.Model,
		"prompt_size": evt.PromptSize,
		"occurred_at": evt.OccurredAt,
	})
	msg.Ack()
}
