package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"engagement-srv/internal/notification"
	kafkaDelivery "engagement-srv/internal/notification/delivery/kafka"
)

// ConsumeEngagementEvents starts consuming engagement notification events
func (c *Consumer) ConsumeEngagementEvents(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupEngagementEvents)
	if err != nil {
		return err
	}
	c.eventsGroup = group

	handler := &engagementEventsHandler{
		consumer: c,
	}

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicEngagementEvents}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicEngagementEvents)

	return nil
}

// handleEventMessage unmarshals one Kafka message and dispatches it.
func (c *Consumer) handleEventMessage(msg *sarama.ConsumerMessage) error {
	var m kafkaDelivery.EventMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		return err
	}

	return c.uc.Dispatch(context.Background(), notification.Event{
		Type:      m.Type,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		ActorID:   m.ActorID,
		Reason:    m.Reason,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	})
}
