package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type engagementEventsHandler struct {
	consumer *Consumer
}

func (h *engagementEventsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *engagementEventsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *engagementEventsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleEventMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "notification.delivery.kafka.consumer.ConsumeEngagementEvents: Failed to process event message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
