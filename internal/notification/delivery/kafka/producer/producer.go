package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"engagement-srv/internal/notification"
	kafkaDelivery "engagement-srv/internal/notification/delivery/kafka"
)

// PublishEvent publishes an engagement notification event. Messages are keyed
// by the recipient so each author's notifications stay ordered.
func (p *implProducer) PublishEvent(ctx context.Context, event notification.Event) error {
	msg := kafkaDelivery.EventMessage{
		Type:      event.Type,
		PostID:    event.PostID,
		AuthorID:  event.AuthorID,
		ActorID:   event.ActorID,
		Reason:    event.Reason,
		Amount:    event.Amount,
		CreatedAt: event.CreatedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	key := []byte(event.AuthorID)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	p.l.Debugf(ctx, "Published %s notification for post %s", event.Type, event.PostID)
	return nil
}
