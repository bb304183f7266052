package kafka

const (
	// TopicEngagementEvents carries like/moderation/payment notifications.
	TopicEngagementEvents = "engagement.notifications"

	ConsumerGroupEngagementEvents = "engagement-consumer-notifications"
)
