package events

// Topic names for published events.
const TopicArrangementAccepted = "arrangement_accepted"

// Publisher sends domain events to downstream consumers (communications,
// payment processing).
type Publisher interface {
	Publish(topic string, event any) error
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(topic string, event any) error { return nil }
