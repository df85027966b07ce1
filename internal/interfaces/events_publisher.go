package interfaces

// EventPublisher pushes outcome events to an external broker.
type EventPublisher interface {
	Publish(topic string, event any) error
}
