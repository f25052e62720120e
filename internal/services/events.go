package services

import "log"

// EventPublisher is the slice of the message-queue client the services use.
// A nil publisher disables events.
type EventPublisher interface {
	PublishAnnotationEvent(event string, payload map[string]interface{}) error
}

// publishEvent sends an event best-effort: a broker failure is logged, never
// surfaced to the request that triggered it.
func publishEvent(events EventPublisher, event string, payload map[string]interface{}) {
	if events == nil {
		return
	}
	if err := events.PublishAnnotationEvent(event, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", event, err)
	}
}
