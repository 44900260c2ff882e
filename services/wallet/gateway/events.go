package gateway

import (
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/pkg/nsq"
)

// EventsGateway publishes wallet lifecycle events to NSQ. A nil producer
// disables publishing, for deployments without a message bus.
type EventsGateway struct {
	producer *nsq.Producer
	topic    string
}

// NewEventsGateway creates an events gateway over an NSQ producer
func NewEventsGateway(producer *nsq.Producer, topic string) *EventsGateway {
	return &EventsGateway{
		producer: producer,
		topic:    topic,
	}
}

// DepositCompleted announces a settled deposit. Publishing is
// best-effort: the deposit is already settled, so a bus failure is
// logged and swallowed.
func (g *EventsGateway) DepositCompleted(event *models.DepositCompletedEvent) error {
	if g.producer == nil {
		return nil
	}

	if err := g.producer.Publish(g.topic, event); err != nil {
		logger.Warn("failed to publish deposit completed event",
			logger.String("transaction_id", event.TransactionID),
			logger.Err(err))
	}
	return nil
}
