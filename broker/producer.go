package broker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"taskboard-api/taskboard/models"
)

// Publisher is what the services need to emit events.
type Publisher interface {
	PublishEvent(subject string, event *models.Event) error
}

// Conn is the subset of *nats.Conn the producer uses.
type Conn interface {
	Publish(subject string, data []byte) error
	Drain() error
	Close()
}

type Producer struct {
	conn Conn
	log  *logrus.Logger
}

var _ Publisher = (*Producer)(nil)

func NewProducer(conn Conn, log *logrus.Logger) *Producer {
	return &Producer{conn: conn, log: log}
}

// InitProducer connects to the NATS server at url.
func InitProducer(url string, log *logrus.Logger) (*Producer, error) {
	conn, err := nats.Connect(url,
		nats.Name("taskboard"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("NATS connection lost")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("NATS connection restored")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}

	log.WithField("url", url).Info("NATS producer initialized")
	return NewProducer(conn, log), nil
}

func (p *Producer) PublishEvent(subject string, event *models.Event) error {
	if p == nil || p.conn == nil {
		return ErrProducerNotInitialized
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	p.log.WithFields(logrus.Fields{
		"subject":  subject,
		"event":    event.Event,
		"event_id": event.ID,
	}).Debug("Published event")
	return nil
}

// Close drains pending messages before closing the connection.
func (p *Producer) Close() {
	if p == nil || p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.log.WithError(err).Warn("Failed to drain NATS connection")
		p.conn.Close()
	}
}
