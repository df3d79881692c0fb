// Package events publishes circulation facts after their transaction commits.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
)

type Type string

const (
	LoanCheckedOut Type = "loan.checked_out"
	LoanCheckedIn  Type = "loan.checked_in"
	FinesPaid      Type = "fines.paid"
	FinesSwept     Type = "fines.swept"
)

type Event struct {
	ID         uuid.UUID        `json:"id"`
	Type       Type             `json:"type"`
	OccurredAt time.Time        `json:"occurredAt"`
	ISBN       string           `json:"isbn,omitempty"`
	CardID     string           `json:"cardId,omitempty"`
	LoanID     int              `json:"loanId,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Inserted   int              `json:"inserted,omitempty"`
	Updated    int              `json:"updated,omitempty"`
}

func New(typ Type, at time.Time) Event {
	return Event{ID: uuid.New(), Type: typ, OccurredAt: at.UTC()}
}

// key keeps events of one borrower (or item) ordered within a partition.
func (e Event) key() string {
	if e.CardID != "" {
		return e.CardID
	}
	return e.ISBN
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

// Nop drops every event; used when no broker is configured.
func Nop() Publisher { return nopPublisher{} }

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		cb:       cb,
		log:      log.Named("events"),
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(e.key()),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "SendMessage")
		}
		p.log.Debug("published", zap.String("type", string(e.Type)),
			zap.Int32("partition", partition), zap.Int64("offset", offset))
		return nil
	})
}
