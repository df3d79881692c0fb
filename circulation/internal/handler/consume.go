package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// SweepRequest asks for an on-demand fine sweep.
type SweepRequest struct {
	RequestedBy string    `json:"requestedBy"`
	RequestedAt time.Time `json:"requestedAt"`
}

type sweep func(ctx context.Context) (model.SweepResult, error)

// Consumer runs a sweep for every SweepRequest read from the trigger topic.
type Consumer struct {
	sweep   sweep
	timeout time.Duration
	log     *zap.Logger
}

func NewConsumer(sweep sweep, timeout time.Duration, log *zap.Logger) *Consumer {
	return &Consumer{
		sweep:   sweep,
		timeout: timeout,
		log:     log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			consumer.handle(session.Context(), message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle never fails the message: a sweep is idempotent and the next one catches up.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) {
	var req SweepRequest
	if err := json.Unmarshal(message.Value, &req); err != nil {
		consumer.log.Error("bad sweep request", zap.Error(err))
		return
	}
	if consumer.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, consumer.timeout)
		defer cancel()
	}
	res, err := consumer.sweep(ctx)
	if err != nil {
		consumer.log.Error("sweep", zap.String("requestedBy", req.RequestedBy), zap.Error(err))
		return
	}
	consumer.log.Debug("sweep claimed",
		zap.String("requestedBy", req.RequestedBy),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.String("topic", message.Topic))
}
