package handler

import (
	"context"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func TestConsumer_Handle(t *testing.T) {
	t.Parallel()
	var calls int
	c := NewConsumer(func(ctx context.Context) (model.SweepResult, error) {
		calls++
		_, ok := ctx.Deadline()
		require.True(t, ok)
		return model.SweepResult{Updated: 2}, nil
	}, time.Minute, zap.NewNop())

	require.NoError(t, c.Setup(nil))
	c.handle(context.Background(), &sarama.ConsumerMessage{
		Topic: "circulation.sweep",
		Value: []byte(`{"requestedBy":"ops","requestedAt":"2024-01-20T00:00:00Z"}`),
	})
	require.Equal(t, 1, calls)

	c.handle(context.Background(), &sarama.ConsumerMessage{Topic: "circulation.sweep", Value: []byte(`not json`)})
	require.Equal(t, 1, calls)
}
