package usecase

import (
	"context"

	"github.com/abcideas/leadflow/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishOutreach(ctx context.Context, payload queue.OutreachPayload) error
}
