package indexer

import (
	"context"

	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/projection"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name EventSource . EventSource
type EventSource interface {
	LatestBlock(ctx context.Context) (uint64, error)
	FetchCampaignCreated(ctx context.Context, from, to uint64) ([]ethereum.CampaignCreatedEvent, error)
}

//counterfeiter:generate -o fake -fake-name Projector . Projector
type Projector interface {
	Handle(ctx context.Context, evt projection.CampaignCreated) (projection.Record, error)
}

//counterfeiter:generate -o fake -fake-name CheckpointStore . CheckpointStore
type CheckpointStore interface {
	GetCheckpoint(ctx context.Context, name string) (uint64, bool, error)
	SaveCheckpoint(ctx context.Context, name string, block uint64) error
}

//counterfeiter:generate -o fake -fake-name Broadcaster . Broadcaster
type Broadcaster interface {
	Publish(v any) error
}
