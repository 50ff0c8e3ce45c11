package projection

import (
	"context"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"
)

type Projector struct {
	logs  *zap.SugaredLogger
	store CampaignStore
}

func NewProjector(logger *zap.SugaredLogger, store CampaignStore) *Projector {
	return &Projector{
		logs:  logger,
		store: store,
	}
}

// Handle projects evt and writes the resulting record exactly once.
func (p *Projector) Handle(ctx context.Context, evt CampaignCreated) (Record, error) {
	rec := Project(evt)

	if err := p.store.UpsertCampaign(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("upsert campaign: %w", err)
	}

	p.logs.Infow("campaign projected",
		"id", "0x"+hex.EncodeToString(rec.ID),
		"pair", rec.Pair.Hex(),
		"block", rec.BlockNumber.String())

	return rec, nil
}
