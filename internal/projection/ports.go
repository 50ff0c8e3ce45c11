package projection

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// CampaignStore persists records keyed by Record.ID. Writing a record whose
// id already exists replaces it, so replaying an event is a no-op.
//
//counterfeiter:generate -o fake -fake-name CampaignStore . CampaignStore
type CampaignStore interface {
	UpsertCampaign(ctx context.Context, rec Record) error
}
