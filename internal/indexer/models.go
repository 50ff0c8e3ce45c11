package indexer

import (
	"math/big"

	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/projection"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const NotificationCampaignCreated = "campaignCreated"

// Notification is pushed to live subscribers for every projected campaign.
type Notification struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Pair        string `json:"pair"`
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Categorie   string `json:"categorie"`
	Target      string `json:"target"`
	TimeLimit   string `json:"timeLimit"`
	ImageCid    string `json:"imageCid"`
	BlockNumber string `json:"blockNumber"`
}

func toNotification(rec projection.Record) Notification {
	return Notification{
		Type:        NotificationCampaignCreated,
		ID:          hexutil.Encode(rec.ID),
		Pair:        rec.Pair.Hex(),
		Owner:       rec.Owner.Hex(),
		Name:        rec.Name,
		Categorie:   rec.Categorie,
		Target:      rec.Target.String(),
		TimeLimit:   rec.TimeLimit.String(),
		ImageCid:    rec.ImageCid,
		BlockNumber: rec.BlockNumber.String(),
	}
}

func toProjection(evt ethereum.CampaignCreatedEvent) projection.CampaignCreated {
	return projection.CampaignCreated{
		Pair:            evt.Pair,
		Owner:           evt.Owner,
		Name:            evt.Name,
		Description:     evt.Description,
		Target:          evt.Target,
		Categorie:       evt.Categorie,
		TimeLimit:       evt.TimeLimit,
		ImageCid:        evt.ImageCid,
		BlockNumber:     new(big.Int).SetUint64(evt.BlockNumber),
		BlockTimestamp:  new(big.Int).SetUint64(evt.BlockTimestamp),
		TransactionHash: evt.TransactionHash,
		LogIndex:        uint32(evt.LogIndex),
	}
}
