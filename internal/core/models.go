package core

import (
	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/projection"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CatalogQuery selects campaigns for the catalog. Empty fields do not filter.
type CatalogQuery struct {
	Categorie string
	Name      string
	Limit     int
	Page      int
}

type Catalog struct {
	Campaigns []projection.Record
	Total     int
	Page      int
	Limit     int
}

type Category struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Important bool   `json:"important"`
}

type VotingDetail struct {
	ethereum.Voting
	Tally *ethereum.VoteTally `json:"tally"`
}

// CampaignDetail is a campaign record joined with its on-chain activity.
type CampaignDetail struct {
	Campaign    projection.Record
	Donations   []ethereum.Donation
	Withdrawals []ethereum.Withdrawal
	Votings     []VotingDetail
	PriceUSD    float64
}
