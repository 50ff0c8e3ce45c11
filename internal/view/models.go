package view

import (
	"math/big"
	"time"

	"crowdfunder/internal/core"
	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/projection"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const etherDecimals = 4

// CampaignCard is the catalog entry of one campaign. Integers are decimal
// strings so clients never lose precision.
type CampaignCard struct {
	ID              string `json:"id"`
	Pair            string `json:"pair"`
	Owner           string `json:"owner"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Target          string `json:"target"`
	TargetEther     string `json:"targetEther"`
	Categorie       string `json:"categorie"`
	TimeLimit       string `json:"timeLimit"`
	Deadline        string `json:"deadline"`
	ImageCid        string `json:"imageCid"`
	ImageURL        string `json:"imageUrl"`
	BlockNumber     string `json:"blockNumber"`
	BlockTimestamp  string `json:"blockTimestamp"`
	TransactionHash string `json:"transactionHash"`
}

type CatalogPage struct {
	Campaigns []CampaignCard `json:"campaigns"`
	Total     int            `json:"total"`
	Page      int            `json:"page"`
	Limit     int            `json:"limit"`
	Message   string         `json:"message,omitempty"`
}

type DonationView struct {
	Donor           string `json:"donor"`
	Message         string `json:"message"`
	Amount          string `json:"amount"`
	AmountEther     string `json:"amountEther"`
	BlockNumber     uint64 `json:"blockNumber"`
	TransactionHash string `json:"transactionHash"`
}

type WithdrawalView struct {
	User            string `json:"user"`
	Amount          string `json:"amount"`
	AmountEther     string `json:"amountEther"`
	BlockNumber     uint64 `json:"blockNumber"`
	TransactionHash string `json:"transactionHash"`
}

type VotingView struct {
	Creator       string    `json:"creator"`
	Message       string    `json:"message"`
	VotingPair    string    `json:"votingPair"`
	TimeLimit     string    `json:"timeLimit"`
	Countdown     Countdown `json:"countdown"`
	Votes         int       `json:"votes"`
	YesPercentage int       `json:"yesPercentage"`
	NoPercentage  int       `json:"noPercentage"`
}

type CampaignPage struct {
	Campaign       CampaignCard     `json:"campaign"`
	Raised         string           `json:"raised"`
	RaisedEther    string           `json:"raisedEther"`
	RaisedUSD      float64          `json:"raisedUsd"`
	Percentage     int64            `json:"percentage"`
	PriceUSD       float64          `json:"priceUsd"`
	Countdown      Countdown        `json:"countdown"`
	Donations      []DonationView   `json:"donations"`
	Withdrawals    []WithdrawalView `json:"withdrawals"`
	Votings        []VotingView     `json:"votings"`
	VotingsMessage string           `json:"votingsMessage,omitempty"`
}

func Card(rec projection.Record, gateway string) CampaignCard {
	return CampaignCard{
		ID:              hexutil.Encode(rec.ID),
		Pair:            rec.Pair.Hex(),
		Owner:           rec.Owner.Hex(),
		Name:            rec.Name,
		Description:     rec.Description,
		Target:          decimal(rec.Target),
		TargetEther:     FormatEther(rec.Target, etherDecimals),
		Categorie:       rec.Categorie,
		TimeLimit:       decimal(rec.TimeLimit),
		Deadline:        Deadline(rec.TimeLimit),
		ImageCid:        rec.ImageCid,
		ImageURL:        ImageURL(gateway, rec.ImageCid),
		BlockNumber:     decimal(rec.BlockNumber),
		BlockTimestamp:  decimal(rec.BlockTimestamp),
		TransactionHash: rec.TransactionHash.Hex(),
	}
}

// Catalog renders a catalog page. An empty page carries the empty state
// message of the requested categorie.
func Catalog(c core.Catalog, categorie, gateway string) CatalogPage {
	page := CatalogPage{
		Campaigns: make([]CampaignCard, 0, len(c.Campaigns)),
		Total:     c.Total,
		Page:      c.Page,
		Limit:     c.Limit,
	}
	for _, rec := range c.Campaigns {
		page.Campaigns = append(page.Campaigns, Card(rec, gateway))
	}
	if len(page.Campaigns) == 0 {
		page.Message = NoCampaignsMessage(categorie)
	}
	return page
}

// Detail renders the campaign page as seen at now.
func Detail(d core.CampaignDetail, gateway string, now time.Time) CampaignPage {
	raised := NetRaised(d.Donations, d.Withdrawals)

	page := CampaignPage{
		Campaign:    Card(d.Campaign, gateway),
		Raised:      raised.String(),
		RaisedEther: FormatEther(raised, etherDecimals),
		RaisedUSD:   USD(raised, d.PriceUSD),
		Percentage:  Percentage(raised, d.Campaign.Target),
		PriceUSD:    d.PriceUSD,
		Countdown:   CountdownTo(now, d.Campaign.TimeLimit),
		Donations:   make([]DonationView, 0, len(d.Donations)),
		Withdrawals: make([]WithdrawalView, 0, len(d.Withdrawals)),
		Votings:     make([]VotingView, 0, len(d.Votings)),
	}

	for _, dn := range d.Donations {
		page.Donations = append(page.Donations, donationView(dn))
	}
	for _, w := range d.Withdrawals {
		page.Withdrawals = append(page.Withdrawals, WithdrawalView{
			User:            w.User.Hex(),
			Amount:          decimal(w.Amount),
			AmountEther:     FormatEther(w.Amount, etherDecimals),
			BlockNumber:     w.BlockNumber,
			TransactionHash: w.TxHash.Hex(),
		})
	}
	for _, v := range d.Votings {
		page.Votings = append(page.Votings, votingView(v, now))
	}
	if len(page.Votings) == 0 {
		page.VotingsMessage = NoVotingsMessage
	}

	return page
}

func donationView(d ethereum.Donation) DonationView {
	return DonationView{
		Donor:           d.Donor.Hex(),
		Message:         d.Message,
		Amount:          decimal(d.Amount),
		AmountEther:     FormatEther(d.Amount, etherDecimals),
		BlockNumber:     d.BlockNumber,
		TransactionHash: d.TxHash.Hex(),
	}
}

func votingView(v core.VotingDetail, now time.Time) VotingView {
	out := VotingView{
		Creator:    v.Creator.Hex(),
		Message:    v.Message,
		VotingPair: v.VotingPair.Hex(),
		TimeLimit:  decimal(v.TimeLimit),
		Countdown:  CountdownTo(now, v.TimeLimit),
	}
	if v.Tally != nil {
		out.Votes = v.Tally.Votes
		out.YesPercentage, out.NoPercentage, _ = Split(v.Tally.Yes, v.Tally.No)
	}
	return out
}

func decimal(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
