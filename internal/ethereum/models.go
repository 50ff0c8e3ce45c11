package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type CampaignCreatedEvent struct {
	Pair        common.Address
	Owner       common.Address
	Name        string
	Description string
	Target      *big.Int
	Categorie   string
	TimeLimit   *big.Int
	ImageCid    string

	BlockNumber     uint64
	BlockTimestamp  uint64
	TransactionHash common.Hash
	LogIndex        uint
}

type Donation struct {
	Donor       common.Address `json:"donor"`
	Message     string         `json:"message"`
	Amount      *big.Int       `json:"amount"`
	Percentage  *big.Int       `json:"percentage"`
	Total       *big.Int       `json:"total"`
	BlockNumber uint64         `json:"blockNumber"`
	TxHash      common.Hash    `json:"transactionHash"`
}

type Withdrawal struct {
	User        common.Address `json:"user"`
	Amount      *big.Int       `json:"amount"`
	BlockNumber uint64         `json:"blockNumber"`
	TxHash      common.Hash    `json:"transactionHash"`
}

type Voting struct {
	Creator     common.Address `json:"creator"`
	Message     string         `json:"message"`
	VotingPair  common.Address `json:"votingPair"`
	TimeLimit   *big.Int       `json:"timeLimit"`
	BlockNumber uint64         `json:"blockNumber"`
	TxHash      common.Hash    `json:"transactionHash"`
}

// VoteTally holds the running totals carried by a Voted event.
type VoteTally struct {
	Voter common.Address `json:"voter"`
	Yes   *big.Int       `json:"yes"`
	No    *big.Int       `json:"no"`
	Votes int            `json:"votes"`
}

type CreateCampaignCall struct {
	Name        string
	Description string
	Target      *big.Int
	Categorie   string
	TimeLimit   *big.Int
	ImageCid    string
}

type TxReceipt struct {
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`
	Status          uint64 `json:"status"`
}

// abi field names must match the event argument names in camel case.
type campaignCreatedData struct {
	Pair        common.Address
	Owner       common.Address
	Name        string
	Description string
	Target      *big.Int
	Categorie   string
	TimeLimit   *big.Int
	ImageCid    string
}

type donationData struct {
	Donor      common.Address
	Message    string
	Amount     *big.Int
	Percentage *big.Int
	Total      *big.Int
}

type withdrawalData struct {
	User   common.Address
	Amount *big.Int
}

type votingData struct {
	Creator    common.Address
	Message    string
	VotingPair common.Address
	TimeLimit  *big.Int
}

type votedData struct {
	Voter common.Address
	Yes   *big.Int
	No    *big.Int
}
