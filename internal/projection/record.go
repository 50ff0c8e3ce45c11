package projection

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// IDLength is the size of a record id: a 32 byte transaction hash followed
// by the 4 byte big-endian log index.
const IDLength = common.HashLength + 4

// CampaignCreated is a decoded fundingContractCreated log together with the
// block and transaction it was emitted in.
type CampaignCreated struct {
	Pair        common.Address
	Owner       common.Address
	Name        string
	Description string
	Target      *big.Int
	Categorie   string
	TimeLimit   *big.Int
	ImageCid    string

	BlockNumber     *big.Int
	BlockTimestamp  *big.Int
	TransactionHash common.Hash
	LogIndex        uint32
}

// Record is the flat, queryable view of a created campaign.
type Record struct {
	ID              []byte
	Pair            common.Address
	Owner           common.Address
	Name            string
	Description     string
	Target          *big.Int
	Categorie       string
	TimeLimit       *big.Int
	ImageCid        string
	BlockNumber     *big.Int
	BlockTimestamp  *big.Int
	TransactionHash common.Hash
}

func RecordID(txHash common.Hash, logIndex uint32) []byte {
	id := make([]byte, IDLength)
	copy(id, txHash[:])
	binary.BigEndian.PutUint32(id[common.HashLength:], logIndex)
	return id
}

// Project maps one event occurrence to its record. Big integers are copied so
// the record never aliases the decoded event.
func Project(evt CampaignCreated) Record {
	return Record{
		ID:              RecordID(evt.TransactionHash, evt.LogIndex),
		Pair:            evt.Pair,
		Owner:           evt.Owner,
		Name:            evt.Name,
		Description:     evt.Description,
		Target:          copyInt(evt.Target),
		Categorie:       evt.Categorie,
		TimeLimit:       copyInt(evt.TimeLimit),
		ImageCid:        evt.ImageCid,
		BlockNumber:     copyInt(evt.BlockNumber),
		BlockTimestamp:  copyInt(evt.BlockTimestamp),
		TransactionHash: evt.TransactionHash,
	}
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
