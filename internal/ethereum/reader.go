package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EventReader reads factory, campaign and voting events straight from the node.
type EventReader struct {
	client    EthClient
	factory   common.Address
	contracts contracts
}

func NewEventReader(ethClient EthClient, factory common.Address) (*EventReader, error) {
	c, err := parseContracts()
	if err != nil {
		return nil, err
	}

	return &EventReader{
		client:    ethClient,
		factory:   factory,
		contracts: c,
	}, nil
}

func (r *EventReader) LatestBlock(ctx context.Context) (uint64, error) {
	head, err := r.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return head, nil
}

// FetchCampaignCreated returns the factory events in [from, to] ordered by
// block number and log index.
func (r *EventReader) FetchCampaignCreated(ctx context.Context, from, to uint64) ([]CampaignCreatedEvent, error) {
	logs, err := r.filter(ctx, r.factory, r.contracts.factory, eventCampaignCreated,
		new(big.Int).SetUint64(from), new(big.Int).SetUint64(to))
	if err != nil {
		return nil, err
	}

	timestamps := make(map[uint64]uint64)
	events := make([]CampaignCreatedEvent, 0, len(logs))
	for _, lg := range logs {
		var data campaignCreatedData
		if err := r.contracts.factory.UnpackIntoInterface(&data, eventCampaignCreated, lg.Data); err != nil {
			return nil, fmt.Errorf("unpack %s in tx %s: %w", eventCampaignCreated, lg.TxHash.Hex(), err)
		}

		ts, ok := timestamps[lg.BlockNumber]
		if !ok {
			header, err := r.client.HeaderByNumber(ctx, new(big.Int).SetUint64(lg.BlockNumber))
			if err != nil {
				return nil, fmt.Errorf("get header %d: %w", lg.BlockNumber, err)
			}
			ts = header.Time
			timestamps[lg.BlockNumber] = ts
		}

		events = append(events, CampaignCreatedEvent{
			Pair:            data.Pair,
			Owner:           data.Owner,
			Name:            data.Name,
			Description:     data.Description,
			Target:          data.Target,
			Categorie:       data.Categorie,
			TimeLimit:       data.TimeLimit,
			ImageCid:        data.ImageCid,
			BlockNumber:     lg.BlockNumber,
			BlockTimestamp:  ts,
			TransactionHash: lg.TxHash,
			LogIndex:        lg.Index,
		})
	}

	return events, nil
}

func (r *EventReader) FetchDonations(ctx context.Context, pair common.Address) ([]Donation, error) {
	logs, err := r.filter(ctx, pair, r.contracts.crowdfunding, eventDonation, nil, nil)
	if err != nil {
		return nil, err
	}

	donations := make([]Donation, 0, len(logs))
	for _, lg := range logs {
		var data donationData
		if err := r.contracts.crowdfunding.UnpackIntoInterface(&data, eventDonation, lg.Data); err != nil {
			return nil, fmt.Errorf("unpack %s in tx %s: %w", eventDonation, lg.TxHash.Hex(), err)
		}
		donations = append(donations, Donation{
			Donor:       data.Donor,
			Message:     data.Message,
			Amount:      data.Amount,
			Percentage:  data.Percentage,
			Total:       data.Total,
			BlockNumber: lg.BlockNumber,
			TxHash:      lg.TxHash,
		})
	}

	return donations, nil
}

func (r *EventReader) FetchWithdrawals(ctx context.Context, pair common.Address) ([]Withdrawal, error) {
	logs, err := r.filter(ctx, pair, r.contracts.crowdfunding, eventUserWithdraw, nil, nil)
	if err != nil {
		return nil, err
	}

	withdrawals := make([]Withdrawal, 0, len(logs))
	for _, lg := range logs {
		var data withdrawalData
		if err := r.contracts.crowdfunding.UnpackIntoInterface(&data, eventUserWithdraw, lg.Data); err != nil {
			return nil, fmt.Errorf("unpack %s in tx %s: %w", eventUserWithdraw, lg.TxHash.Hex(), err)
		}
		withdrawals = append(withdrawals, Withdrawal{
			User:        data.User,
			Amount:      data.Amount,
			BlockNumber: lg.BlockNumber,
			TxHash:      lg.TxHash,
		})
	}

	return withdrawals, nil
}

func (r *EventReader) FetchVotings(ctx context.Context, pair common.Address) ([]Voting, error) {
	logs, err := r.filter(ctx, pair, r.contracts.crowdfunding, eventVotingCreated, nil, nil)
	if err != nil {
		return nil, err
	}

	votings := make([]Voting, 0, len(logs))
	for _, lg := range logs {
		var data votingData
		if err := r.contracts.crowdfunding.UnpackIntoInterface(&data, eventVotingCreated, lg.Data); err != nil {
			return nil, fmt.Errorf("unpack %s in tx %s: %w", eventVotingCreated, lg.TxHash.Hex(), err)
		}
		votings = append(votings, Voting{
			Creator:     data.Creator,
			Message:     data.Message,
			VotingPair:  data.VotingPair,
			TimeLimit:   data.TimeLimit,
			BlockNumber: lg.BlockNumber,
			TxHash:      lg.TxHash,
		})
	}

	return votings, nil
}

// FetchLatestVote returns the totals of the last Voted event of a voting
// contract, or nil when nobody has voted yet.
func (r *EventReader) FetchLatestVote(ctx context.Context, voting common.Address) (*VoteTally, error) {
	logs, err := r.filter(ctx, voting, r.contracts.voting, eventVoted, nil, nil)
	if err != nil {
		return nil, err
	}

	if len(logs) == 0 {
		return nil, nil
	}

	last := logs[len(logs)-1]
	var data votedData
	if err := r.contracts.voting.UnpackIntoInterface(&data, eventVoted, last.Data); err != nil {
		return nil, fmt.Errorf("unpack %s in tx %s: %w", eventVoted, last.TxHash.Hex(), err)
	}

	return &VoteTally{
		Voter: data.Voter,
		Yes:   data.Yes,
		No:    data.No,
		Votes: len(logs),
	}, nil
}

func (r *EventReader) filter(ctx context.Context, address common.Address, contract abi.ABI, event string, from, to *big.Int) ([]types.Log, error) {
	evt, ok := contract.Events[event]
	if !ok {
		return nil, fmt.Errorf("event %q not in abi", event)
	}

	logs, err := r.client.FilterLogs(ctx, geth.FilterQuery{
		FromBlock: from,
		ToBlock:   to,
		Addresses: []common.Address{address},
		Topics:    [][]common.Hash{{evt.ID}},
	})
	if err != nil {
		return nil, fmt.Errorf("filter %s logs of %s: %w", event, address.Hex(), err)
	}

	kept := logs[:0]
	for _, lg := range logs {
		if lg.Removed {
			continue
		}
		kept = append(kept, lg)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].BlockNumber != kept[j].BlockNumber {
			return kept[i].BlockNumber < kept[j].BlockNumber
		}
		return kept[i].Index < kept[j].Index
	})

	return kept, nil
}
