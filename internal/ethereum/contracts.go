package ethereum

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	eventCampaignCreated = "fundingContractCreated"
	eventDonation        = "Donation"
	eventUserWithdraw    = "UserWithdraw"
	eventVotingCreated   = "VotingCreated"
	eventVoted           = "Voted"

	methodCreateCrowdFunding = "createCrowdFunding"
	methodDonate             = "donate"
	methodWithdrawUser       = "withdrawUser"
	methodWithdrawOwner      = "withdrawOwner"
	methodCreateVoting       = "createVoting"
	methodVote               = "vote"
)

var (
	//go:embed abi/factory.json
	FactoryABI string

	//go:embed abi/crowdfunding.json
	CrowdfundingABI string

	//go:embed abi/voting.json
	VotingABI string
)

type contracts struct {
	factory      abi.ABI
	crowdfunding abi.ABI
	voting       abi.ABI
}

func parseContracts() (contracts, error) {
	factory, err := abi.JSON(strings.NewReader(FactoryABI))
	if err != nil {
		return contracts{}, fmt.Errorf("parse factory abi: %w", err)
	}

	crowdfunding, err := abi.JSON(strings.NewReader(CrowdfundingABI))
	if err != nil {
		return contracts{}, fmt.Errorf("parse crowdfunding abi: %w", err)
	}

	voting, err := abi.JSON(strings.NewReader(VotingABI))
	if err != nil {
		return contracts{}, fmt.Errorf("parse voting abi: %w", err)
	}

	return contracts{
		factory:      factory,
		crowdfunding: crowdfunding,
		voting:       voting,
	}, nil
}
