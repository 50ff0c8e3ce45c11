package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/ethereum/fake"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func packEvent(abiJSON, event string, args ...any) (common.Hash, []byte) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	Expect(err).NotTo(HaveOccurred())
	evt, ok := parsed.Events[event]
	Expect(ok).To(BeTrue())
	data, err := evt.Inputs.NonIndexed().Pack(args...)
	Expect(err).NotTo(HaveOccurred())
	return evt.ID, data
}

var _ = Describe("EventReader", func() {
	var (
		reader     *ethereum.EventReader
		fakeClient *fake.EthClient
		ctx        context.Context
		factory    common.Address
		pair       common.Address
		owner      common.Address
		testErr    error
	)

	BeforeEach(func() {
		var err error
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		testErr = errors.New("test error")
		factory = common.HexToAddress("0x00000000000000000000000000000000000000fa")
		pair = common.HexToAddress("0x0000000000000000000000000000000000000001")
		owner = common.HexToAddress("0x0000000000000000000000000000000000000002")

		reader, err = ethereum.NewEventReader(fakeClient, factory)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("FetchCampaignCreated", func() {
		var (
			events []ethereum.CampaignCreatedEvent
			err    error
			topic  common.Hash
			data   []byte
			txA    common.Hash
			txB    common.Hash
		)

		BeforeEach(func() {
			topic, data = packEvent(ethereum.FactoryABI, "fundingContractCreated",
				pair, owner, "Example string value", "Example string value",
				big.NewInt(234), "animals", big.NewInt(1700000000), "bafycid")
			txA = common.HexToHash("0xaa")
			txB = common.HexToHash("0xbb")

			fakeClient.HeaderByNumberReturns(&types.Header{Time: 1690000000}, nil)
		})

		JustBeforeEach(func() {
			events, err = reader.FetchCampaignCreated(ctx, 10, 20)
		})

		When("logs arrive out of order", func() {
			BeforeEach(func() {
				fakeClient.FilterLogsReturns([]types.Log{
					{Address: factory, Topics: []common.Hash{topic}, Data: data, BlockNumber: 12, Index: 3, TxHash: txB},
					{Address: factory, Topics: []common.Hash{topic}, Data: data, BlockNumber: 11, Index: 7, TxHash: txA},
					{Address: factory, Topics: []common.Hash{topic}, Data: data, BlockNumber: 12, Index: 1, TxHash: txB},
					{Address: factory, Topics: []common.Hash{topic}, Data: data, BlockNumber: 12, Index: 2, TxHash: txB, Removed: true},
				}, nil)
			})

			It("should decode them in block and log index order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(events).To(HaveLen(3))

				Expect(events[0].BlockNumber).To(Equal(uint64(11)))
				Expect(events[0].LogIndex).To(Equal(uint(7)))
				Expect(events[1].LogIndex).To(Equal(uint(1)))
				Expect(events[2].LogIndex).To(Equal(uint(3)))

				Expect(events[0].Pair).To(Equal(pair))
				Expect(events[0].Owner).To(Equal(owner))
				Expect(events[0].Name).To(Equal("Example string value"))
				Expect(events[0].Target.Int64()).To(Equal(int64(234)))
				Expect(events[0].Categorie).To(Equal("animals"))
				Expect(events[0].TimeLimit.Int64()).To(Equal(int64(1700000000)))
				Expect(events[0].ImageCid).To(Equal("bafycid"))
				Expect(events[0].BlockTimestamp).To(Equal(uint64(1690000000)))
				Expect(events[0].TransactionHash).To(Equal(txA))
			})

			It("should query the factory for the event topic in range", func() {
				Expect(fakeClient.FilterLogsCallCount()).To(Equal(1))
				_, q := fakeClient.FilterLogsArgsForCall(0)
				Expect(q.Addresses).To(Equal([]common.Address{factory}))
				Expect(q.Topics).To(Equal([][]common.Hash{{topic}}))
				Expect(q.FromBlock.Uint64()).To(Equal(uint64(10)))
				Expect(q.ToBlock.Uint64()).To(Equal(uint64(20)))
			})

			It("should fetch each block header once", func() {
				Expect(fakeClient.HeaderByNumberCallCount()).To(Equal(2))
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeClient.FilterLogsReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(events).To(BeNil())
			})
		})

		When("a log does not decode", func() {
			BeforeEach(func() {
				fakeClient.FilterLogsReturns([]types.Log{
					{Address: factory, Topics: []common.Hash{topic}, Data: []byte{0x01}, BlockNumber: 11},
				}, nil)
			})

			It("should fail the batch", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("the header lookup fails", func() {
			BeforeEach(func() {
				fakeClient.FilterLogsReturns([]types.Log{
					{Address: factory, Topics: []common.Hash{topic}, Data: data, BlockNumber: 11},
				}, nil)
				fakeClient.HeaderByNumberReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(testErr))
			})
		})
	})

	Describe("FetchDonations", func() {
		It("should decode donation events of the campaign", func() {
			topic, data := packEvent(ethereum.CrowdfundingABI, "Donation",
				owner, "good luck", big.NewInt(4), big.NewInt(40), big.NewInt(4))
			fakeClient.FilterLogsReturns([]types.Log{{Address: pair, Topics: []common.Hash{topic}, Data: data, BlockNumber: 5}}, nil)

			donations, err := reader.FetchDonations(ctx, pair)
			Expect(err).NotTo(HaveOccurred())
			Expect(donations).To(HaveLen(1))
			Expect(donations[0].Donor).To(Equal(owner))
			Expect(donations[0].Message).To(Equal("good luck"))
			Expect(donations[0].Amount.Int64()).To(Equal(int64(4)))
			Expect(donations[0].Percentage.Int64()).To(Equal(int64(40)))

			_, q := fakeClient.FilterLogsArgsForCall(0)
			Expect(q.Addresses).To(Equal([]common.Address{pair}))
			Expect(q.FromBlock).To(BeNil())
		})
	})

	Describe("FetchWithdrawals", func() {
		It("should decode withdrawal events of the campaign", func() {
			topic, data := packEvent(ethereum.CrowdfundingABI, "UserWithdraw", owner, big.NewInt(3))
			fakeClient.FilterLogsReturns([]types.Log{{Address: pair, Topics: []common.Hash{topic}, Data: data}}, nil)

			withdrawals, err := reader.FetchWithdrawals(ctx, pair)
			Expect(err).NotTo(HaveOccurred())
			Expect(withdrawals).To(HaveLen(1))
			Expect(withdrawals[0].User).To(Equal(owner))
			Expect(withdrawals[0].Amount.Int64()).To(Equal(int64(3)))
		})
	})

	Describe("FetchVotings", func() {
		It("should decode voting creation events", func() {
			voting := common.HexToAddress("0x0000000000000000000000000000000000000003")
			topic, data := packEvent(ethereum.CrowdfundingABI, "VotingCreated",
				owner, "move the deadline?", voting, big.NewInt(1800000000))
			fakeClient.FilterLogsReturns([]types.Log{{Address: pair, Topics: []common.Hash{topic}, Data: data}}, nil)

			votings, err := reader.FetchVotings(ctx, pair)
			Expect(err).NotTo(HaveOccurred())
			Expect(votings).To(HaveLen(1))
			Expect(votings[0].Creator).To(Equal(owner))
			Expect(votings[0].Message).To(Equal("move the deadline?"))
			Expect(votings[0].VotingPair).To(Equal(voting))
			Expect(votings[0].TimeLimit.Int64()).To(Equal(int64(1800000000)))
		})
	})

	Describe("FetchLatestVote", func() {
		var voting common.Address

		BeforeEach(func() {
			voting = common.HexToAddress("0x0000000000000000000000000000000000000003")
		})

		When("nobody voted", func() {
			It("should return no tally", func() {
				fakeClient.FilterLogsReturns(nil, nil)

				tally, err := reader.FetchLatestVote(ctx, voting)
				Expect(err).NotTo(HaveOccurred())
				Expect(tally).To(BeNil())
			})
		})

		When("several votes were cast", func() {
			It("should use the totals of the last one", func() {
				topic, first := packEvent(ethereum.VotingABI, "Voted", owner, big.NewInt(1), big.NewInt(0))
				_, last := packEvent(ethereum.VotingABI, "Voted", pair, big.NewInt(1), big.NewInt(1))
				fakeClient.FilterLogsReturns([]types.Log{
					{Address: voting, Topics: []common.Hash{topic}, Data: last, BlockNumber: 9},
					{Address: voting, Topics: []common.Hash{topic}, Data: first, BlockNumber: 8},
				}, nil)

				tally, err := reader.FetchLatestVote(ctx, voting)
				Expect(err).NotTo(HaveOccurred())
				Expect(tally.Voter).To(Equal(pair))
				Expect(tally.Yes.Int64()).To(Equal(int64(1)))
				Expect(tally.No.Int64()).To(Equal(int64(1)))
				Expect(tally.Votes).To(Equal(2))
			})
		})
	})
})
