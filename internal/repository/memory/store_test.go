package memory_test

import (
	"context"
	"math/big"

	"crowdfunder/internal/projection"
	"crowdfunder/internal/repository"
	"crowdfunder/internal/repository/memory"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	var (
		store  *memory.Store
		ctx    context.Context
		record projection.Record
		pair   common.Address
	)

	BeforeEach(func() {
		ctx = context.Background()
		pair = common.HexToAddress("0x0000000000000000000000000000000000000001")
		store = memory.NewStore(repository.User{ID: "1", Username: "operator", PasswordHash: "hash"})

		txHash := common.HexToHash("0xaa")
		record = projection.Record{
			ID:              projection.RecordID(txHash, 0),
			Pair:            pair,
			Name:            "Save the bees",
			Target:          big.NewInt(234),
			Categorie:       "animals",
			TimeLimit:       big.NewInt(1800000000),
			BlockNumber:     big.NewInt(1),
			BlockTimestamp:  big.NewInt(1690000000),
			TransactionHash: txHash,
		}
	})

	Describe("UpsertCampaign", func() {
		It("should keep one record per id", func() {
			Expect(store.UpsertCampaign(ctx, record)).To(Succeed())
			record.Name = "Save more bees"
			Expect(store.UpsertCampaign(ctx, record)).To(Succeed())

			records, err := store.GetCampaigns(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Name).To(Equal("Save more bees"))
		})

		It("should not share integers with the caller", func() {
			Expect(store.UpsertCampaign(ctx, record)).To(Succeed())
			record.Target.SetInt64(1)

			found, err := store.GetCampaignByPair(ctx, pair)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Target.Int64()).To(Equal(int64(234)))
		})
	})

	Describe("GetCampaignByPair", func() {
		It("should report unknown campaigns", func() {
			_, err := store.GetCampaignByPair(ctx, common.HexToAddress("0x09"))
			Expect(err).To(MatchError(repository.ErrCampaignNotFound))
		})
	})

	Describe("Checkpoints", func() {
		It("should remember the last indexed block until reset", func() {
			_, ok, err := store.GetCheckpoint(ctx, "factory")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())

			Expect(store.SaveCheckpoint(ctx, "factory", 42)).To(Succeed())
			Expect(store.UpsertCampaign(ctx, record)).To(Succeed())

			block, ok, err := store.GetCheckpoint(ctx, "factory")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(block).To(Equal(uint64(42)))

			Expect(store.Reset(ctx)).To(Succeed())
			_, ok, _ = store.GetCheckpoint(ctx, "factory")
			Expect(ok).To(BeFalse())
			records, _ := store.GetCampaigns(ctx)
			Expect(records).To(BeEmpty())
		})
	})

	Describe("GetUserFromDB", func() {
		It("should find seeded users", func() {
			user, err := store.GetUserFromDB(ctx, "operator")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.PasswordHash).To(Equal("hash"))
		})

		It("should report unknown users", func() {
			_, err := store.GetUserFromDB(ctx, "ghost")
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})
	})
})
