package projection_test

import (
	"context"
	"errors"
	"math/big"

	"crowdfunder/internal/projection"
	"crowdfunder/internal/projection/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Projection", func() {
	var (
		txHash common.Hash
		evt    projection.CampaignCreated
	)

	BeforeEach(func() {
		txHash = common.HexToHash("0xa16081f360e3847006db660bae1c6d1b2e17ec2a010000000000000000000000")
		evt = projection.CampaignCreated{
			Pair:            common.HexToAddress("0x0000000000000000000000000000000000000001"),
			Owner:           common.HexToAddress("0x0000000000000000000000000000000000000001"),
			Name:            "Example string value",
			Description:     "Example string value",
			Target:          big.NewInt(234),
			Categorie:       "Example string value",
			TimeLimit:       big.NewInt(234),
			ImageCid:        "Example string value",
			BlockNumber:     big.NewInt(1),
			BlockTimestamp:  big.NewInt(1700000000),
			TransactionHash: txHash,
			LogIndex:        1,
		}
	})

	Describe("RecordID", func() {
		It("should append the big-endian log index to the transaction hash", func() {
			id := projection.RecordID(txHash, 1)
			Expect(id).To(HaveLen(projection.IDLength))
			Expect(id[:32]).To(Equal(txHash.Bytes()))
			Expect(id[32:]).To(Equal([]byte{0x00, 0x00, 0x00, 0x01}))
		})

		It("should distinguish logs of the same transaction", func() {
			Expect(projection.RecordID(txHash, 1)).NotTo(Equal(projection.RecordID(txHash, 256)))
			Expect(projection.RecordID(txHash, 256)[32:]).To(Equal([]byte{0x00, 0x00, 0x01, 0x00}))
		})
	})

	Describe("Project", func() {
		var rec projection.Record

		JustBeforeEach(func() {
			rec = projection.Project(evt)
		})

		It("should copy every field verbatim", func() {
			Expect(rec.ID).To(Equal(projection.RecordID(txHash, 1)))
			Expect(rec.Pair).To(Equal(evt.Pair))
			Expect(rec.Owner).To(Equal(evt.Owner))
			Expect(rec.Name).To(Equal("Example string value"))
			Expect(rec.Description).To(Equal("Example string value"))
			Expect(rec.Target.Int64()).To(Equal(int64(234)))
			Expect(rec.Categorie).To(Equal("Example string value"))
			Expect(rec.TimeLimit.Int64()).To(Equal(int64(234)))
			Expect(rec.ImageCid).To(Equal("Example string value"))
			Expect(rec.BlockNumber.Int64()).To(Equal(int64(1)))
			Expect(rec.BlockTimestamp.Int64()).To(Equal(int64(1700000000)))
			Expect(rec.TransactionHash).To(Equal(txHash))
		})

		When("the target does not fit in 64 bits", func() {
			BeforeEach(func() {
				evt.Target, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
			})

			It("should keep full precision", func() {
				Expect(rec.Target.String()).To(Equal("115792089237316195423570985008687907853269984665640564039457584007913129639935"))
			})
		})

		It("should not alias the event integers", func() {
			evt.Target.SetInt64(1)
			Expect(rec.Target.Int64()).To(Equal(int64(234)))
		})
	})

	Describe("Projector", func() {
		var (
			fakeStore *fake.CampaignStore
			projector *projection.Projector
			ctx       context.Context
			rec       projection.Record
			err       error
		)

		BeforeEach(func() {
			fakeStore = new(fake.CampaignStore)
			projector = projection.NewProjector(zap.NewNop().Sugar(), fakeStore)
			ctx = context.Background()
		})

		JustBeforeEach(func() {
			rec, err = projector.Handle(ctx, evt)
		})

		When("the store accepts the record", func() {
			It("should upsert exactly one record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.UpsertCampaignCallCount()).To(Equal(1))
				_, stored := fakeStore.UpsertCampaignArgsForCall(0)
				Expect(stored).To(Equal(rec))
				Expect(stored.ID).To(Equal(projection.RecordID(txHash, 1)))
			})
		})

		When("the same event is handled twice", func() {
			It("should write the same id both times", func() {
				_, err := projector.Handle(ctx, evt)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.UpsertCampaignCallCount()).To(Equal(2))
				_, first := fakeStore.UpsertCampaignArgsForCall(0)
				_, second := fakeStore.UpsertCampaignArgsForCall(1)
				Expect(first).To(Equal(second))
			})
		})

		When("the store fails", func() {
			var fakeErr error

			BeforeEach(func() {
				fakeErr = errors.New("fake error")
				fakeStore.UpsertCampaignReturns(fakeErr)
			})

			It("should return the store error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(rec).To(Equal(projection.Record{}))
			})
		})
	})
})
