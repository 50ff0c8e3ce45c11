package indexer_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/indexer"
	"crowdfunder/internal/indexer/fake"
	"crowdfunder/internal/projection"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Indexer", func() {
	var (
		idx             *indexer.Indexer
		fakeSource      *fake.EventSource
		fakeProjector   *fake.Projector
		fakeCheckpoints *fake.CheckpointStore
		fakeFeed        *fake.Broadcaster
		cfg             indexer.Config
		ctx             context.Context
		testErr         error
		applied         int
		err             error
	)

	event := func(block uint64, logIndex uint) ethereum.CampaignCreatedEvent {
		return ethereum.CampaignCreatedEvent{
			Pair:            common.HexToAddress("0x0000000000000000000000000000000000000001"),
			Name:            "Save the bees",
			Target:          big.NewInt(10),
			Categorie:       "animals",
			TimeLimit:       big.NewInt(1800000000),
			BlockNumber:     block,
			BlockTimestamp:  1690000000 + block,
			TransactionHash: common.HexToHash("0xaa"),
			LogIndex:        logIndex,
		}
	}

	BeforeEach(func() {
		fakeSource = new(fake.EventSource)
		fakeProjector = new(fake.Projector)
		fakeCheckpoints = new(fake.CheckpointStore)
		fakeFeed = new(fake.Broadcaster)
		ctx = context.Background()
		testErr = errors.New("test error")
		cfg = indexer.Config{StartBlock: 100, BatchSize: 10}

		fakeProjector.HandleStub = func(_ context.Context, evt projection.CampaignCreated) (projection.Record, error) {
			return projection.Project(evt), nil
		}
	})

	JustBeforeEach(func() {
		idx = indexer.NewIndexer(zap.NewNop().Sugar(), fakeSource, fakeProjector, fakeCheckpoints, fakeFeed, cfg)
		applied, err = idx.Sync(ctx)
	})

	Describe("Sync", func() {
		When("nothing was indexed yet", func() {
			BeforeEach(func() {
				fakeSource.LatestBlockReturns(124, nil)
				fakeSource.FetchCampaignCreatedReturnsOnCall(0, []ethereum.CampaignCreatedEvent{event(101, 0), event(101, 1)}, nil)
				fakeSource.FetchCampaignCreatedReturnsOnCall(2, []ethereum.CampaignCreatedEvent{event(121, 4)}, nil)
			})

			It("should walk from the start block to the head in batches", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(applied).To(Equal(3))

				Expect(fakeSource.FetchCampaignCreatedCallCount()).To(Equal(3))
				_, from, to := fakeSource.FetchCampaignCreatedArgsForCall(0)
				Expect([]uint64{from, to}).To(Equal([]uint64{100, 109}))
				_, from, to = fakeSource.FetchCampaignCreatedArgsForCall(1)
				Expect([]uint64{from, to}).To(Equal([]uint64{110, 119}))
				_, from, to = fakeSource.FetchCampaignCreatedArgsForCall(2)
				Expect([]uint64{from, to}).To(Equal([]uint64{120, 124}))
			})

			It("should project events in the order they were read", func() {
				Expect(fakeProjector.HandleCallCount()).To(Equal(3))
				_, first := fakeProjector.HandleArgsForCall(0)
				_, second := fakeProjector.HandleArgsForCall(1)
				_, third := fakeProjector.HandleArgsForCall(2)
				Expect(first.LogIndex).To(Equal(uint32(0)))
				Expect(second.LogIndex).To(Equal(uint32(1)))
				Expect(third.BlockNumber.Uint64()).To(Equal(uint64(121)))
				Expect(third.BlockTimestamp.Uint64()).To(Equal(uint64(1690000121)))
			})

			It("should save a checkpoint after each batch", func() {
				Expect(fakeCheckpoints.SaveCheckpointCallCount()).To(Equal(3))
				_, name, block := fakeCheckpoints.SaveCheckpointArgsForCall(2)
				Expect(name).To(Equal(indexer.CheckpointName))
				Expect(block).To(Equal(uint64(124)))
			})

			It("should announce every projected campaign", func() {
				Expect(fakeFeed.PublishCallCount()).To(Equal(3))
				n, ok := fakeFeed.PublishArgsForCall(0).(indexer.Notification)
				Expect(ok).To(BeTrue())
				Expect(n.Type).To(Equal(indexer.NotificationCampaignCreated))
				Expect(n.Categorie).To(Equal("animals"))
				Expect(n.ID).To(Equal(common.HexToHash("0xaa").Hex() + "00000000"))
			})
		})

		When("a checkpoint exists", func() {
			BeforeEach(func() {
				fakeCheckpoints.GetCheckpointReturns(130, true, nil)
				fakeSource.LatestBlockReturns(135, nil)
			})

			It("should resume after it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeSource.FetchCampaignCreatedCallCount()).To(Equal(1))
				_, from, to := fakeSource.FetchCampaignCreatedArgsForCall(0)
				Expect(from).To(Equal(uint64(131)))
				Expect(to).To(Equal(uint64(135)))
			})
		})

		When("confirmations are required", func() {
			BeforeEach(func() {
				cfg.Confirmations = 12
				fakeSource.LatestBlockReturns(105, nil)
			})

			It("should stop short of the head", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeSource.FetchCampaignCreatedCallCount()).To(Equal(0))
			})
		})

		When("the chain is shorter than the confirmation depth", func() {
			BeforeEach(func() {
				cfg.Confirmations = 12
				fakeSource.LatestBlockReturns(3, nil)
			})

			It("should do nothing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(applied).To(BeZero())
				Expect(fakeCheckpoints.GetCheckpointCallCount()).To(Equal(0))
			})
		})

		When("the projector fails", func() {
			BeforeEach(func() {
				fakeSource.LatestBlockReturns(105, nil)
				fakeSource.FetchCampaignCreatedReturns([]ethereum.CampaignCreatedEvent{event(101, 0), event(102, 0)}, nil)
				fakeProjector.HandleReturnsOnCall(1, projection.Record{}, testErr)
			})

			It("should not advance the checkpoint", func() {
				Expect(err).To(MatchError(testErr))
				Expect(applied).To(Equal(1))
				Expect(fakeCheckpoints.SaveCheckpointCallCount()).To(Equal(0))
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeSource.LatestBlockReturns(105, nil)
				fakeSource.FetchCampaignCreatedReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(fakeCheckpoints.SaveCheckpointCallCount()).To(Equal(0))
			})
		})

		When("publishing fails", func() {
			BeforeEach(func() {
				fakeSource.LatestBlockReturns(100, nil)
				fakeSource.FetchCampaignCreatedReturns([]ethereum.CampaignCreatedEvent{event(100, 0)}, nil)
				fakeFeed.PublishReturns(testErr)
			})

			It("should still index the block", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeCheckpoints.SaveCheckpointCallCount()).To(Equal(1))
			})
		})
	})

	Describe("Start", func() {
		BeforeEach(func() {
			fakeSource.LatestBlockReturns(0, nil)
			cfg.StartBlock = 1
		})

		It("should run the sync on a schedule until stopped", func() {
			Expect(idx.Start(ctx, 10*time.Millisecond)).To(Succeed())
			Expect(idx.Start(ctx, time.Second)).To(MatchError(indexer.ErrAlreadyStarted))

			Eventually(fakeSource.LatestBlockCallCount).Should(BeNumerically(">=", 3))
			Expect(idx.Stop()).To(Succeed())
			Expect(idx.Stop()).To(Succeed())
		})

		It("should start once when called concurrently", func() {
			const callers = 8
			var (
				wg      sync.WaitGroup
				started atomic.Int32
				already atomic.Int32
			)
			for range callers {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					err := idx.Start(ctx, time.Second)
					if err == nil {
						started.Add(1)
						return
					}
					Expect(err).To(MatchError(indexer.ErrAlreadyStarted))
					already.Add(1)
				}()
			}
			wg.Wait()

			Expect(started.Load()).To(Equal(int32(1)))
			Expect(already.Load()).To(Equal(int32(callers - 1)))
			Expect(idx.Stop()).To(Succeed())
			Expect(idx.Start(ctx, time.Second)).To(Succeed())
			Expect(idx.Stop()).To(Succeed())
		})
	})
})
