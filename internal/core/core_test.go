package core_test

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"

	"crowdfunder/internal/core"
	"crowdfunder/internal/core/fake"
	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/projection"
	"crowdfunder/internal/repository"
	tokenIssuer "crowdfunder/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func campaign(pair, categorie, name string, block int64, logIndex uint32) projection.Record {
	return projection.Record{
		ID:          projection.RecordID(common.HexToHash("0xaa"), logIndex),
		Pair:        common.HexToAddress(pair),
		Name:        name,
		Categorie:   categorie,
		Target:      big.NewInt(10),
		TimeLimit:   big.NewInt(1800000000),
		BlockNumber: big.NewInt(block),
	}
}

var _ = Describe("Crowdfunding", func() {
	var (
		fakeIndex  *fake.CampaignIndex
		fakeUsers  *fake.UserStore
		fakeJWT    *fake.JWTIssuer
		fakeReader *fake.ChainReader
		fakeWriter *fake.ChainWriter
		fakePrices *fake.PriceOracle
		ctx        context.Context
		service    *core.Crowdfunding
		fakeErr    error
		pair       common.Address
	)

	BeforeEach(func() {
		fakeIndex = new(fake.CampaignIndex)
		fakeUsers = new(fake.UserStore)
		fakeJWT = new(fake.JWTIssuer)
		fakeReader = new(fake.ChainReader)
		fakeWriter = new(fake.ChainWriter)
		fakePrices = new(fake.PriceOracle)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		pair = common.HexToAddress("0x0000000000000000000000000000000000000001")

		service = core.NewCrowdfunding(zap.NewNop().Sugar(), fakeIndex, fakeUsers, fakeJWT,
			fakeReader, fakeWriter, fakePrices, core.Config{TallyWorkers: 2})
	})

	Describe("Authenticate", func() {
		var (
			authMsg   core.AuthMessage
			token     string
			err       error
			userId    string
			tokenInfo tokenIssuer.TokenInfo
			genToken  *jwt.Token
			hash      []byte
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			genToken = jwt.New(jwt.SigningMethodHS512)
			authMsg = core.AuthMessage{Username: "testuser", Password: "testpass"}
			tokenInfo = tokenIssuer.TokenInfo{
				UserName:   authMsg.Username,
				Subject:    userId,
				Expiration: 24,
			}

			var herr error
			hash, herr = bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
			Expect(herr).NotTo(HaveOccurred())
		})

		JustBeforeEach(func() {
			token, err = service.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeUsers.GetUserFromDBReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: string(hash),
					ID:           userId,
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				_, username := fakeUsers.GetUserFromDBArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenInfo))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeUsers.GetUserFromDBReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeUsers.GetUserFromDBReturns(repository.User{ID: userId, PasswordHash: string(hash)}, nil)
				authMsg.Password = "wrong"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUserFromDBReturns(repository.User{ID: userId, PasswordHash: string(hash)}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListCampaigns", func() {
		var (
			query   core.CatalogQuery
			catalog core.Catalog
			err     error
		)

		BeforeEach(func() {
			query = core.CatalogQuery{}
			fakeIndex.GetCampaignsReturns([]projection.Record{
				campaign("0x04", "a", "Fourth", 9, 0),
				campaign("0x01", "a", "Save the Bees", 3, 1),
				campaign("0x02", "b", "Beehive", 3, 0),
				campaign("0x03", "c", "Clean beach", 5, 0),
			}, nil)
		})

		JustBeforeEach(func() {
			catalog, err = service.ListCampaigns(ctx, query)
		})

		When("no filter is given", func() {
			It("should return every campaign in block order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(catalog.Total).To(Equal(4))
				Expect(catalog.Limit).To(Equal(core.DefaultLimit))
				Expect(catalog.Page).To(Equal(1))

				names := []string{}
				for _, c := range catalog.Campaigns {
					names = append(names, c.Name)
				}
				Expect(names).To(Equal([]string{"Beehive", "Save the Bees", "Clean beach", "Fourth"}))
			})
		})

		When("filtering by categorie", func() {
			BeforeEach(func() {
				query.Categorie = "a"
			})

			It("should keep exact matches only", func() {
				Expect(catalog.Campaigns).To(HaveLen(2))
				for _, c := range catalog.Campaigns {
					Expect(c.Categorie).To(Equal("a"))
				}
			})
		})

		When("searching by name", func() {
			BeforeEach(func() {
				query.Name = "BEE"
			})

			It("should match substrings ignoring case", func() {
				Expect(catalog.Total).To(Equal(2))
			})
		})

		When("combining categorie and name", func() {
			BeforeEach(func() {
				query.Categorie = "b"
				query.Name = "bee"
			})

			It("should apply both", func() {
				Expect(catalog.Campaigns).To(HaveLen(1))
				Expect(catalog.Campaigns[0].Name).To(Equal("Beehive"))
			})
		})

		When("paging", func() {
			BeforeEach(func() {
				query.Limit = 3
				query.Page = 2
			})

			It("should return the requested slice", func() {
				Expect(catalog.Total).To(Equal(4))
				Expect(catalog.Campaigns).To(HaveLen(1))
				Expect(catalog.Campaigns[0].Name).To(Equal("Fourth"))
			})
		})

		When("the page is past the end", func() {
			BeforeEach(func() {
				query.Page = 5
			})

			It("should return an empty page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(catalog.Campaigns).To(BeEmpty())
				Expect(catalog.Total).To(Equal(4))
			})
		})

		When("the limit is too large", func() {
			BeforeEach(func() {
				query.Limit = 1000
			})

			It("should clamp it", func() {
				Expect(catalog.Limit).To(Equal(core.MaxLimit))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeIndex.GetCampaignsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetCampaign", func() {
		var (
			detail  core.CampaignDetail
			err     error
			votingA common.Address
			votingB common.Address
		)

		BeforeEach(func() {
			votingA = common.HexToAddress("0x0a")
			votingB = common.HexToAddress("0x0b")

			fakeIndex.GetCampaignByPairReturns(campaign(pair.Hex(), "animals", "Save the bees", 1, 0), nil)
			fakeReader.FetchDonationsReturns([]ethereum.Donation{{Amount: big.NewInt(4)}}, nil)
			fakeReader.FetchWithdrawalsReturns([]ethereum.Withdrawal{{Amount: big.NewInt(1)}}, nil)
			fakeReader.FetchVotingsReturns([]ethereum.Voting{{VotingPair: votingA}, {VotingPair: votingB}}, nil)
			fakeReader.FetchLatestVoteStub = func(_ context.Context, voting common.Address) (*ethereum.VoteTally, error) {
				if voting == votingA {
					return &ethereum.VoteTally{Yes: big.NewInt(3), No: big.NewInt(7), Votes: 10}, nil
				}
				return nil, nil
			}
			fakePrices.EthereumUSDReturns(3000.5, nil)
		})

		JustBeforeEach(func() {
			detail, err = service.GetCampaign(ctx, pair)
		})

		When("the campaign exists", func() {
			It("should join the record with its chain activity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(detail.Campaign.Pair).To(Equal(pair))
				Expect(detail.Donations).To(HaveLen(1))
				Expect(detail.Withdrawals).To(HaveLen(1))
				Expect(detail.PriceUSD).To(Equal(3000.5))

				Expect(detail.Votings).To(HaveLen(2))
				Expect(detail.Votings[0].VotingPair).To(Equal(votingA))
				Expect(detail.Votings[0].Tally.Yes.Int64()).To(Equal(int64(3)))
				Expect(detail.Votings[1].Tally).To(BeNil())

				_, asked := fakeIndex.GetCampaignByPairArgsForCall(0)
				Expect(asked).To(Equal(pair))
				Expect(fakeReader.FetchLatestVoteCallCount()).To(Equal(2))
			})
		})

		When("the campaign has no votings", func() {
			BeforeEach(func() {
				fakeReader.FetchVotingsReturns(nil, nil)
			})

			It("should return an empty voting list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(detail.Votings).To(BeEmpty())
				Expect(fakeReader.FetchLatestVoteCallCount()).To(Equal(0))
			})
		})

		When("the campaign is unknown", func() {
			BeforeEach(func() {
				fakeIndex.GetCampaignByPairReturns(projection.Record{}, repository.ErrCampaignNotFound)
			})

			It("should return campaign not found", func() {
				Expect(err).To(MatchError(core.ErrCampaignNotFound))
				Expect(fakeReader.FetchDonationsCallCount()).To(Equal(0))
			})
		})

		When("a chain read fails", func() {
			BeforeEach(func() {
				fakeReader.FetchWithdrawalsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("a tally read fails", func() {
			BeforeEach(func() {
				fakeReader.FetchLatestVoteStub = nil
				fakeReader.FetchLatestVoteReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the price feed is down", func() {
			BeforeEach(func() {
				fakePrices.EthereumUSDReturns(0, fakeErr)
			})

			It("should still return the campaign without a price", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(detail.PriceUSD).To(BeZero())
			})
		})
	})

	Describe("writes", func() {
		var receipt ethereum.TxReceipt

		BeforeEach(func() {
			receipt = ethereum.TxReceipt{TransactionHash: "0xabc", BlockNumber: 7, Status: 1}
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-1"}, nil)
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			})

			It("should not touch the chain", func() {
				_, err := service.Donate(ctx, "token", pair, "hi", big.NewInt(1))
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
				Expect(fakeWriter.DonateCallCount()).To(Equal(0))
			})
		})

		When("the token has no subject", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{}, nil)
			})

			It("should reject the call", func() {
				_, err := service.WithdrawUser(ctx, "token", pair)
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})

		It("should donate with the given message and amount", func() {
			fakeWriter.DonateReturns(receipt, nil)

			got, err := service.Donate(ctx, "token", pair, "good luck", big.NewInt(500))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(receipt))

			Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("token"))
			_, to, message, value := fakeWriter.DonateArgsForCall(0)
			Expect(to).To(Equal(pair))
			Expect(message).To(Equal("good luck"))
			Expect(value.Int64()).To(Equal(int64(500)))
		})

		It("should bound the wait but ignore caller cancellation", func() {
			var deadlineSet, canceled atomic.Bool
			fakeWriter.WithdrawOwnerStub = func(ctx context.Context, _ common.Address) (ethereum.TxReceipt, error) {
				_, ok := ctx.Deadline()
				deadlineSet.Store(ok)
				canceled.Store(ctx.Err() != nil)
				return receipt, nil
			}

			parent, cancel := context.WithCancel(ctx)
			cancel()

			_, err := service.WithdrawOwner(parent, "token", pair)
			Expect(err).NotTo(HaveOccurred())
			Expect(deadlineSet.Load()).To(BeTrue())
			Expect(canceled.Load()).To(BeFalse())
		})

		It("should return the receipt of a reverted transaction with the error", func() {
			reverted := ethereum.TxReceipt{TransactionHash: "0xdead", Status: 0}
			fakeWriter.CreateVotingReturns(reverted, ethereum.ErrTransactionReverted)

			got, err := service.CreateVoting(ctx, "token", pair, "extend?")
			Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
			Expect(err.Error()).To(HavePrefix("createVoting: "))
			Expect(got).To(Equal(reverted))
		})

		It("should pass the vote choice and voting contract", func() {
			voting := common.HexToAddress("0x0a")
			_, err := service.Vote(ctx, "token", pair, voting, false)
			Expect(err).NotTo(HaveOccurred())

			_, to, v, yes := fakeWriter.VoteArgsForCall(0)
			Expect(to).To(Equal(pair))
			Expect(v).To(Equal(voting))
			Expect(yes).To(BeFalse())
		})

		It("should create campaigns through the factory", func() {
			call := ethereum.CreateCampaignCall{Name: "Save the bees", Target: big.NewInt(10), Categorie: "animals"}
			_, err := service.CreateCampaign(ctx, "token", call)
			Expect(err).NotTo(HaveOccurred())

			_, sent := fakeWriter.CreateCrowdFundingArgsForCall(0)
			Expect(sent).To(Equal(call))
		})
	})

	Describe("DonationURI", func() {
		It("should use the signer chain", func() {
			fakeWriter.ChainIDReturns(big.NewInt(5))
			Expect(service.DonationURI(pair, "hi", big.NewInt(9))).To(Equal("ethereum:" + pair.Hex() + "@5/donate?string=hi&value=9"))
		})
	})

	Describe("Categories", func() {
		It("should list every category once", func() {
			categories := core.Categories()
			Expect(categories).To(HaveLen(14))

			seen := map[string]bool{}
			for _, c := range categories {
				Expect(seen[c.Key]).To(BeFalse())
				seen[c.Key] = true
			}
			Expect(core.IsCategory("monthlyBills")).To(BeTrue())
			Expect(core.IsCategory("crypto")).To(BeFalse())
		})

		It("should flag the important ones", func() {
			important := []string{}
			for _, c := range core.Categories() {
				if c.Important {
					important = append(important, c.Key)
				}
			}
			Expect(important).To(ConsistOf("startup", "emergencies", "environment", "medical", "charity", "other"))
		})
	})
})
