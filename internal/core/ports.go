package core

import (
	"context"
	"math/big"

	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/projection"
	"crowdfunder/internal/repository"
	tokenIssuer "crowdfunder/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CampaignIndex . CampaignIndex
type CampaignIndex interface {
	GetCampaigns(ctx context.Context) ([]projection.Record, error)
	GetCampaignByPair(ctx context.Context, pair common.Address) (projection.Record, error)
}

//counterfeiter:generate -o fake -fake-name UserStore . UserStore
type UserStore interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	FetchDonations(ctx context.Context, pair common.Address) ([]ethereum.Donation, error)
	FetchWithdrawals(ctx context.Context, pair common.Address) ([]ethereum.Withdrawal, error)
	FetchVotings(ctx context.Context, pair common.Address) ([]ethereum.Voting, error)
	FetchLatestVote(ctx context.Context, voting common.Address) (*ethereum.VoteTally, error)
}

//counterfeiter:generate -o fake -fake-name ChainWriter . ChainWriter
type ChainWriter interface {
	ChainID() *big.Int
	CreateCrowdFunding(ctx context.Context, call ethereum.CreateCampaignCall) (ethereum.TxReceipt, error)
	Donate(ctx context.Context, pair common.Address, message string, value *big.Int) (ethereum.TxReceipt, error)
	WithdrawUser(ctx context.Context, pair common.Address) (ethereum.TxReceipt, error)
	WithdrawOwner(ctx context.Context, pair common.Address) (ethereum.TxReceipt, error)
	CreateVoting(ctx context.Context, pair common.Address, message string) (ethereum.TxReceipt, error)
	Vote(ctx context.Context, pair, voting common.Address, yes bool) (ethereum.TxReceipt, error)
}

//counterfeiter:generate -o fake -fake-name PriceOracle . PriceOracle
type PriceOracle interface {
	EthereumUSD(ctx context.Context) (float64, error)
}
