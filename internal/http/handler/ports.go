package handler

import (
	"context"
	"math/big"
	"net/http"

	"crowdfunder/internal/core"
	"crowdfunder/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name CrowdfundingService . CrowdfundingService
type CrowdfundingService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ListCampaigns(ctx context.Context, q core.CatalogQuery) (core.Catalog, error)
	GetCampaign(ctx context.Context, pair common.Address) (core.CampaignDetail, error)
	DonationURI(pair common.Address, message string, amount *big.Int) string
	CreateCampaign(ctx context.Context, token string, call ethereum.CreateCampaignCall) (ethereum.TxReceipt, error)
	Donate(ctx context.Context, token string, pair common.Address, message string, amount *big.Int) (ethereum.TxReceipt, error)
	WithdrawUser(ctx context.Context, token string, pair common.Address) (ethereum.TxReceipt, error)
	WithdrawOwner(ctx context.Context, token string, pair common.Address) (ethereum.TxReceipt, error)
	CreateVoting(ctx context.Context, token string, pair common.Address, message string) (ethereum.TxReceipt, error)
	Vote(ctx context.Context, token string, pair, voting common.Address, yes bool) (ethereum.TxReceipt, error)
}
