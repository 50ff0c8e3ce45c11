package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// DefaultGasLimit is the gas ceiling attached to every contract call.
const DefaultGasLimit uint64 = 1_000_000

var ReceiptPollInterval = time.Second

var (
	ErrNoTransaction       = errors.New("no transaction produced")
	ErrTransactionReverted = errors.New("transaction reverted")
)

// Writer submits contract calls signed with a single operator key and waits
// for one confirmation of each.
type Writer struct {
	client    EthClient
	opts      *bind.TransactOpts
	chainID   *big.Int
	factory   common.Address
	gasLimit  uint64
	contracts contracts
}

func NewWriter(ethClient EthClient, key *ecdsa.PrivateKey, chainID *big.Int, factory common.Address, gasLimit uint64) (*Writer, error) {
	c, err := parseContracts()
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}

	if gasLimit == 0 {
		gasLimit = DefaultGasLimit
	}

	return &Writer{
		client:    ethClient,
		opts:      opts,
		chainID:   new(big.Int).Set(chainID),
		factory:   factory,
		gasLimit:  gasLimit,
		contracts: c,
	}, nil
}

func (w *Writer) ChainID() *big.Int {
	return new(big.Int).Set(w.chainID)
}

func (w *Writer) Sender() common.Address {
	return w.opts.From
}

func (w *Writer) CreateCrowdFunding(ctx context.Context, call CreateCampaignCall) (TxReceipt, error) {
	data, err := w.contracts.factory.Pack(methodCreateCrowdFunding,
		call.Name, call.Description, call.Target, call.Categorie, call.TimeLimit, call.ImageCid)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("pack %s: %w", methodCreateCrowdFunding, err)
	}
	return w.transact(ctx, w.factory, nil, data)
}

func (w *Writer) Donate(ctx context.Context, pair common.Address, message string, value *big.Int) (TxReceipt, error) {
	data, err := w.contracts.crowdfunding.Pack(methodDonate, message)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("pack %s: %w", methodDonate, err)
	}
	return w.transact(ctx, pair, value, data)
}

func (w *Writer) WithdrawUser(ctx context.Context, pair common.Address) (TxReceipt, error) {
	data, err := w.contracts.crowdfunding.Pack(methodWithdrawUser)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("pack %s: %w", methodWithdrawUser, err)
	}
	return w.transact(ctx, pair, nil, data)
}

func (w *Writer) WithdrawOwner(ctx context.Context, pair common.Address) (TxReceipt, error) {
	data, err := w.contracts.crowdfunding.Pack(methodWithdrawOwner)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("pack %s: %w", methodWithdrawOwner, err)
	}
	return w.transact(ctx, pair, nil, data)
}

func (w *Writer) CreateVoting(ctx context.Context, pair common.Address, message string) (TxReceipt, error) {
	data, err := w.contracts.crowdfunding.Pack(methodCreateVoting, message)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("pack %s: %w", methodCreateVoting, err)
	}
	return w.transact(ctx, pair, nil, data)
}

// Vote is sent to the campaign contract, which forwards it to voting.
func (w *Writer) Vote(ctx context.Context, pair, voting common.Address, yes bool) (TxReceipt, error) {
	choice := big.NewInt(0)
	if yes {
		choice = big.NewInt(1)
	}

	data, err := w.contracts.crowdfunding.Pack(methodVote, choice, voting)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("pack %s: %w", methodVote, err)
	}
	return w.transact(ctx, pair, nil, data)
}

func (w *Writer) transact(ctx context.Context, to common.Address, value *big.Int, data []byte) (TxReceipt, error) {
	nonce, err := w.client.PendingNonceAt(ctx, w.opts.From)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("get pending nonce: %w", err)
	}

	gasPrice, err := w.client.SuggestGasPrice(ctx)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("suggest gas price: %w", err)
	}

	if value == nil {
		value = new(big.Int)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      w.gasLimit,
		To:       &to,
		Value:    value,
		Data:     data,
	})

	signed, err := w.opts.Signer(w.opts.From, tx)
	if err != nil {
		return TxReceipt{}, fmt.Errorf("sign transaction: %w", err)
	}
	if signed == nil {
		return TxReceipt{}, ErrNoTransaction
	}

	if err := w.client.SendTransaction(ctx, signed); err != nil {
		return TxReceipt{}, fmt.Errorf("send transaction: %w", err)
	}

	receipt, err := w.waitMined(ctx, signed.Hash())
	if err != nil {
		return TxReceipt{}, fmt.Errorf("wait for %s: %w", signed.Hash().Hex(), err)
	}

	res := TxReceipt{
		TransactionHash: signed.Hash().Hex(),
		GasUsed:         receipt.GasUsed,
		Status:          receipt.Status,
	}
	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}

	if receipt.Status == types.ReceiptStatusFailed {
		return res, fmt.Errorf("%s: %w", res.TransactionHash, ErrTransactionReverted)
	}

	return res, nil
}

func (w *Writer) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(ReceiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := w.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, geth.NotFound) {
			return nil, fmt.Errorf("get transaction receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
