package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/projection"
	"crowdfunder/internal/repository"
	tokenIssuer "crowdfunder/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrUserNotFound      error = errors.New("user not found")
	ErrCampaignNotFound  error = errors.New("campaign not found")
	ErrUnauthorized      error = errors.New("unauthorized")
)

const (
	DefaultWriteTimeout = 2 * time.Minute
	DefaultTallyWorkers = 8
	tokenExpiration     = 24
)

type Config struct {
	WriteTimeout time.Duration
	TallyWorkers int
}

// Crowdfunding serves campaign reads from the index and chain, and submits
// contract writes on behalf of authenticated operators.
type Crowdfunding struct {
	logs      *zap.SugaredLogger
	index     CampaignIndex
	users     UserStore
	jwtIssuer JWTIssuer
	reader    ChainReader
	writer    ChainWriter
	prices    PriceOracle
	cfg       Config
}

func NewCrowdfunding(
	logger *zap.SugaredLogger,
	index CampaignIndex,
	users UserStore,
	jwt JWTIssuer,
	reader ChainReader,
	writer ChainWriter,
	prices PriceOracle,
	cfg Config,
) *Crowdfunding {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.TallyWorkers <= 0 {
		cfg.TallyWorkers = DefaultTallyWorkers
	}
	return &Crowdfunding{
		logs:      logger,
		index:     index,
		users:     users,
		jwtIssuer: jwt,
		reader:    reader,
		writer:    writer,
		prices:    prices,
		cfg:       cfg,
	}
}

// Authenticate checks the provided username and password against the database. If the credentials are valid, it generates a JWT token for the user.
func (c *Crowdfunding) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := c.users.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: tokenExpiration,
	}
	token := c.jwtIssuer.Generate(tokenInfo)
	signed, err := c.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ListCampaigns returns one page of the catalog, ordered by creation block.
func (c *Crowdfunding) ListCampaigns(ctx context.Context, q CatalogQuery) (Catalog, error) {
	records, err := c.index.GetCampaigns(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("get campaigns: %w", err)
	}

	filtered := FilterCampaigns(records, q.Categorie, q.Name)
	SortCampaigns(filtered)

	limit, page := normalizePage(q.Limit, q.Page)
	start := min((page-1)*limit, len(filtered))
	end := min(start+limit, len(filtered))

	c.logs.Debugw("campaigns listed",
		"categorie", q.Categorie,
		"name", q.Name,
		"total", len(filtered),
		"page", page)

	return Catalog{
		Campaigns: filtered[start:end],
		Total:     len(filtered),
		Page:      page,
		Limit:     limit,
	}, nil
}

// GetCampaign loads a campaign by its contract address together with its
// donations, withdrawals and votings read from the chain.
func (c *Crowdfunding) GetCampaign(ctx context.Context, pair common.Address) (CampaignDetail, error) {
	rec, err := c.index.GetCampaignByPair(ctx, pair)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return CampaignDetail{}, ErrCampaignNotFound
		}
		return CampaignDetail{}, fmt.Errorf("get campaign by pair: %w", err)
	}

	var (
		wg          sync.WaitGroup
		donations   []ethereum.Donation
		withdrawals []ethereum.Withdrawal
		votings     []ethereum.Voting
		errs        = make([]error, 3)
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		donations, errs[0] = c.reader.FetchDonations(ctx, pair)
	}()
	go func() {
		defer wg.Done()
		withdrawals, errs[1] = c.reader.FetchWithdrawals(ctx, pair)
	}()
	go func() {
		defer wg.Done()
		votings, errs[2] = c.reader.FetchVotings(ctx, pair)
	}()
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return CampaignDetail{}, fmt.Errorf("read campaign logs: %w", err)
	}

	details, err := c.tallies(ctx, votings)
	if err != nil {
		return CampaignDetail{}, fmt.Errorf("read voting tallies: %w", err)
	}

	price, err := c.prices.EthereumUSD(ctx)
	if err != nil {
		c.logs.Warnw("ethereum price unavailable", "error", err)
		price = 0
	}

	return CampaignDetail{
		Campaign:    rec,
		Donations:   donations,
		Withdrawals: withdrawals,
		Votings:     details,
		PriceUSD:    price,
	}, nil
}

// DonationURI builds the payment request a wallet can scan to call donate
// on the campaign with message and amount wei attached.
func (c *Crowdfunding) DonationURI(pair common.Address, message string, amount *big.Int) string {
	return ethereum.PaymentURI(pair, c.writer.ChainID(), message, amount)
}

func (c *Crowdfunding) CreateCampaign(ctx context.Context, token string, call ethereum.CreateCampaignCall) (ethereum.TxReceipt, error) {
	return c.write(ctx, token, "createCrowdFunding", common.Address{}, func(ctx context.Context) (ethereum.TxReceipt, error) {
		return c.writer.CreateCrowdFunding(ctx, call)
	})
}

func (c *Crowdfunding) Donate(ctx context.Context, token string, pair common.Address, message string, amount *big.Int) (ethereum.TxReceipt, error) {
	return c.write(ctx, token, "donate", pair, func(ctx context.Context) (ethereum.TxReceipt, error) {
		return c.writer.Donate(ctx, pair, message, amount)
	})
}

func (c *Crowdfunding) WithdrawUser(ctx context.Context, token string, pair common.Address) (ethereum.TxReceipt, error) {
	return c.write(ctx, token, "withdrawUser", pair, func(ctx context.Context) (ethereum.TxReceipt, error) {
		return c.writer.WithdrawUser(ctx, pair)
	})
}

func (c *Crowdfunding) WithdrawOwner(ctx context.Context, token string, pair common.Address) (ethereum.TxReceipt, error) {
	return c.write(ctx, token, "withdrawOwner", pair, func(ctx context.Context) (ethereum.TxReceipt, error) {
		return c.writer.WithdrawOwner(ctx, pair)
	})
}

func (c *Crowdfunding) CreateVoting(ctx context.Context, token string, pair common.Address, message string) (ethereum.TxReceipt, error) {
	return c.write(ctx, token, "createVoting", pair, func(ctx context.Context) (ethereum.TxReceipt, error) {
		return c.writer.CreateVoting(ctx, pair, message)
	})
}

func (c *Crowdfunding) Vote(ctx context.Context, token string, pair, voting common.Address, yes bool) (ethereum.TxReceipt, error) {
	return c.write(ctx, token, "vote", pair, func(ctx context.Context) (ethereum.TxReceipt, error) {
		return c.writer.Vote(ctx, pair, voting, yes)
	})
}

// FilterCampaigns keeps records of the given categorie whose name contains
// term, ignoring case. Empty arguments match everything.
func FilterCampaigns(records []projection.Record, categorie, term string) []projection.Record {
	term = strings.ToLower(term)
	out := make([]projection.Record, 0, len(records))
	for _, rec := range records {
		if categorie != "" && rec.Categorie != categorie {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(rec.Name), term) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// SortCampaigns orders records by block number, then by id.
func SortCampaigns(records []projection.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if cmp := records[i].BlockNumber.Cmp(records[j].BlockNumber); cmp != 0 {
			return cmp < 0
		}
		return bytes.Compare(records[i].ID, records[j].ID) < 0
	})
}

func normalizePage(limit, page int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page <= 0 {
		page = 1
	}
	return limit, page
}

// write authorizes the caller and runs call once. The transaction is not
// abandoned when the caller goes away; only the write timeout bounds the wait.
func (c *Crowdfunding) write(
	ctx context.Context,
	token string,
	operation string,
	pair common.Address,
	call func(context.Context) (ethereum.TxReceipt, error),
) (ethereum.TxReceipt, error) {
	subject, err := c.authorize(token)
	if err != nil {
		return ethereum.TxReceipt{}, err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.WriteTimeout)
	defer cancel()

	receipt, err := call(ctx)
	if err != nil {
		c.logs.Errorw("contract write failed",
			"operation", operation,
			"pair", pair.Hex(),
			"user", subject,
			"transaction", receipt.TransactionHash,
			"error", err)
		return receipt, fmt.Errorf("%s: %w", operation, err)
	}

	c.logs.Infow("contract write confirmed",
		"operation", operation,
		"pair", pair.Hex(),
		"user", subject,
		"transaction", receipt.TransactionHash,
		"block", receipt.BlockNumber)

	return receipt, nil
}

func (c *Crowdfunding) authorize(token string) (string, error) {
	claims, err := c.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w: %w", err, ErrUnauthorized)
	}

	subject, err := tokenIssuer.Subject(claims)
	if err != nil {
		return "", fmt.Errorf("read jwt subject: %w: %w", err, ErrUnauthorized)
	}
	return subject, nil
}

// tallies fetches the latest vote of every voting on a bounded pool.
func (c *Crowdfunding) tallies(ctx context.Context, votings []ethereum.Voting) ([]VotingDetail, error) {
	details := make([]VotingDetail, len(votings))
	if len(votings) == 0 {
		return details, nil
	}

	pool, err := ants.NewPool(min(c.cfg.TallyWorkers, len(votings)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	errs := make([]error, len(votings))
	for i, v := range votings {
		details[i].Voting = v

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			details[i].Tally, errs[i] = c.reader.FetchLatestVote(ctx, v.VotingPair)
		})
		if err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit tally of %s: %w", v.VotingPair.Hex(), err)
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return details, nil
}
