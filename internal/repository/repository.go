package repository

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"crowdfunder/internal/db"
	"crowdfunder/internal/projection"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrUserNotFound     error = errors.New("user not found")
	ErrCampaignNotFound error = errors.New("campaign not found")
)

type CampaignRepository struct {
	db Storage
}

func NewCampaignRepository(db Storage) *CampaignRepository {
	return &CampaignRepository{
		db: db,
	}
}

// MigrateAndSeed creates the tables and inserts users when none exist yet.
func (r *CampaignRepository) MigrateAndSeed(users ...User) error {
	err := r.db.MigrateModels(&Campaign{}, &Checkpoint{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	if len(users) == 0 {
		return nil
	}

	err = r.db.Seed(&users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *CampaignRepository) UpsertCampaign(ctx context.Context, rec projection.Record) error {
	campaign := toCampaign(rec)
	if err := r.db.Upsert(ctx, &campaign); err != nil {
		return fmt.Errorf("upsert campaign %s: %w", campaign.ID, err)
	}
	return nil
}

func (r *CampaignRepository) GetCampaigns(ctx context.Context) ([]projection.Record, error) {
	var campaigns []Campaign
	if err := r.db.GetAll(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("get campaigns: %w", err)
	}

	records := make([]projection.Record, 0, len(campaigns))
	for _, c := range campaigns {
		rec, err := toRecord(c)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *CampaignRepository) GetCampaignByPair(ctx context.Context, pair common.Address) (projection.Record, error) {
	var campaign Campaign

	err := r.db.GetOneBy(ctx, "pair", pair.Hex(), &campaign)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return projection.Record{}, ErrCampaignNotFound
		}
		return projection.Record{}, fmt.Errorf("get campaign by pair: %w", err)
	}

	return toRecord(campaign)
}

// Reset removes every projected record and indexing checkpoint.
func (r *CampaignRepository) Reset(ctx context.Context) error {
	if err := r.db.DeleteAll(ctx, &Campaign{}); err != nil {
		return fmt.Errorf("reset campaigns: %w", err)
	}
	if err := r.db.DeleteAll(ctx, &Checkpoint{}); err != nil {
		return fmt.Errorf("reset checkpoints: %w", err)
	}
	return nil
}

func (r *CampaignRepository) GetCheckpoint(ctx context.Context, name string) (uint64, bool, error) {
	var checkpoint Checkpoint

	err := r.db.GetOneBy(ctx, "name", name, &checkpoint)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get checkpoint %q: %w", name, err)
	}

	return checkpoint.LastBlock, true, nil
}

func (r *CampaignRepository) SaveCheckpoint(ctx context.Context, name string, block uint64) error {
	err := r.db.Upsert(ctx, &Checkpoint{Name: name, LastBlock: block})
	if err != nil {
		return fmt.Errorf("save checkpoint %q: %w", name, err)
	}
	return nil
}

func (r *CampaignRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func toCampaign(rec projection.Record) Campaign {
	return Campaign{
		ID:              hexutil.Encode(rec.ID),
		Pair:            rec.Pair.Hex(),
		Owner:           rec.Owner.Hex(),
		Name:            rec.Name,
		Description:     rec.Description,
		Target:          intString(rec.Target),
		Categorie:       rec.Categorie,
		TimeLimit:       intString(rec.TimeLimit),
		ImageCid:        rec.ImageCid,
		BlockNumber:     intString(rec.BlockNumber),
		BlockTimestamp:  intString(rec.BlockTimestamp),
		TransactionHash: rec.TransactionHash.Hex(),
	}
}

func toRecord(c Campaign) (projection.Record, error) {
	id, err := hexutil.Decode(c.ID)
	if err != nil {
		return projection.Record{}, fmt.Errorf("decode campaign id %q: %w", c.ID, err)
	}

	ints := map[string]string{
		"target":          c.Target,
		"time limit":      c.TimeLimit,
		"block number":    c.BlockNumber,
		"block timestamp": c.BlockTimestamp,
	}
	parsed := make(map[string]*big.Int, len(ints))
	for field, value := range ints {
		v, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return projection.Record{}, fmt.Errorf("parse %s of campaign %s: %q", field, c.ID, value)
		}
		parsed[field] = v
	}

	return projection.Record{
		ID:              id,
		Pair:            common.HexToAddress(c.Pair),
		Owner:           common.HexToAddress(c.Owner),
		Name:            c.Name,
		Description:     c.Description,
		Target:          parsed["target"],
		Categorie:       c.Categorie,
		TimeLimit:       parsed["time limit"],
		ImageCid:        c.ImageCid,
		BlockNumber:     parsed["block number"],
		BlockTimestamp:  parsed["block timestamp"],
		TransactionHash: common.HexToHash(c.TransactionHash),
	}, nil
}

func intString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
