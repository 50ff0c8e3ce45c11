package memory

import (
	"context"
	"math/big"
	"sync"

	"crowdfunder/internal/projection"
	"crowdfunder/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Store keeps projected campaigns in process memory. It satisfies the same
// contracts as repository.CampaignRepository and loses everything on exit.
type Store struct {
	mu          sync.RWMutex
	campaigns   map[string]projection.Record
	checkpoints map[string]uint64
	users       map[string]repository.User
}

func NewStore(users ...repository.User) *Store {
	s := &Store{
		campaigns:   make(map[string]projection.Record),
		checkpoints: make(map[string]uint64),
		users:       make(map[string]repository.User, len(users)),
	}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *Store) UpsertCampaign(ctx context.Context, rec projection.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.campaigns[hexutil.Encode(rec.ID)] = clone(rec)
	return nil
}

func (s *Store) GetCampaigns(ctx context.Context) ([]projection.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]projection.Record, 0, len(s.campaigns))
	for _, rec := range s.campaigns {
		records = append(records, clone(rec))
	}
	return records, nil
}

func (s *Store) GetCampaignByPair(ctx context.Context, pair common.Address) (projection.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.campaigns {
		if rec.Pair == pair {
			return clone(rec), nil
		}
	}
	return projection.Record{}, repository.ErrCampaignNotFound
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.campaigns = make(map[string]projection.Record)
	s.checkpoints = make(map[string]uint64)
	return nil
}

func (s *Store) GetCheckpoint(ctx context.Context, name string) (uint64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	block, ok := s.checkpoints[name]
	return block, ok, nil
}

func (s *Store) SaveCheckpoint(ctx context.Context, name string, block uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkpoints[name] = block
	return nil
}

func (s *Store) GetUserFromDB(ctx context.Context, username string) (repository.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func clone(rec projection.Record) projection.Record {
	out := rec
	out.ID = append([]byte(nil), rec.ID...)
	out.Target = copyInt(rec.Target)
	out.TimeLimit = copyInt(rec.TimeLimit)
	out.BlockNumber = copyInt(rec.BlockNumber)
	out.BlockTimestamp = copyInt(rec.BlockTimestamp)
	return out
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
