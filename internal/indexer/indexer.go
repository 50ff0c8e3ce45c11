package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const (
	CheckpointName   = "fundingContractCreated"
	DefaultBatchSize = 2000
	jobName          = "index-campaigns"
)

var ErrAlreadyStarted = errors.New("indexer already started")

type Config struct {
	StartBlock    uint64
	Confirmations uint64
	BatchSize     uint64
}

// Indexer pulls fundingContractCreated logs in block order and feeds them to
// the projector one at a time. Progress is saved after every fully applied
// batch, so a failed batch is retried from its first block on the next run.
type Indexer struct {
	logs        *zap.SugaredLogger
	source      EventSource
	projector   Projector
	checkpoints CheckpointStore
	feed        Broadcaster
	cfg         Config

	mu        sync.Mutex
	scheduler gocron.Scheduler
}

func NewIndexer(
	logger *zap.SugaredLogger,
	source EventSource,
	projector Projector,
	checkpoints CheckpointStore,
	feed Broadcaster,
	cfg Config,
) *Indexer {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	return &Indexer{
		logs:        logger,
		source:      source,
		projector:   projector,
		checkpoints: checkpoints,
		feed:        feed,
		cfg:         cfg,
	}
}

// Sync applies every confirmed log that has not been indexed yet and returns
// the number of projected records.
func (i *Indexer) Sync(ctx context.Context) (int, error) {
	head, err := i.source.LatestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("latest block: %w", err)
	}
	if head < i.cfg.Confirmations {
		return 0, nil
	}
	safe := head - i.cfg.Confirmations

	from := i.cfg.StartBlock
	last, ok, err := i.checkpoints.GetCheckpoint(ctx, CheckpointName)
	if err != nil {
		return 0, fmt.Errorf("get checkpoint: %w", err)
	}
	if ok {
		from = last + 1
	}

	applied := 0
	for from <= safe {
		to := min(from+i.cfg.BatchSize-1, safe)

		events, err := i.source.FetchCampaignCreated(ctx, from, to)
		if err != nil {
			return applied, fmt.Errorf("fetch blocks %d-%d: %w", from, to, err)
		}

		for _, evt := range events {
			rec, err := i.projector.Handle(ctx, toProjection(evt))
			if err != nil {
				return applied, fmt.Errorf("project log %s/%d: %w", evt.TransactionHash.Hex(), evt.LogIndex, err)
			}
			applied++
			i.publish(toNotification(rec))
		}

		if err := i.checkpoints.SaveCheckpoint(ctx, CheckpointName, to); err != nil {
			return applied, fmt.Errorf("save checkpoint: %w", err)
		}

		i.logs.Debugw("blocks indexed", "from", from, "to", to, "events", len(events))
		from = to + 1
	}

	return applied, nil
}

// Start runs Sync every interval until Stop is called. A run never overlaps
// the previous one.
func (i *Indexer) Start(ctx context.Context, interval time.Duration) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.scheduler != nil {
		return ErrAlreadyStarted
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { i.run(ctx) }),
		gocron.WithName(jobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("register job %s: %w", jobName, err)
	}

	i.scheduler = s
	s.Start()

	i.logs.Infow("indexer started", "interval", interval.String(), "start_block", i.cfg.StartBlock)
	return nil
}

func (i *Indexer) Stop() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.scheduler == nil {
		return nil
	}
	if err := i.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	i.scheduler = nil
	i.logs.Infow("indexer stopped")
	return nil
}

func (i *Indexer) run(ctx context.Context) {
	n, err := i.Sync(ctx)
	if err != nil {
		i.logs.Errorw("index campaigns", "error", err, "applied", n)
		return
	}
	if n > 0 {
		i.logs.Infow("campaigns indexed", "count", n)
	}
}

func (i *Indexer) publish(n Notification) {
	if i.feed == nil {
		return
	}
	if err := i.feed.Publish(n); err != nil {
		i.logs.Warnw("publish notification", "error", err, "pair", n.Pair)
	}
}
