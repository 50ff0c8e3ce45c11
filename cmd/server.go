package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"crowdfunder/internal/config"
	"crowdfunder/internal/core"
	"crowdfunder/internal/db"
	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/http/handler"
	"crowdfunder/internal/http/handler/middleware"
	"crowdfunder/internal/http/payload"
	"crowdfunder/internal/http/server"
	"crowdfunder/internal/indexer"
	"crowdfunder/internal/live"
	"crowdfunder/internal/price"
	"crowdfunder/internal/projection"
	"crowdfunder/internal/repository"
	"crowdfunder/internal/repository/memory"
	"crowdfunder/pkg/jwt"
	"crowdfunder/pkg/log"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"
)

const memoryScheme = "memory://"

// campaignStore is the query store shared by the projector, the indexer and
// the read side.
type campaignStore interface {
	projection.CampaignStore
	core.CampaignIndex
	core.UserStore
	indexer.CheckpointStore
	Reset(ctx context.Context) error
}

func Start() error {
	logger := log.NewZapLogger("crowdfunder", zapcore.InfoLevel)

	config, err := config.NewApp(".env")
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger = log.NewZapLogger("crowdfunder", log.ParseLevel(config.LogLevel), config.LogFile)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// query store
	store, closeStore, err := openStore(config)
	if err != nil {
		logger.Errorw("failed to open campaign store", "error", err)
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Errorw("failed to close campaign store", "error", err)
		}
	}()

	if config.Reindex {
		if err := store.Reset(ctx); err != nil {
			logger.Errorw("failed to reset campaign store", "error", err)
			return err
		}
		logger.Infow("campaign store reset, reindexing", "start_block", config.StartBlock)
	}

	// chain
	client, err := ethclient.DialContext(ctx, config.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return err
	}
	defer client.Close()

	chainID := big.NewInt(config.ChainID)
	if chainID.Sign() == 0 {
		chainID, err = client.ChainID(ctx)
		if err != nil {
			logger.Errorw("failed to read chain id", "error", err)
			return err
		}
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(config.SignerPrivateKey, "0x"))
	if err != nil {
		logger.Errorw("failed to load signer key", "error", err)
		return err
	}

	factory := common.HexToAddress(config.FactoryAddress)
	reader, err := ethereum.NewEventReader(client, factory)
	if err != nil {
		logger.Errorw("failed to create event reader", "error", err)
		return err
	}

	writer, err := ethereum.NewWriter(client, key, chainID, factory, config.GasLimit)
	if err != nil {
		logger.Errorw("failed to create transaction writer", "error", err)
		return err
	}

	logger.Infow("ethereum connected",
		"chain_id", chainID.String(),
		"factory", factory.Hex(),
		"sender", writer.Sender().Hex())

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// crowdfunding
	crowdfunding := core.NewCrowdfunding(
		logger,
		store,
		store,
		jwtService,
		reader,
		writer,
		price.NewCoincap(logger, config.PriceFeedURL, config.PriceCacheTTL),
		core.Config{WriteTimeout: config.WriteTimeout})

	// live feed
	hub := live.NewHub(logger, live.DefaultPingInterval)
	go hub.Run(ctx)

	// indexer
	idx := indexer.NewIndexer(
		logger,
		reader,
		projection.NewProjector(logger, store),
		store,
		hub,
		indexer.Config{
			StartBlock:    config.StartBlock,
			Confirmations: config.Confirmations,
			BatchSize:     config.BlockBatchSize,
		})
	if err := idx.Start(ctx, config.IndexInterval); err != nil {
		logger.Errorw("failed to start indexer", "error", err)
		return err
	}
	defer func() {
		if err := idx.Stop(); err != nil {
			logger.Errorw("failed to stop indexer", "error", err)
		}
	}()

	// handler
	cfHlr := handler.NewCrowdfundingHandler(
		logger,
		payload.Decoder{},
		crowdfunding,
		config.IPFSGatewayURL)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	registerRoutes(mux, cfHlr, hub)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func registerRoutes(mux *http.ServeMux, h *handler.CrowdfundingHandler, hub *live.Hub) {
	mux.HandleFunc(handler.Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(handler.ListCategories, h.HandleListCategories)
	mux.HandleFunc(handler.ListCampaigns, h.HandleListCampaigns)
	mux.HandleFunc(handler.GetCampaign, h.HandleGetCampaign)
	mux.HandleFunc(handler.GetDonationQR, h.HandleDonationQRCode)
	mux.HandleFunc(handler.CreateCampaign, h.HandleCreateCampaign)
	mux.HandleFunc(handler.Donate, h.HandleDonate)
	mux.HandleFunc(handler.WithdrawUser, h.HandleWithdrawUser)
	mux.HandleFunc(handler.WithdrawOwner, h.HandleWithdrawOwner)
	mux.HandleFunc(handler.CreateVoting, h.HandleCreateVoting)
	mux.HandleFunc(handler.Vote, h.HandleVote)
	mux.Handle(handler.Live, hub)
}

// openStore picks the query store from the connection url. memory:// keeps
// everything in process; any other url goes through gorm.
func openStore(app config.App) (campaignStore, func() error, error) {
	users := operators(app)

	if strings.HasPrefix(app.DBConnectionURL, memoryScheme) {
		return memory.NewStore(users...), func() error { return nil }, nil
	}

	dbConn, err := db.Open(app.DBConnectionURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	// repository
	repo := repository.NewCampaignRepository(dbConn)
	if err := repo.MigrateAndSeed(users...); err != nil {
		return nil, nil, errors.Join(err, dbConn.Close())
	}

	return repo, dbConn.Close, nil
}

func operators(app config.App) []repository.User {
	if app.OperatorUsername == "" || app.OperatorPasswordHash == "" {
		return nil
	}
	return []repository.User{{
		ID:           uuid.NewString(),
		Username:     app.OperatorUsername,
		PasswordHash: app.OperatorPasswordHash,
	}}
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
