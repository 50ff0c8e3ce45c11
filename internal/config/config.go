package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/joho/godotenv"
)

var (
	errInvalidAddress  error = errors.New("invalid factory address")
	errInvalidKey      error = errors.New("invalid signer private key")
	errInvalidInterval error = errors.New("index interval must be positive")
	errInvalidChainID  error = errors.New("chain id must not be negative")
)

type App struct {
	Port            string `env:"API_PORT" envDefault:"8080"`
	NodeURL         string `env:"ETH_NODE_URL,required"`
	DBConnectionURL string `env:"DB_CONNECTION_URL,required"`
	JWTSecret       string `env:"JWT_SECRET,required"`

	FactoryAddress   string        `env:"FACTORY_ADDRESS,required"`
	SignerPrivateKey string        `env:"SIGNER_PRIVATE_KEY,required"`
	ChainID          int64         `env:"CHAIN_ID" envDefault:"0"`
	GasLimit         uint64        `env:"GAS_LIMIT" envDefault:"1000000"`
	WriteTimeout     time.Duration `env:"WRITE_TIMEOUT" envDefault:"2m"`

	StartBlock     uint64        `env:"START_BLOCK" envDefault:"0"`
	Confirmations  uint64        `env:"CONFIRMATIONS" envDefault:"0"`
	BlockBatchSize uint64        `env:"BLOCK_BATCH_SIZE" envDefault:"2000"`
	IndexInterval  time.Duration `env:"INDEX_INTERVAL" envDefault:"15s"`
	Reindex        bool          `env:"REINDEX" envDefault:"false"`

	PriceFeedURL  string        `env:"PRICE_FEED_URL" envDefault:"https://api.coincap.io/v2/assets/ethereum"`
	PriceCacheTTL time.Duration `env:"PRICE_CACHE_TTL" envDefault:"1m"`

	IPFSGatewayURL string `env:"IPFS_GATEWAY_URL" envDefault:"https://ipfs.io"`

	OperatorUsername     string `env:"OPERATOR_USERNAME"`
	OperatorPasswordHash string `env:"OPERATOR_PASSWORD_HASH"`

	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// NewApp reads the configuration from the environment. Variables found in
// envFiles are loaded first without overriding ones already set; missing
// files are skipped.
func NewApp(envFiles ...string) (App, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return App{}, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	app, err := env.ParseAs[App]()
	if err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}

	if err := app.validate(); err != nil {
		return App{}, err
	}

	return app, nil
}

func (a App) validate() error {
	if !common.IsHexAddress(a.FactoryAddress) {
		return fmt.Errorf("%w: %q", errInvalidAddress, a.FactoryAddress)
	}
	if _, err := crypto.HexToECDSA(strings.TrimPrefix(a.SignerPrivateKey, "0x")); err != nil {
		return errInvalidKey
	}
	if a.IndexInterval <= 0 {
		return errInvalidInterval
	}
	if a.ChainID < 0 {
		return fmt.Errorf("%w: %d", errInvalidChainID, a.ChainID)
	}
	return nil
}
