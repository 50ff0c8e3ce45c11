package price

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	DefaultURL      = "https://api.coincap.io/v2/assets/ethereum"
	DefaultCacheTTL = time.Minute
	defaultTimeout  = 5 * time.Second
	cacheKey        = "ethereum"
)

var (
	ErrUnexpectedStatus error = errors.New("unexpected price feed status")
	ErrMalformedPrice   error = errors.New("malformed price")
)

type assetResponse struct {
	Data struct {
		PriceUSD string `json:"priceUsd"`
	} `json:"data"`
}

// Coincap reads the ETH/USD rate from a coincap style asset endpoint and
// keeps it for the cache TTL.
type Coincap struct {
	logs   *zap.SugaredLogger
	client *fasthttp.Client
	url    string
	cache  *Cache[float64]
}

func NewCoincap(logger *zap.SugaredLogger, url string, ttl time.Duration) *Coincap {
	if url == "" {
		url = DefaultURL
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Coincap{
		logs: logger,
		client: &fasthttp.Client{
			Name:         "crowdfunder",
			ReadTimeout:  defaultTimeout,
			WriteTimeout: defaultTimeout,
		},
		url:   url,
		cache: NewCache[float64](ttl),
	}
}

func (c *Coincap) EthereumUSD(ctx context.Context) (float64, error) {
	if v, ok := c.cache.Get(cacheKey); ok {
		return v, nil
	}

	timeout := defaultTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		return 0, fmt.Errorf("request price feed: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	var asset assetResponse
	if err := json.Unmarshal(resp.Body(), &asset); err != nil {
		return 0, fmt.Errorf("decode price feed: %w", err)
	}

	usd, err := strconv.ParseFloat(asset.Data.PriceUSD, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrMalformedPrice, asset.Data.PriceUSD, err)
	}

	c.cache.Set(cacheKey, usd)
	c.logs.Debugw("ethereum price refreshed", "usd", usd)

	return usd, nil
}
