package price_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"crowdfunder/internal/price"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Coincap", func() {
	var (
		server *httptest.Server
		hits   atomic.Int32
		status int
		body   string
		feed   *price.Coincap
		ctx    context.Context
	)

	BeforeEach(func() {
		hits.Store(0)
		status = http.StatusOK
		body = `{"data":{"id":"ethereum","priceUsd":"3021.4471"}}`
		ctx = context.Background()

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	})

	JustBeforeEach(func() {
		feed = price.NewCoincap(zap.NewNop().Sugar(), server.URL, time.Minute)
	})

	AfterEach(func() {
		server.Close()
	})

	It("should parse the dollar price", func() {
		usd, err := feed.EthereumUSD(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(usd).To(BeNumerically("~", 3021.4471, 1e-9))
	})

	It("should serve repeated reads from the cache", func() {
		_, err := feed.EthereumUSD(ctx)
		Expect(err).NotTo(HaveOccurred())
		_, err = feed.EthereumUSD(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(hits.Load()).To(Equal(int32(1)))
	})

	When("the feed answers with an error status", func() {
		BeforeEach(func() {
			status = http.StatusTooManyRequests
		})

		It("should return an error and cache nothing", func() {
			_, err := feed.EthereumUSD(ctx)
			Expect(err).To(MatchError(price.ErrUnexpectedStatus))
			_, _ = feed.EthereumUSD(ctx)
			Expect(hits.Load()).To(Equal(int32(2)))
		})
	})

	When("the price is not a number", func() {
		BeforeEach(func() {
			body = `{"data":{"priceUsd":"n/a"}}`
		})

		It("should return an error", func() {
			_, err := feed.EthereumUSD(ctx)
			Expect(err).To(MatchError(price.ErrMalformedPrice))
		})
	})

	When("the body is not json", func() {
		BeforeEach(func() {
			body = `<html>`
		})

		It("should return an error", func() {
			_, err := feed.EthereumUSD(ctx)
			Expect(err).To(MatchError(ContainSubstring("decode price feed")))
		})
	})

	When("the context is already done", func() {
		It("should not call the feed", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := feed.EthereumUSD(cctx)
			Expect(err).To(MatchError(context.Canceled))
			Expect(hits.Load()).To(BeZero())
		})
	})
})

var _ = Describe("Cache", func() {
	It("should expire entries after the ttl", func() {
		now := time.Unix(1_700_000_000, 0)
		cache := price.NewCache[int](time.Minute)
		cache.SetClock(func() time.Time { return now })

		cache.Set("k", 7)
		v, ok := cache.Get("k")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(7))

		now = now.Add(2 * time.Minute)
		_, ok = cache.Get("k")
		Expect(ok).To(BeFalse())
	})

	It("should miss unknown keys", func() {
		_, ok := price.NewCache[string](time.Minute).Get("missing")
		Expect(ok).To(BeFalse())
	})
})
