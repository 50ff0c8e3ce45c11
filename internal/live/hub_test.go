package live_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"crowdfunder/internal/live"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Hub", func() {
	var (
		hub    *live.Hub
		server *httptest.Server
		cancel context.CancelFunc
		url    string
	)

	dial := func() *websocket.Conn {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		Expect(err).NotTo(HaveOccurred())
		return conn
	}

	BeforeEach(func() {
		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())

		hub = live.NewHub(zap.NewNop().Sugar(), time.Hour)
		go hub.Run(ctx)

		server = httptest.NewServer(hub)
		url = "ws" + strings.TrimPrefix(server.URL, "http")
	})

	AfterEach(func() {
		cancel()
		server.Close()
	})

	It("should deliver published messages to every client", func() {
		first := dial()
		defer first.Close()
		second := dial()
		defer second.Close()

		Eventually(hub.ClientCount).Should(Equal(2))
		Expect(hub.Publish(map[string]string{"type": "campaignCreated", "name": "Save the bees"})).To(Succeed())

		for _, conn := range []*websocket.Conn{first, second} {
			Expect(conn.SetReadDeadline(time.Now().Add(2 * time.Second))).To(Succeed())
			kind, msg, err := conn.ReadMessage()
			Expect(err).NotTo(HaveOccurred())
			Expect(kind).To(Equal(websocket.TextMessage))
			Expect(msg).To(MatchJSON(`{"type":"campaignCreated","name":"Save the bees"}`))
		}
	})

	It("should forget clients that disconnect", func() {
		conn := dial()
		Eventually(hub.ClientCount).Should(Equal(1))

		Expect(conn.Close()).To(Succeed())
		Eventually(hub.ClientCount).Should(Equal(0))
	})

	It("should reject values that do not encode", func() {
		Expect(hub.Publish(func() {})).To(MatchError(ContainSubstring("encode message")))
	})

	It("should close clients and refuse messages after shutdown", func() {
		conn := dial()
		defer conn.Close()
		Eventually(hub.ClientCount).Should(Equal(1))

		cancel()

		Expect(conn.SetReadDeadline(time.Now().Add(2 * time.Second))).To(Succeed())
		_, _, err := conn.ReadMessage()
		Expect(websocket.IsCloseError(err, websocket.CloseGoingAway)).To(BeTrue())

		Eventually(func() error { return hub.Publish("late") }).Should(MatchError(live.ErrHubClosed))
		Expect(hub.ClientCount()).To(Equal(0))
	})
})
