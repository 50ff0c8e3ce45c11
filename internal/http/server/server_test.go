package server_test

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"crowdfunder/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func freePort() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
}

var _ = Describe("HTTPServer", func() {
	var (
		srv     *server.HTTPServer
		port    string
		errChan <-chan error
	)

	BeforeEach(func() {
		port = freePort()
		mux := http.NewServeMux()
		mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "pong")
		})

		srv = server.NewHTTP(zap.NewNop().Sugar(), mux, port)
		errChan = srv.Run()
	})

	It("should serve until shut down", func() {
		url := fmt.Sprintf("http://127.0.0.1:%s/ping", port)
		Eventually(func() (string, error) {
			resp, err := http.Get(url)
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			return string(body), err
		}).Should(Equal("pong"))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	When("the port is taken", func() {
		It("should report the listen error", func() {
			other := server.NewHTTP(zap.NewNop().Sugar(), http.NewServeMux(), port)
			Eventually(func() error {
				_, err := http.Get(fmt.Sprintf("http://127.0.0.1:%s/ping", port))
				return err
			}).Should(Succeed())

			Eventually(other.Run()).Should(Receive(HaveOccurred()))
			Expect(srv.Shutdown()).To(Succeed())
		})
	})
})
