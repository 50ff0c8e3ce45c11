package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"crowdfunder/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var (
		app config.App
		err error
		key string
	)

	BeforeEach(func() {
		key = strings.Repeat("ab", 32)
		GinkgoT().Setenv("ETH_NODE_URL", "https://sepolia.example.org")
		GinkgoT().Setenv("DB_CONNECTION_URL", "memory://")
		GinkgoT().Setenv("JWT_SECRET", "secret")
		GinkgoT().Setenv("FACTORY_ADDRESS", "0x00000000000000000000000000000000000000fa")
		GinkgoT().Setenv("SIGNER_PRIVATE_KEY", key)
	})

	When("only the required variables are set", func() {
		JustBeforeEach(func() {
			app, err = config.NewApp()
		})

		It("should apply the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.SignerPrivateKey).To(Equal(key))
			Expect(app.ChainID).To(BeZero())
			Expect(app.GasLimit).To(Equal(uint64(1_000_000)))
			Expect(app.WriteTimeout).To(Equal(2 * time.Minute))
			Expect(app.BlockBatchSize).To(Equal(uint64(2000)))
			Expect(app.IndexInterval).To(Equal(15 * time.Second))
			Expect(app.PriceCacheTTL).To(Equal(time.Minute))
			Expect(app.IPFSGatewayURL).To(Equal("https://ipfs.io"))
			Expect(app.LogLevel).To(Equal("info"))
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			Expect(os.Unsetenv("JWT_SECRET")).To(Succeed())
		})

		It("should name it", func() {
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("JWT_SECRET")))
		})
	})

	When("the factory address is malformed", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("FACTORY_ADDRESS", "0xfa")
		})

		It("should fail", func() {
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("invalid factory address")))
		})
	})

	When("the signer key is malformed", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("SIGNER_PRIVATE_KEY", "not-a-key")
		})

		It("should fail without echoing the key", func() {
			_, err := config.NewApp()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).NotTo(ContainSubstring("not-a-key"))
		})
	})

	When("the chain id is negative", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("CHAIN_ID", "-1")
		})

		It("should fail", func() {
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("chain id must not be negative")))
		})
	})

	When("an env file is given", func() {
		var file string

		BeforeEach(func() {
			GinkgoT().Setenv("API_PORT", "")
			Expect(os.Unsetenv("API_PORT")).To(Succeed())
			file = filepath.Join(GinkgoT().TempDir(), ".env")
			Expect(os.WriteFile(file, []byte("API_PORT=9090\nJWT_SECRET=from-file\n"), 0o600)).To(Succeed())
		})

		It("should fill unset variables without overriding set ones", func() {
			app, err := config.NewApp(file)
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("9090"))
			Expect(app.JWTSecret).To(Equal("secret"))
		})

		It("should skip files that do not exist", func() {
			_, err := config.NewApp(filepath.Join(GinkgoT().TempDir(), "missing.env"))
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
