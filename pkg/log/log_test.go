package log_test

import (
	"encoding/json"
	"os"
	"path/filepath"

	"crowdfunder/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Log", func() {
	Describe("NewZapLogger", func() {
		It("should write json lines to the log file", func() {
			file := filepath.Join(GinkgoT().TempDir(), "crowdfunder.log")

			logger := log.NewZapLogger("crowdfunder", zapcore.InfoLevel, file)
			logger.Debugw("hidden")
			logger.Infow("campaigns indexed", "count", 3)
			_ = logger.Sync()

			data, err := os.ReadFile(file)
			Expect(err).NotTo(HaveOccurred())

			var line map[string]any
			Expect(json.Unmarshal(data, &line)).To(Succeed())
			Expect(line["msg"]).To(Equal("campaigns indexed"))
			Expect(line["logger"]).To(Equal("crowdfunder"))
			Expect(line["count"]).To(BeEquivalentTo(3))
		})
	})

	DescribeTable("ParseLevel",
		func(text string, expected zapcore.Level) {
			Expect(log.ParseLevel(text)).To(Equal(expected))
		},
		Entry("debug", "debug", zapcore.DebugLevel),
		Entry("warn", "warn", zapcore.WarnLevel),
		Entry("empty", "", zapcore.InfoLevel),
		Entry("unknown", "loud", zapcore.InfoLevel),
	)
})
