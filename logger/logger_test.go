package logger_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"proxyctl/logger"
)

var _ = Describe("Logger", func() {
	AfterEach(func() {
		logger.CloseLogFiles()
	})

	DescribeTable("ParseLevel",
		func(name string, expected zapcore.Level) {
			Expect(logger.ParseLevel(name)).To(Equal(expected))
		},
		Entry("debug", "DEBUG", zap.DebugLevel),
		Entry("lower case warn", "warn", zap.WarnLevel),
		Entry("warning", "WARNING", zap.WarnLevel),
		Entry("error", " ERROR ", zap.ErrorLevel),
		Entry("unknown", "LOUD", zap.InfoLevel),
		Entry("empty", "", zap.InfoLevel),
	)

	It("writes to the log file at the configured level", func() {
		path := filepath.Join(GinkgoT().TempDir(), "logs", "proxyctl.log")
		Expect(logger.InitGlobalLoggers(path, "INFO")).To(Succeed())

		logger.Info("set %s", "ProxyServer")
		logger.Debug("hidden %d", 1)
		logger.CloseLogFiles()

		content, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("INFO"))
		Expect(string(content)).To(ContainSubstring("set ProxyServer"))
		Expect(string(content)).NotTo(ContainSubstring("hidden 1"))
	})

	It("discards logs when the file cannot be opened", func() {
		dir := GinkgoT().TempDir()
		blocker := filepath.Join(dir, "blocker")
		Expect(os.WriteFile(blocker, []byte("x"), 0600)).To(Succeed())

		Expect(logger.InitGlobalLoggers(filepath.Join(blocker, "proxyctl.log"), "DEBUG")).To(Succeed())
		Expect(func() { logger.Error("still fine") }).NotTo(Panic())
	})

	It("routes through an installed logger", func() {
		core, logs := observer.New(zap.DebugLevel)
		logger.SetLogger(zap.New(core))

		logger.Warn("bypass %q skipped", "x")
		Expect(logs.FilterMessage(`bypass "x" skipped`).Len()).To(Equal(1))
		Expect(logger.L()).NotTo(BeNil())
	})
})
