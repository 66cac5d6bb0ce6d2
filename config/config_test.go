package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proxyctl/config"
)

var _ = Describe("Init", func() {
	var dir string

	writeConfig := func(body string) string {
		path := filepath.Join(dir, "proxyctl.yaml")
		Expect(os.WriteFile(path, []byte(body), 0600)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		GinkgoT().Setenv("XDG_CONFIG_HOME", dir)
		GinkgoT().Setenv("HOME", dir)
		GinkgoT().Setenv("APPDATA", dir)
	})

	It("falls back to defaults without a config file", func() {
		Expect(config.Init("", config.Overrides{})).To(Succeed())

		defaults := config.GetDefaultConfigPaths()
		Expect(config.ConfigFileUsed).To(BeEmpty())
		Expect(config.AppConfig.Store.Backend).To(Equal(config.DefaultBackend()))
		Expect(config.AppConfig.Database.Path).To(Equal(defaults.DBPath))
		Expect(config.AppConfig.Logging.Level).To(Equal("INFO"))
		Expect(config.AppConfig.Server.Listen).To(Equal("127.0.0.1:8779"))
		Expect(config.AppConfig.History.Enabled).To(BeTrue())
		Expect(config.AppConfig.Notify.Enabled).To(BeTrue())
	})

	It("reads an explicit yaml file", func() {
		path := writeConfig(`
store:
  backend: SQLite
database:
  path: ` + filepath.Join(dir, "settings.db") + `
logging:
  level: debug
history:
  enabled: false
`)
		Expect(config.Init(path, config.Overrides{})).To(Succeed())

		Expect(config.ConfigFileUsed).To(Equal(path))
		Expect(config.AppConfig.Store.Backend).To(Equal(config.BackendSQLite))
		Expect(config.AppConfig.Database.Path).To(Equal(filepath.Join(dir, "settings.db")))
		Expect(config.AppConfig.Logging.Level).To(Equal("DEBUG"))
		Expect(config.AppConfig.History.Enabled).To(BeFalse())
	})

	It("lets the environment override the file", func() {
		path := writeConfig("server:\n  listen: 127.0.0.1:1000\n")
		GinkgoT().Setenv("PROXYCTL_SERVER_LISTEN", "127.0.0.1:2000")
		GinkgoT().Setenv("PROXYCTL_NOTIFY_ENABLED", "false")

		Expect(config.Init(path, config.Overrides{})).To(Succeed())
		Expect(config.AppConfig.Server.Listen).To(Equal("127.0.0.1:2000"))
		Expect(config.AppConfig.Notify.Enabled).To(BeFalse())
	})

	It("lets flags override everything", func() {
		GinkgoT().Setenv("PROXYCTL_DATABASE_PATH", filepath.Join(dir, "env.db"))
		Expect(config.Init("", config.Overrides{
			StoreBackend: "sqlite",
			DBPath:       filepath.Join(dir, "flag.db"),
			LogLevel:     "error",
		})).To(Succeed())

		Expect(config.AppConfig.Database.Path).To(Equal(filepath.Join(dir, "flag.db")))
		Expect(config.AppConfig.Logging.Level).To(Equal("ERROR"))
	})

	It("expands a leading tilde", func() {
		Expect(config.Init("", config.Overrides{DBPath: "~/proxy.db"})).To(Succeed())
		home, err := os.UserHomeDir()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.AppConfig.Database.Path).To(Equal(filepath.Join(home, "proxy.db")))
	})

	It("rejects an unknown backend", func() {
		err := config.Init("", config.Overrides{StoreBackend: "etcd"})
		Expect(err).To(MatchError(ContainSubstring(`unknown store backend "etcd"`)))
	})

	It("fails on a malformed config file", func() {
		path := writeConfig("store: [unterminated\n")
		Expect(config.Init(path, config.Overrides{})).NotTo(Succeed())
	})

	It("fails when an explicit config file is missing", func() {
		Expect(config.Init(filepath.Join(dir, "missing.yaml"), config.Overrides{})).NotTo(Succeed())
	})
})
