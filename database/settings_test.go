package database_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proxyctl/core"
	"proxyctl/database"
)

var _ = Describe("DB settings store", func() {
	var db *database.DB

	BeforeEach(func() {
		var err error
		db, err = database.Open(filepath.Join(GinkgoT().TempDir(), "proxyctl.db"))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	It("creates the database file", func() {
		_, err := os.Stat(db.Path())
		Expect(err).NotTo(HaveOccurred())
	})

	It("reports absent fields", func() {
		_, ok, err := db.Get(core.FieldServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("stores and overwrites a field", func() {
		Expect(db.Set(core.FieldServer, "127.0.0.1:8080")).To(Succeed())
		Expect(db.Set(core.FieldServer, "10.0.0.1:3128")).To(Succeed())

		value, ok, err := db.Get(core.FieldServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("10.0.0.1:3128"))
	})

	It("keeps a present empty string distinct from absent", func() {
		Expect(db.Set(core.FieldServer, "")).To(Succeed())
		value, ok, err := db.Get(core.FieldServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(value).To(BeEmpty())
	})

	It("deletes fields and tolerates deleting twice", func() {
		Expect(db.Set(core.FieldBypass, "<local>")).To(Succeed())
		Expect(db.Delete(core.FieldBypass)).To(Succeed())
		Expect(db.Delete(core.FieldBypass)).To(Succeed())

		_, ok, err := db.Get(core.FieldBypass)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("reopens an existing database without re-running migrations", func() {
		Expect(db.Set(core.FieldEnabled, "1")).To(Succeed())
		path := db.Path()
		Expect(db.Close()).To(Succeed())

		reopened, err := database.Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer reopened.Close()
		value, ok, err := reopened.Get(core.FieldEnabled)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("1"))
		db = nil
	})

	It("drives the configurator end to end", func() {
		cfg := core.NewConfigurator(db, nil)
		_, err := cfg.SetProxy("127.0.0.1:8080", "")
		Expect(err).NotTo(HaveOccurred())
		_, err = cfg.AddBypass("*.foo.com")
		Expect(err).NotTo(HaveOccurred())

		value, _, _ := db.Get(core.FieldBypass)
		Expect(value).To(Equal("<local>;*.foo.com"))

		_, err = cfg.RemoveBypass("*.FOO.com")
		Expect(err).NotTo(HaveOccurred())
		_, err = cfg.RemoveBypass("<local>")
		Expect(err).NotTo(HaveOccurred())
		_, ok, _ := db.Get(core.FieldBypass)
		Expect(ok).To(BeFalse())
	})

	It("fails with ErrStoreUnavailable when the directory cannot be created", func() {
		blocker := filepath.Join(GinkgoT().TempDir(), "file")
		Expect(os.WriteFile(blocker, []byte("x"), 0600)).To(Succeed())

		_, err := database.Open(filepath.Join(blocker, "sub", "proxyctl.db"))
		Expect(err).To(MatchError(core.ErrStoreUnavailable))
	})
})
