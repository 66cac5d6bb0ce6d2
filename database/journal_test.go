package database_test

import (
	"errors"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proxyctl/core"
	"proxyctl/database"
	"proxyctl/models"
)

type failingRecorder struct{}

func (failingRecorder) RecordChange(models.SettingChange) (models.SettingChange, error) {
	return models.SettingChange{}, errors.New("journal is read-only")
}

var _ = Describe("JournaledStore", func() {
	var (
		db    *database.DB
		store *database.JournaledStore
	)

	BeforeEach(func() {
		var err error
		db, err = database.Open(filepath.Join(GinkgoT().TempDir(), "proxyctl.db"))
		Expect(err).NotTo(HaveOccurred())
		store = database.NewJournaledStore(db, db, "sqlite")
	})

	AfterEach(func() {
		db.Close()
	})

	It("records one entry per field written with old and new values", func() {
		Expect(store.Set(core.FieldServer, "127.0.0.1:8080")).To(Succeed())
		Expect(store.Set(core.FieldServer, "10.0.0.1:3128")).To(Succeed())
		Expect(store.Delete(core.FieldServer)).To(Succeed())

		changes, err := db.ListChanges(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(changes).To(HaveLen(3))

		latest := changes[0]
		Expect(latest.Action).To(Equal(models.ChangeActionDelete))
		Expect(latest.OldValue.String).To(Equal("10.0.0.1:3128"))
		Expect(latest.NewValue.Valid).To(BeFalse())
		Expect(latest.Backend).To(Equal("sqlite"))
		Expect(latest.ID).NotTo(BeEmpty())

		first := changes[2]
		Expect(first.Action).To(Equal(models.ChangeActionSet))
		Expect(first.OldValue.Valid).To(BeFalse())
		Expect(first.NewValue.String).To(Equal("127.0.0.1:8080"))
	})

	It("honours the list limit", func() {
		for _, server := range []string{"a:1", "b:2", "c:3"} {
			Expect(store.Set(core.FieldServer, server)).To(Succeed())
		}
		changes, err := db.ListChanges(2)
		Expect(err).NotTo(HaveOccurred())
		Expect(changes).To(HaveLen(2))
		Expect(changes[0].NewValue.String).To(Equal("c:3"))
	})

	It("passes reads through untouched", func() {
		Expect(db.Set(core.FieldBypass, "<local>")).To(Succeed())
		value, ok, err := store.Get(core.FieldBypass)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("<local>"))

		changes, _ := db.ListChanges(0)
		Expect(changes).To(BeEmpty())
	})

	It("keeps the write when the journal fails", func() {
		broken := database.NewJournaledStore(db, failingRecorder{}, "sqlite")
		Expect(broken.Set(core.FieldEnabled, "1")).To(Succeed())
		value, _, _ := db.Get(core.FieldEnabled)
		Expect(value).To(Equal("1"))
	})
})
