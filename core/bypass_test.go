package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proxyctl/core"
)

var _ = Describe("BypassList", func() {
	Describe("ParseBypassList", func() {
		It("returns an empty list for blank input", func() {
			Expect(core.ParseBypassList("").Count()).To(Equal(0))
			Expect(core.ParseBypassList("   ").Count()).To(Equal(0))
		})

		It("keeps entries exactly as split", func() {
			list := core.ParseBypassList("<local>; *.foo.com ;;bar")
			Expect(list.Items()).To(Equal([]string{"<local>", " *.foo.com ", "", "bar"}))
			Expect(list.Count()).To(Equal(4))
		})

		It("round-trips a serialized list", func() {
			raw := "<local>;*.example.com;10.*"
			Expect(core.ParseBypassList(raw).Serialize()).To(Equal(raw))
		})
	})

	Describe("Contains", func() {
		It("matches trimmed entries ignoring case", func() {
			list := core.ParseBypassList("<local>; *.Foo.com ")
			Expect(list.Contains("*.foo.COM")).To(BeTrue())
			Expect(list.Contains("  <LOCAL>")).To(BeTrue())
			Expect(list.Contains("foo.com")).To(BeFalse())
		})
	})

	Describe("Add", func() {
		It("writes the bare item on an empty list", func() {
			list := core.ParseBypassList("")
			Expect(list.Add("*.example.com")).To(Succeed())
			Expect(list.Serialize()).To(Equal("*.example.com"))
		})

		It("appends verbatim after existing entries", func() {
			list := core.ParseBypassList("a;;b")
			Expect(list.Add(" c ")).To(Succeed())
			Expect(list.Serialize()).To(Equal("a;;b; c "))
			Expect(list.Contains("c")).To(BeTrue())
		})

		It("rejects an existing entry", func() {
			list := core.ParseBypassList("<local>")
			err := list.Add("<local>")
			Expect(err).To(MatchError(core.ErrAlreadyExists))
			Expect(list.Serialize()).To(Equal("<local>"))
		})

		It("rejects a second add regardless of case and whitespace", func() {
			list := core.ParseBypassList("")
			Expect(list.Add("Intranet.Local")).To(Succeed())
			Expect(list.Add("  intranet.local ")).To(MatchError(core.ErrAlreadyExists))
			Expect(list.Count()).To(Equal(1))
		})
	})

	Describe("Remove", func() {
		It("removes with a case variation", func() {
			list := core.ParseBypassList("")
			Expect(list.Add("X")).To(Succeed())
			Expect(list.Remove("x")).To(Succeed())
			Expect(list.Serialize()).To(Equal(""))
		})

		It("leaves the list unchanged when the item is missing", func() {
			list := core.ParseBypassList("a;;b")
			Expect(list.Remove("c")).To(MatchError(core.ErrNotFound))
			Expect(list.Serialize()).To(Equal("a;;b"))
			Expect(list.Count()).To(Equal(3))
		})

		It("drops empty segments on a successful remove", func() {
			list := core.ParseBypassList("a;;b;c")
			Expect(list.Remove("b")).To(Succeed())
			Expect(list.Serialize()).To(Equal("a;c"))
		})

		It("removes every matching entry", func() {
			list := core.ParseBypassList("a;B;b ;c")
			Expect(list.Remove("b")).To(Succeed())
			Expect(list.Items()).To(Equal([]string{"a", "c"}))
		})

		It("never treats an empty segment as removable", func() {
			list := core.ParseBypassList("a;;b")
			Expect(list.Remove("")).To(MatchError(core.ErrNotFound))
		})

		It("reports empty once only whitespace entries remain", func() {
			list := core.ParseBypassList("a; ")
			Expect(list.Remove("a")).To(Succeed())
			Expect(list.IsEmpty()).To(BeTrue())
		})
	})

	Describe("Set and Clear", func() {
		It("replaces without dedup", func() {
			list := core.ParseBypassList("x")
			list.Set("a;A;a")
			Expect(list.Count()).To(Equal(3))
			list.Clear()
			Expect(list.Count()).To(Equal(0))
			Expect(list.IsEmpty()).To(BeTrue())
		})
	})
})
