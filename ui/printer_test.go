package ui_test

import (
	"bytes"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proxyctl/core"
	"proxyctl/ui"
)

func strPtr(s string) *string { return &s }

var _ = Describe("Printer", func() {
	var (
		out     *bytes.Buffer
		printer *ui.Printer
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		printer = ui.NewPrinter(out)
	})

	Describe("Status", func() {
		It("reports a disabled proxy with no server", func() {
			printer.Status(core.State{})
			Expect(out.String()).To(ContainSubstring("Proxy is DISABLED"))
			Expect(out.String()).To(ContainSubstring("No proxy server configured"))
		})

		It("shows the active configuration when enabled", func() {
			printer.Status(core.State{Enabled: true, Server: strPtr("p:8080")})
			Expect(out.String()).To(ContainSubstring("Proxy is ENABLED"))
			Expect(out.String()).To(ContainSubstring("Active Proxy Configuration:"))
			Expect(out.String()).To(ContainSubstring("p:8080"))
			Expect(out.String()).To(ContainSubstring("(not set)"))
		})

		It("marks a stored server as disabled", func() {
			printer.Status(core.State{Server: strPtr("p:8080"), Bypass: strPtr("<local>")})
			Expect(out.String()).To(ContainSubstring("Configured Proxy (currently disabled):"))
			Expect(out.String()).To(ContainSubstring("<local>"))
		})
	})

	It("numbers every bypass entry", func() {
		printer.BypassItems([]string{"a", "", "b"})
		Expect(out.String()).To(ContainSubstring("Bypass List (3 items)"))
		Expect(out.String()).To(ContainSubstring(" 3. b"))
	})

	It("labels the default bypass", func() {
		printer.ProxySet(core.SetResult{Server: "p:1", Bypass: core.DefaultBypass, DefaultBypass: true, Notification: core.Notification{OK: true}})
		Expect(out.String()).To(ContainSubstring("<local> (default)"))
		Expect(out.String()).To(ContainSubstring("System notified"))
	})

	It("shows a deleted bypass value as empty", func() {
		printer.BypassRemoved(core.BypassResult{Item: "x", Deleted: true, Notification: core.Notification{OK: true}})
		Expect(out.String()).To(ContainSubstring("(empty)"))
	})

	It("warns when the notification fails", func() {
		printer.Notification(core.Notification{Err: fmt.Errorf("notify refresh: denied")})
		Expect(out.String()).To(ContainSubstring("Failed to notify system"))
		Expect(out.String()).To(ContainSubstring("notify refresh: denied"))
	})

	DescribeTable("Classify",
		func(err error, expected ui.Severity) {
			Expect(ui.Classify(err)).To(Equal(expected))
		},
		Entry("empty", fmt.Errorf("%w: nothing", core.ErrEmpty), ui.SeverityInfo),
		Entry("duplicate", fmt.Errorf("%w: \"a\"", core.ErrAlreadyExists), ui.SeverityWarning),
		Entry("missing", fmt.Errorf("%w: \"a\"", core.ErrNotFound), ui.SeverityWarning),
		Entry("store", fmt.Errorf("failed to read: %w", core.ErrStoreUnavailable), ui.SeverityError),
		Entry("validation", core.ErrServerRequired, ui.SeverityError),
	)

	It("prints store failures as errors", func() {
		Expect(printer.Failure(fmt.Errorf("failed to read: %w", core.ErrStoreUnavailable))).To(Equal(ui.SeverityError))
		Expect(out.String()).To(ContainSubstring("Cannot access proxy settings"))
	})
})
