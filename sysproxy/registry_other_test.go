//go:build !windows

package sysproxy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proxyctl/core"
	"proxyctl/sysproxy"
)

var _ = Describe("RegistryStore off Windows", func() {
	It("is unavailable", func() {
		_, err := sysproxy.NewRegistryStore()
		Expect(err).To(MatchError(core.ErrStoreUnavailable))
	})

	It("hands out a no-op notifier", func() {
		Expect(sysproxy.NewNotifier()).To(Equal(core.Notifier(sysproxy.NopNotifier{})))
	})
})
