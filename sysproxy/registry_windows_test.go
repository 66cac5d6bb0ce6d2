//go:build windows

package sysproxy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"proxyctl/core"
	"proxyctl/sysproxy"
)

var _ = Describe("RegistryStore", func() {
	It("reads the current user's Internet Settings", func() {
		store, err := sysproxy.NewRegistryStore()
		Expect(err).NotTo(HaveOccurred())

		state, err := core.NewConfigurator(store, sysproxy.NopNotifier{}).CheckStatus()
		Expect(err).NotTo(HaveOccurred())
		if state.Server != nil {
			Expect(*state.Server).NotTo(ContainSubstring("\x00"))
		}
	})
})
