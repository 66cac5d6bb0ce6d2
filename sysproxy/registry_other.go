//go:build !windows

package sysproxy

import (
	"fmt"
	"runtime"

	"proxyctl/core"
)

// RegistryStore is only available on Windows.
type RegistryStore struct{}

func NewRegistryStore() (*RegistryStore, error) {
	return nil, fmt.Errorf("%w: the registry backend is not available on %s", core.ErrStoreUnavailable, runtime.GOOS)
}

func (*RegistryStore) Get(core.Field) (string, bool, error) {
	return "", false, core.ErrStoreUnavailable
}

func (*RegistryStore) Set(core.Field, string) error {
	return core.ErrStoreUnavailable
}

func (*RegistryStore) Delete(core.Field) error {
	return core.ErrStoreUnavailable
}
