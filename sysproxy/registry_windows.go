//go:build windows

package sysproxy

import (
	"errors"
	"fmt"
	"strconv"

	"proxyctl/core"

	"golang.org/x/sys/windows/registry"
)

// RegistryStore keeps the proxy fields under HKCU Internet Settings. The key
// is opened for every call, so a permission change between calls surfaces as
// core.ErrStoreUnavailable on the next one.
type RegistryStore struct {
	root registry.Key
	path string
}

func NewRegistryStore() (*RegistryStore, error) {
	s := &RegistryStore{root: registry.CURRENT_USER, path: InternetSettingsPath}
	k, err := s.open(registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	k.Close()
	return s, nil
}

func (s *RegistryStore) open(access uint32) (registry.Key, error) {
	k, err := registry.OpenKey(s.root, s.path, access)
	if err != nil {
		return 0, fmt.Errorf("%w: open HKCU\\%s: %v", core.ErrStoreUnavailable, s.path, err)
	}
	return k, nil
}

func (s *RegistryStore) Get(field core.Field) (string, bool, error) {
	k, err := s.open(registry.QUERY_VALUE)
	if err != nil {
		return "", false, err
	}
	defer k.Close()

	if field == core.FieldEnabled {
		v, _, err := k.GetIntegerValue(string(field))
		switch {
		case err == nil:
			return strconv.FormatUint(v, 10), true, nil
		case errors.Is(err, registry.ErrNotExist):
			return "", false, nil
		case !errors.Is(err, registry.ErrUnexpectedType):
			return "", false, fmt.Errorf("%w: read %s: %v", core.ErrStoreUnavailable, field, err)
		}
		// Some tools write ProxyEnable as REG_SZ.
	}

	v, _, err := k.GetStringValue(string(field))
	if errors.Is(err, registry.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: read %s: %v", core.ErrStoreUnavailable, field, err)
	}
	return v, true, nil
}

func (s *RegistryStore) Set(field core.Field, value string) error {
	k, err := s.open(registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	if field == core.FieldEnabled {
		n, parseErr := strconv.ParseUint(value, 10, 32)
		if parseErr != nil {
			return fmt.Errorf("write %s: invalid flag %q: %w", field, value, parseErr)
		}
		err = k.SetDWordValue(string(field), uint32(n))
	} else {
		err = k.SetStringValue(string(field), value)
	}
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", core.ErrStoreUnavailable, field, err)
	}
	return nil
}

func (s *RegistryStore) Delete(field core.Field) error {
	k, err := s.open(registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.DeleteValue(string(field)); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("%w: delete %s: %v", core.ErrStoreUnavailable, field, err)
	}
	return nil
}
