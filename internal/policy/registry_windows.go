//go:build windows

package policy

import (
	"golang.org/x/sys/windows/registry"
)

type currentUser struct{}

// CurrentUser returns the HKEY_CURRENT_USER registry.
func CurrentUser() Registry { return currentUser{} }

func (currentUser) CreateKey(path string) (Key, error) {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, path, registry.ALL_ACCESS)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func (currentUser) Probe(path string) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return err
	}
	return k.Close()
}
