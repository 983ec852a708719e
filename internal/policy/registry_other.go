//go:build !windows

package policy

import "errors"

type currentUser struct{}

// CurrentUser has no registry to offer outside Windows; every call fails with
// errors.ErrUnsupported.
func CurrentUser() Registry { return currentUser{} }

func (currentUser) CreateKey(string) (Key, error) { return nil, errors.ErrUnsupported }

func (currentUser) Probe(string) error { return errors.ErrUnsupported }
