//go:build !windows

package elevate

import "errors"

type Shell struct{}

func (Shell) Relaunch() error { return errors.ErrUnsupported }

func IsElevated() bool { return false }
