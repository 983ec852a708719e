//go:build windows

package elevate

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

type Shell struct{}

// Relaunch starts a new elevated instance of the current executable in the
// current working directory. It returns once the shell accepted the request.
func (Shell) Relaunch() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("get executable: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	dir, err := windows.UTF16PtrFromString(cwd)
	if err != nil {
		return err
	}
	var args *uint16
	if len(os.Args) > 1 {
		args, err = windows.UTF16PtrFromString(windows.ComposeCommandLine(os.Args[1:]))
		if err != nil {
			return err
		}
	}

	if err := windows.ShellExecute(0, verb, file, args, dir, windows.SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("runas %s: %w", exe, err)
	}
	return nil
}

func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
