//go:build windows

package notify

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

// MessageBox flags (winuser.h).
const (
	mbOK           = 0x00000000
	mbYesNo        = 0x00000004
	mbIconError    = 0x00000010
	mbIconQuestion = 0x00000020
	mbSetForegrnd  = 0x00010000
	mbTopmost      = 0x00040000

	idYes = 6
)

// Dialog shows native modal message boxes.
type Dialog struct{}

func Default() Reporter { return Dialog{} }

func (Dialog) Error(title, text string) {
	if _, err := show(title, text, mbOK|mbIconError); err != nil {
		slog.Error("message box failed", "err", err, "title", title, "text", text)
	}
}

func (Dialog) Confirm(title, text string) bool {
	ret, err := show(title, text, mbYesNo|mbIconQuestion)
	if err != nil {
		slog.Error("message box failed", "err", err, "title", title)
		return false
	}
	return ret == idYes
}

func show(title, text string, flags uint32) (int32, error) {
	t, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return 0, err
	}
	c, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	return windows.MessageBox(0, t, c, flags|mbSetForegrnd|mbTopmost)
}
