package notify

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"
)

// Reporter presents blocking user-facing messages.
type Reporter interface {
	Error(title, text string)
	// Confirm asks a yes/no question and reports true for yes.
	Confirm(title, text string) bool
}

// ErrorText formats err for display. OS errors carry their numeric code.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return fmt.Sprintf("%s (错误代码 %d)", errno.Error(), uint32(errno))
	}
	return err.Error()
}

// Console is the headless Reporter. Confirm always answers no.
type Console struct {
	W io.Writer
}

func (c Console) writer() io.Writer {
	if c.W == nil {
		return os.Stderr
	}
	return c.W
}

func (c Console) Error(title, text string) {
	slog.Error("user-facing error", "title", title, "text", text)
	_, _ = fmt.Fprintf(c.writer(), "%s: %s\n", title, text)
}

func (c Console) Confirm(title, text string) bool {
	slog.Warn("confirmation needs a desktop session; answering no", "title", title)
	_, _ = fmt.Fprintf(c.writer(), "%s: %s [no]\n", title, text)
	return false
}
