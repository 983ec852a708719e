// Package chromium starts the bundled browser.
//
// The launcher is not a supervisor: Start hands the child to the OS and
// returns without waiting on it.
package chromium

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"doufen-launcher/internal/config"
)

// DisabledAPIKeys are set to "no" so the browser skips Google API sign-in.
var DisabledAPIKeys = []string{
	"GOOGLE_API_KEY",
	"GOOGLE_DEFAULT_CLIENT_ID",
	"GOOGLE_DEFAULT_CLIENT_SECRET",
}

type Command struct {
	Path string
	Args []string
	Env  []string
}

func NewCommand(cfg config.Config) Command {
	return Command{
		Path: cfg.ChromePath,
		Args: []string{"--user-data-dir=" + cfg.UserDataDir},
		Env:  Environ(os.Environ()),
	}
}

// String renders the command line as the OS receives it.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Environ returns base with every DisabledAPIKeys entry replaced by KEY=no.
func Environ(base []string) []string {
	out := make([]string, 0, len(base)+len(DisabledAPIKeys))
	for _, kv := range base {
		if !isDisabledKey(kv) {
			out = append(out, kv)
		}
	}
	for _, k := range DisabledAPIKeys {
		out = append(out, k+"=no")
	}
	return out
}

func isDisabledKey(kv string) bool {
	name, _, ok := strings.Cut(kv, "=")
	if !ok {
		return false
	}
	for _, k := range DisabledAPIKeys {
		// Windows environment names are case-insensitive.
		if name == k || (runtime.GOOS == "windows" && strings.EqualFold(name, k)) {
			return true
		}
	}
	return false
}

// Start spawns c and releases the process handle. The returned pid is for
// logging only.
func Start(c Command) (int, error) {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Env = c.Env
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", c.Path, err)
	}
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}
