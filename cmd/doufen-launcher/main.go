// Command doufen-launcher starts the bundled Chromium with the Doufen
// extension provisioned.
//
// On first run it writes the HKCU extension policy (relaunching elevated when
// the policy key is not writable), then starts
// `.\chrome\chrome.exe --user-data-dir=userdata`. Failures are shown in a
// message box; the exit status is always 0.
//
// Build with `-ldflags -H=windowsgui` so no console window is opened.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"doufen-launcher/internal/chromium"
	"doufen-launcher/internal/config"
	"doufen-launcher/internal/elevate"
	"doufen-launcher/internal/firstrun"
	"doufen-launcher/internal/launcher"
	"doufen-launcher/internal/notify"
	"doufen-launcher/internal/policy"
	"doufen-launcher/internal/runlog"
)

func main() {
	runID := runlog.MakeRunID()
	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With("run_id", runID))

	cfg := config.Load()
	level.Set(cfg.LogLevel)

	slog.Info(
		"starting doufen-launcher",
		"extension_id", cfg.ExtensionID,
		"chrome", cfg.ChromePath,
		"user_data_dir", cfg.UserDataDir,
		"elevated", elevate.IsElevated(),
	)

	fs := afero.NewOsFs()

	var rl *runlog.Logger
	if cfg.LogPath != "" {
		var err error
		rl, err = runlog.New(fs, cfg.LogPath, runID)
		if err != nil {
			slog.Warn("run log disabled", "err", err, "path", cfg.LogPath)
		} else {
			defer func() { _ = rl.Close() }()
		}
	}

	launcher.New(cfg, launcher.Deps{
		FirstRun: firstrun.NewDetector(fs),
		Policy:   policy.NewWriter(policy.CurrentUser()),
		Elevator: elevate.Shell{},
		Spawn:    chromium.Start,
		Reporter: notify.Default(),
		Log:      rl,
	}).Run()
}
