package launcher

import (
	"fmt"
	"log/slog"

	"doufen-launcher/internal/chromium"
	"doufen-launcher/internal/config"
	"doufen-launcher/internal/notify"
	"doufen-launcher/internal/policy"
	"doufen-launcher/internal/runlog"
)

type FirstRunDetector interface {
	IsFirstRun(userDataDir, extensionID string) bool
}

type PolicyWriter interface {
	CanWrite() bool
	Write(policy.Record) error
}

type Elevator interface {
	Relaunch() error
}

type Spawner func(chromium.Command) (int, error)

type Deps struct {
	FirstRun FirstRunDetector
	Policy   PolicyWriter
	Elevator Elevator
	Spawn    Spawner
	Reporter notify.Reporter

	// Log is optional.
	Log *runlog.Logger
}

// Outcome is the branch Run ended on.
type Outcome int

const (
	Launched Outcome = iota
	LaunchFailed
	PolicyFailed
	ElevationDeclined
	Relaunched
	RelaunchFailed
)

func (o Outcome) String() string {
	switch o {
	case Launched:
		return "launched"
	case LaunchFailed:
		return "launch_failed"
	case PolicyFailed:
		return "policy_failed"
	case ElevationDeclined:
		return "elevation_declined"
	case Relaunched:
		return "relaunched"
	case RelaunchFailed:
		return "relaunch_failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type Launcher struct {
	cfg config.Config
	d   Deps
}

func New(cfg config.Config, d Deps) *Launcher {
	if d.Spawn == nil {
		d.Spawn = chromium.Start
	}
	return &Launcher{cfg: cfg, d: d}
}

func (l *Launcher) Run() Outcome {
	out := l.run()
	l.d.Log.Log("done", out.String(), "")
	slog.Info("launcher finished", "outcome", out.String())
	return out
}

func (l *Launcher) run() Outcome {
	first := l.d.FirstRun.IsFirstRun(l.cfg.UserDataDir, l.cfg.ExtensionID)
	l.d.Log.Log("first_run", fmt.Sprint(first), l.cfg.ExtensionID)
	slog.Info("first run check", "first_run", first, "extension_id", l.cfg.ExtensionID)

	if first {
		if out, ok := l.provision(); !ok {
			return out
		}
	}
	return l.launch()
}

// provision writes the policy, or hands off to an elevated instance. ok is
// false when Run must stop with out.
func (l *Launcher) provision() (out Outcome, ok bool) {
	if !l.d.Policy.CanWrite() {
		l.d.Log.Log("policy_access", "denied", policy.ProbeKey)
		slog.Warn("policy registry not writable", "key", policy.ProbeKey)

		title, text := notify.Render(notify.ElevatePrompt, notify.Data{})
		if !l.d.Reporter.Confirm(title, text) {
			l.d.Log.Log("elevate", "declined", "")
			return ElevationDeclined, false
		}
		if err := l.d.Elevator.Relaunch(); err != nil {
			l.d.Log.Log("elevate", "failed", err.Error())
			slog.Error("elevated relaunch failed", "err", err)
			l.report(notify.ElevateFailed, notify.Data{Err: notify.ErrorText(err)})
			return RelaunchFailed, false
		}
		// The elevated instance writes the policy and starts the browser itself.
		l.d.Log.Log("elevate", "ok", "")
		slog.Info("handed off to elevated instance")
		return Relaunched, false
	}

	rec := policy.Record{ExtensionID: l.cfg.ExtensionID, UpdateURL: l.cfg.UpdateURL}
	if err := l.d.Policy.Write(rec); err != nil {
		l.d.Log.Log("policy_write", "failed", err.Error())
		slog.Error("policy write failed", "err", err)
		l.report(notify.PolicyFailed, notify.Data{Err: notify.ErrorText(err)})
		return PolicyFailed, false
	}
	l.d.Log.Log("policy_write", "ok", rec.ForcelistEntry())
	slog.Info("extension policy written", "forcelist", rec.ForcelistEntry(), "source", rec.SourcePattern())
	return 0, true
}

func (l *Launcher) launch() Outcome {
	cmd := chromium.NewCommand(l.cfg)
	pid, err := l.d.Spawn(cmd)
	if err != nil {
		l.d.Log.Log("launch", "failed", err.Error())
		slog.Error("browser start failed", "err", err, "cmdline", cmd.String())
		l.report(notify.LaunchFailed, notify.Data{Path: l.cfg.ChromePath, Err: notify.ErrorText(err)})
		return LaunchFailed
	}
	l.d.Log.Log("launch", "ok", fmt.Sprintf("pid=%d cmdline=%s", pid, cmd.String()))
	slog.Info("browser started", "pid", pid, "cmdline", cmd.String())
	return Launched
}

func (l *Launcher) report(name string, data notify.Data) {
	title, text := notify.Render(name, data)
	l.d.Reporter.Error(title, text)
}
