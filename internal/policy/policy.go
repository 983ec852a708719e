package policy

import (
	"fmt"
)

// Registry paths under HKEY_CURRENT_USER.
const (
	ProbeKey     = `SOFTWARE\Policies`
	BaseKey      = `SOFTWARE\Policies\Chromium`
	ForcelistKey = BaseKey + `\ExtensionInstallForcelist`
	SourcesKey   = BaseKey + `\ExtensionInstallSources`

	AllowInsecureUpdatesValue = "ExtensionAllowInsecureUpdates"

	// List policies are keyed by ordinal; the launcher owns entry "1".
	EntryName = "1"
)

// Key is an open registry key. registry.Key satisfies it.
type Key interface {
	SetDWordValue(name string, value uint32) error
	SetStringValue(name, value string) error
	Close() error
}

type Registry interface {
	// CreateKey opens path for writing, creating it when needed.
	CreateKey(path string) (Key, error)
	// Probe opens path for read/write and closes it again.
	Probe(path string) error
}

// Record is the set of values written as one unit.
type Record struct {
	ExtensionID string
	UpdateURL   string
}

func (r Record) ForcelistEntry() string { return r.ExtensionID + ";" + r.UpdateURL }

func (r Record) SourcePattern() string { return r.UpdateURL + "*" }

type Writer struct {
	reg Registry
}

func NewWriter(reg Registry) *Writer {
	return &Writer{reg: reg}
}

// CanWrite reports whether the policy area is writable by this process.
// Nothing is kept open.
func (w *Writer) CanWrite() bool {
	return w.reg.Probe(ProbeKey) == nil
}

// Write sets all three policy values, overwriting existing entries. It stops
// at the first failure; keys written before it stay in place.
func (w *Writer) Write(r Record) error {
	if err := w.withKey(BaseKey, func(k Key) error {
		return k.SetDWordValue(AllowInsecureUpdatesValue, 1)
	}); err != nil {
		return err
	}
	if err := w.withKey(ForcelistKey, func(k Key) error {
		return k.SetStringValue(EntryName, r.ForcelistEntry())
	}); err != nil {
		return err
	}
	return w.withKey(SourcesKey, func(k Key) error {
		return k.SetStringValue(EntryName, r.SourcePattern())
	})
}

func (w *Writer) withKey(path string, fn func(Key) error) error {
	k, err := w.reg.CreateKey(path)
	if err != nil {
		return fmt.Errorf("create key %s: %w", path, err)
	}
	defer func() { _ = k.Close() }()
	if err := fn(k); err != nil {
		return fmt.Errorf("set value under %s: %w", path, err)
	}
	return nil
}
