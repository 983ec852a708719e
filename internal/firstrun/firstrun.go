// Package firstrun decides whether the bundled browser still needs the
// extension policy written.
package firstrun

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// ExtensionDir is where the browser unpacks a force-installed extension.
func ExtensionDir(userDataDir, extensionID string) string {
	return filepath.Join(userDataDir, "Default", "Extensions", extensionID)
}

type Detector struct {
	fs afero.Fs
}

func NewDetector(fs afero.Fs) *Detector {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Detector{fs: fs}
}

// IsFirstRun reports true when the extension directory is missing or is not a
// directory. A stale file with the right name forces the policy write again.
func (d *Detector) IsFirstRun(userDataDir, extensionID string) bool {
	fi, err := d.fs.Stat(ExtensionDir(userDataDir, extensionID))
	if err != nil {
		return true
	}
	return !fi.IsDir()
}
