package firstrun

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

const testID = "ghppfgfeoafdcaebjoglabppkfmbcjdd"

func TestExtensionDir(t *testing.T) {
	want := filepath.Join("userdata", "Default", "Extensions", testID)
	if got := ExtensionDir("userdata", testID); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestIsFirstRun_MissingDir(t *testing.T) {
	d := NewDetector(afero.NewMemMapFs())
	if !d.IsFirstRun("userdata", testID) {
		t.Fatalf("expected first run when extension dir is absent")
	}
}

func TestIsFirstRun_ExistingDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(ExtensionDir("userdata", testID), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	d := NewDetector(fs)
	for i := 0; i < 3; i++ {
		if d.IsFirstRun("userdata", testID) {
			t.Fatalf("call %d: expected not first run", i)
		}
	}
}

func TestIsFirstRun_FileWithExtensionName(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := ExtensionDir("userdata", testID)
	if err := afero.WriteFile(fs, p, []byte("stale"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d := NewDetector(fs)
	if !d.IsFirstRun("userdata", testID) {
		t.Fatalf("a non-directory should count as first run")
	}
	// Pure query: the stale file is untouched.
	if fi, err := fs.Stat(p); err != nil || fi.IsDir() {
		t.Fatalf("stat after detect: fi=%v err=%v", fi, err)
	}
}

func TestIsFirstRun_OtherExtensionInstalled(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(ExtensionDir("userdata", "someotherextensionid"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if !NewDetector(fs).IsFirstRun("userdata", testID) {
		t.Fatalf("expected first run for a different id")
	}
}
