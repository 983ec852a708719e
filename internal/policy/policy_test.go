package policy

import (
	"errors"
	"reflect"
	"testing"
)

var testRecord = Record{
	ExtensionID: "ghppfgfeoafdcaebjoglabppkfmbcjdd",
	UpdateURL:   "https://update.doufen.org/",
}

func assertWritten(t *testing.T, m *Memory) {
	t.Helper()
	if got := m.Values(BaseKey); !reflect.DeepEqual(got, map[string]any{"ExtensionAllowInsecureUpdates": uint32(1)}) {
		t.Fatalf("%s=%v", BaseKey, got)
	}
	if got := m.Values(ForcelistKey); !reflect.DeepEqual(got, map[string]any{"1": "ghppfgfeoafdcaebjoglabppkfmbcjdd;https://update.doufen.org/"}) {
		t.Fatalf("%s=%v", ForcelistKey, got)
	}
	if got := m.Values(SourcesKey); !reflect.DeepEqual(got, map[string]any{"1": "https://update.doufen.org/*"}) {
		t.Fatalf("%s=%v", SourcesKey, got)
	}
}

func TestKeyPaths(t *testing.T) {
	if ForcelistKey != `SOFTWARE\Policies\Chromium\ExtensionInstallForcelist` {
		t.Fatalf("ForcelistKey=%q", ForcelistKey)
	}
	if SourcesKey != `SOFTWARE\Policies\Chromium\ExtensionInstallSources` {
		t.Fatalf("SourcesKey=%q", SourcesKey)
	}
}

func TestWriter_Write(t *testing.T) {
	m := NewMemory()
	w := NewWriter(m)
	if err := w.Write(testRecord); err != nil {
		t.Fatalf("Write: %v", err)
	}
	assertWritten(t, m)
	if n := m.OpenHandles(); n != 0 {
		t.Fatalf("open handles=%d", n)
	}
}

func TestWriter_RewriteOverwrites(t *testing.T) {
	m := NewMemory()
	w := NewWriter(m)
	for i := 0; i < 2; i++ {
		if err := w.Write(testRecord); err != nil {
			t.Fatalf("Write #%d: %v", i, err)
		}
	}
	assertWritten(t, m)
	if got := m.Keys(); len(got) != 3 {
		t.Fatalf("keys=%v", got)
	}
}

func TestWriter_StopsAtFirstFailureWithoutRollback(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")
	m.FailCreate[SourcesKey] = boom

	err := NewWriter(m).Write(testRecord)
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
	want := []string{BaseKey, ForcelistKey}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys=%v want=%v", got, want)
	}
	if got := m.Values(ForcelistKey)["1"]; got != testRecord.ForcelistEntry() {
		t.Fatalf("forcelist=%v", got)
	}
	if n := m.OpenHandles(); n != 0 {
		t.Fatalf("open handles=%d", n)
	}
}

func TestWriter_SetFailureClosesKey(t *testing.T) {
	m := NewMemory()
	boom := errors.New("set failed")
	m.FailSet[BaseKey] = boom

	if err := NewWriter(m).Write(testRecord); !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
	if got := m.Keys(); !reflect.DeepEqual(got, []string{BaseKey}) {
		t.Fatalf("keys=%v", got)
	}
	if n := m.OpenHandles(); n != 0 {
		t.Fatalf("open handles=%d", n)
	}
}

func TestWriter_CanWrite(t *testing.T) {
	m := NewMemory()
	w := NewWriter(m)
	if !w.CanWrite() {
		t.Fatalf("CanWrite=false")
	}
	m.Denied = true
	if w.CanWrite() {
		t.Fatalf("CanWrite=true with denied probe")
	}
	if got := m.Keys(); len(got) != 0 {
		t.Fatalf("probe must not create keys, got %v", got)
	}
}
