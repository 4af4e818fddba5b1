//go:build linux

package process_linux

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"iemem/layout"
	"iemem/process"

	"github.com/google/go-cmp/cmp"
)

const gameMaps = `555500000000-555500001000 r--p 00000000 08:01 1234 /opt/bgee/BaldursGate
555500001000-555500400000 r-xp 00001000 08:01 1234 /opt/bgee/BaldursGate
555500400000-555500500000 r--p 00400000 08:01 1234 /opt/bgee/BaldursGate
555500600000-555500700000 rw-p 00500000 08:01 1234 /opt/bgee/BaldursGate
555501000000-555502000000 rw-p 00000000 00:00 0 [heap]
`

// fakeProc writes a /proc like tree with one directory per pid
func fakeProc(t *testing.T, procs map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for pid, comm := range procs {
		dir := filepath.Join(root, pid)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "comm"), []byte(comm+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "maps"), []byte(gameMaps), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// non pid entries are ignored
	if err := os.WriteFile(filepath.Join(root, "uptime"), []byte("1 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func testLocator(t *testing.T, root string) *Locator {
	t.Helper()
	l, err := layout.Builtin(layout.Default)
	if err != nil {
		t.Fatal(err)
	}
	loc := NewLocator(l)
	loc.Root = root
	return loc
}

func TestLocatorFind(t *testing.T) {
	root := fakeProc(t, map[string]string{
		"100": "bash",
		"200": "BaldursGateII",
		"300": "BaldursGat",
	})
	loc := testLocator(t, root)

	got, err := loc.Find(true)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	want := &process.TargetProcess{
		PID:         200,
		Path:        filepath.Join(root, "200"),
		Name:        "BaldursGateII",
		BaseAddress: 0x555500600000,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Find mismatch (-want +got):\n%s", diff)
	}

	if err := loc.Check(got); err != nil {
		t.Errorf("Check(running) = %v", err)
	}
	if err := os.RemoveAll(got.Path); err != nil {
		t.Fatal(err)
	}
	if err := loc.Check(got); !errors.Is(err, process.ErrTargetClosed) {
		t.Errorf("Check(exited) = %v, want ErrTargetClosed", err)
	}
}

func TestLocatorNothingRunning(t *testing.T) {
	loc := testLocator(t, fakeProc(t, map[string]string{"1": "init", "42": "bash"}))

	if _, err := loc.Find(true); !errors.Is(err, process.ErrTargetMissing) {
		t.Errorf("Find(first) = %v, want ErrTargetMissing", err)
	}
	if _, err := loc.Find(false); !errors.Is(err, process.ErrTargetClosed) {
		t.Errorf("Find(again) = %v, want ErrTargetClosed", err)
	}
}

func TestLocatorSkipsShortMaps(t *testing.T) {
	root := fakeProc(t, map[string]string{"7": "BaldursGate"})
	if err := os.WriteFile(filepath.Join(root, "7", "maps"), []byte(gameMaps[:60]), 0o644); err != nil {
		t.Fatal(err)
	}
	loc := testLocator(t, root)

	candidates, err := loc.Candidates()
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("Candidates = %+v, want none", candidates)
	}
}

func TestLocatorMissingRoot(t *testing.T) {
	loc := testLocator(t, filepath.Join(t.TempDir(), "nope"))
	if _, err := loc.Find(true); err == nil {
		t.Error("Find with a missing root should fail")
	}
}
