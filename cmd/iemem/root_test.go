package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"iemem/process/memory_map"
	"iemem/process_blob"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		snapshotPath = ""
		peekRelative = false
		peekHighlight = ""
		baseOverride = ""
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("iemem %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0x27780", 0x27780},
		{"27780", 0x27780},
		{"0X7FFF0000", 0x7fff0000},
	}
	for _, tt := range tests {
		got, err := parseAddress(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseAddress(%q) = %x, %v; want %x", tt.in, got, err, tt.want)
		}
	}
	if _, err := parseAddress("zz"); err == nil {
		t.Error("parseAddress accepted a non hex address")
	}
}

func TestLayoutsCommand(t *testing.T) {
	out := run(t, "layouts")
	for _, want := range []string{"bgee-2.6", "bgee-2.6-docs", "BaldursGate,BaldursGateII", "0x3A08"} {
		if !strings.Contains(out, want) {
			t.Errorf("layouts output lacks %q:\n%s", want, out)
		}
	}
}

func writeSnapshot(t *testing.T) string {
	t.Helper()
	dump := process_blob.NewProcessDump()
	dump.Metadata = process_blob.Metadata{PID: 77, Name: "BaldursGate", BaseAddress: 0x400000}
	dump.AddRegion(memory_map.MemoryMapItem{Address: 0x400000, Size: 32, Perms: "r--p", Path: "/opt/bg/BaldursGate"},
		[]byte("infinity engine snapshot fixture"))
	dump.MemoryMap = append(dump.MemoryMap, memory_map.MemoryMapItem{Address: 0x800000, Size: 4096, Perms: "---p"})

	path := filepath.Join(t.TempDir(), "game"+process_blob.ArchiveExt)
	if err := dump.SaveArchive(path); err != nil {
		t.Fatalf("SaveArchive: %v", err)
	}
	return path
}

func TestSnapshotInfo(t *testing.T) {
	path := writeSnapshot(t)

	out := run(t, "snapshot", "info", path)
	for _, want := range []string{"BaldursGate (pid 77)", "captured 1 of 2 regions", "000000400000", "/opt/bg/BaldursGate", "4.0 KiB"} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot info lacks %q:\n%s", want, out)
		}
	}
}

func TestPeekSnapshot(t *testing.T) {
	path := writeSnapshot(t)

	out := run(t, "peek", "--snapshot", path, "--relative", "0x9", "6")
	if !strings.Contains(out, "engine") {
		t.Errorf("peek output lacks the bytes read:\n%s", out)
	}
	if !strings.Contains(out, "400009") {
		t.Errorf("peek output does not start at the module base offset:\n%s", out)
	}
}

// writeBaselessSnapshot records a snapshot without a base address whose maps
// listing puts the module at 0x400000 on line 3.
func writeBaselessSnapshot(t *testing.T) string {
	t.Helper()
	dump := process_blob.NewProcessDump()
	dump.Metadata = process_blob.Metadata{PID: 78, Name: "BaldursGate"}
	dump.AddRegion(memory_map.MemoryMapItem{Address: 0x400000, Size: 32, Perms: "rw-p"},
		[]byte("infinity engine snapshot fixture"))
	dump.Listing = []memory_map.MemoryMapItem{
		{Address: 0x100000, Size: 0x1000, Perms: "r--p", Path: "/opt/bg/BaldursGate"},
		{Address: 0x101000, Size: 0x1000, Perms: "r-xp", Path: "/opt/bg/BaldursGate"},
		{Address: 0x102000, Size: 0x1000, Perms: "r--p", Path: "/opt/bg/BaldursGate"},
		{Address: 0x400000, Size: 32, Perms: "rw-p"},
	}

	path := filepath.Join(t.TempDir(), "baseless"+process_blob.ArchiveExt)
	if err := dump.SaveArchive(path); err != nil {
		t.Fatalf("SaveArchive: %v", err)
	}
	return path
}

func TestPeekBaseFromListing(t *testing.T) {
	path := writeBaselessSnapshot(t)

	out := run(t, "peek", "--snapshot", path, "--relative", "0x9", "6")
	if !strings.Contains(out, "400009") || !strings.Contains(out, "engine") {
		t.Errorf("peek did not resolve the base from the maps listing:\n%s", out)
	}
}

func TestBaseOverride(t *testing.T) {
	path := writeBaselessSnapshot(t)

	out := run(t, "peek", "--snapshot", path, "--base", "0x400010", "--relative", "0", "8")
	if !strings.Contains(out, "400010") || !strings.Contains(out, "snapshot") {
		t.Errorf("peek ignored --base:\n%s", out)
	}
}
