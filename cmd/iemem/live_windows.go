//go:build windows

package main

import (
	"iemem/layout"
	"iemem/process_blob"
	"iemem/process_windows"
)

func openLive(l *layout.Layout) (*target, error) {
	p, err := openWindows(l)
	if err != nil {
		return nil, err
	}
	return &target{ch: p, base: p.Target().BaseAddress, close: p.Close}, nil
}

func openWindows(l *layout.Layout) (*process_windows.WindowsProcess, error) {
	found, err := process_windows.NewLocator(l).Find(true)
	if err != nil {
		return nil, err
	}
	return process_windows.Open(found)
}

func captureLive(l *layout.Layout, maxRegion uint64) (*process_blob.ProcessDump, error) {
	p, err := openWindows(l)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return process_blob.Capture(p, maxRegion)
}
