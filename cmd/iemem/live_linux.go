//go:build linux

package main

import (
	"iemem/layout"
	"iemem/process_blob"
	"iemem/process_linux"
)

func openLive(l *layout.Layout) (*target, error) {
	p, err := openLinux(l)
	if err != nil {
		return nil, err
	}
	return &target{ch: p, base: p.Target().BaseAddress, close: p.Close}, nil
}

func openLinux(l *layout.Layout) (*process_linux.LinuxProcess, error) {
	found, err := process_linux.NewLocator(l).Find(true)
	if err != nil {
		return nil, err
	}
	return process_linux.Open(found)
}

func captureLive(l *layout.Layout, maxRegion uint64) (*process_blob.ProcessDump, error) {
	p, err := openLinux(l)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return process_blob.Capture(p, maxRegion)
}
