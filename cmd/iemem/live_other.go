//go:build !linux && !windows

package main

import (
	"errors"

	"iemem/layout"
	"iemem/process_blob"
)

var errLiveUnsupported = errors.New("reading a live game is only supported on linux and windows, use --snapshot")

func openLive(l *layout.Layout) (*target, error) {
	return nil, errLiveUnsupported
}

func captureLive(l *layout.Layout, maxRegion uint64) (*process_blob.ProcessDump, error) {
	return nil, errLiveUnsupported
}
