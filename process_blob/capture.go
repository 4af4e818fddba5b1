package process_blob

import (
	"fmt"

	"iemem/process"
	"iemem/process/memory_map"

	"github.com/dustin/go-humanize"
)

// DefaultMaxRegion bounds the size of a single captured region
const DefaultMaxRegion = 256 * 1024 * 1024

// Source is a target that can be recorded: a channel that knows its memory
// map and whether it is still alive.
type Source interface {
	process.Channel
	process.Liveness
	Target() *process.TargetProcess
	GetMemoryMap() ([]memory_map.MemoryMapItem, error)
}

// Capture copies every readable region of src into a snapshot.
// Regions larger than maxRegion are listed in the snapshot's memory map but
// not captured; regions that fail to read are skipped. Losing the target
// aborts the capture.
func Capture(src Source, maxRegion uint64) (*ProcessDump, error) {
	target := src.Target()
	if target == nil {
		return nil, process.ErrProcessNotOpen
	}
	mm, err := src.GetMemoryMap()
	if err != nil {
		return nil, err
	}

	dump := NewProcessDump()
	dump.PID = target.PID
	dump.Name = target.Name
	dump.Exe = target.Exe
	dump.BaseAddress = target.BaseAddress
	dump.MemoryMap = mm

	var skipped, failed int
	for _, region := range mm {
		if !region.IsReadable() {
			continue
		}
		if uint64(region.Size) > maxRegion {
			dump.log.Debugln("Skipping large region at", fmt.Sprintf("%x", region.Address), humanize.Bytes(uint64(region.Size)))
			skipped++
			continue
		}

		data, err := src.ReadMemory(process.ProcessMemoryAddress(region.Address), process.ProcessMemorySize(region.Size))
		if err != nil {
			if !src.Exists() {
				return nil, fmt.Errorf("%w: during capture", process.ErrTargetClosed)
			}
			dump.log.Debugln("Failed to read memory region at", fmt.Sprintf("%x", region.Address), err)
			failed++
			continue
		}
		dump.Blobs[region.Address] = data
	}
	dump.reindex()

	dump.log.Infoln("Captured", len(dump.Blobs), "regions,", humanize.Bytes(dump.CapturedBytes()), "(", skipped, "too large,", failed, "unreadable )")
	return dump, nil
}
