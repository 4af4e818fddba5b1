package process_blob

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"iemem/process"
	"iemem/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/dustin/go-humanize"
)

const (
	metadataFile  = "metadata.json"
	memoryMapFile = "process_memory_map.json"
)

// Metadata describes the process a snapshot was captured from
type Metadata struct {
	PID         process.ProcessID            `json:"pid"`
	Name        string                       `json:"name"`
	Exe         string                       `json:"exe,omitempty"`
	BaseAddress process.ProcessMemoryAddress `json:"base_address"`
}

// ProcessDump is a recorded snapshot of a target: a memory map plus the bytes
// of every region that was captured. It answers reads like the live process
// did at capture time and fails for anything that was not captured.
type ProcessDump struct {
	Metadata
	MemoryMap []memory_map.MemoryMapItem
	Blobs     map[uint64][]byte // Address -> Data

	// Listing is a maps listing in file order, read from archives only.
	Listing []memory_map.MemoryMapItem

	captured []memory_map.MemoryMapItem // regions with data, sorted
	log      *logger.Logger
}

var _ process.Channel = (*ProcessDump)(nil)
var _ process.Liveness = (*ProcessDump)(nil)
var _ process.Attached = (*ProcessDump)(nil)

// NewProcessDump creates a new ProcessDump instance
func NewProcessDump() *ProcessDump {
	return &ProcessDump{
		Blobs: make(map[uint64][]byte),
		log:   logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "snapshot")),
	}
}

// AddRegion records data as the content of region.
func (p *ProcessDump) AddRegion(region memory_map.MemoryMapItem, data []byte) {
	found := false
	for _, item := range p.MemoryMap {
		if item.Address == region.Address {
			found = true
			break
		}
	}
	if !found {
		p.MemoryMap = append(p.MemoryMap, region)
	}
	p.Blobs[region.Address] = data
	p.reindex()
}

// Target returns the captured process description
func (p *ProcessDump) Target() *process.TargetProcess {
	return &process.TargetProcess{
		PID:         p.PID,
		Path:        "",
		Exe:         p.Exe,
		Name:        p.Name,
		BaseAddress: p.BaseAddress,
	}
}

// ResolveBase fills in BaseAddress from the maps listing when the snapshot
// carried no metadata. line is the zero based listing line of the module.
func (p *ProcessDump) ResolveBase(line int) error {
	if p.BaseAddress != 0 {
		return nil
	}
	if p.Listing == nil {
		return errors.New("snapshot has no base address: no metadata and no maps listing")
	}
	base, err := memory_map.BaseAddress(p.Listing, line)
	if err != nil {
		return fmt.Errorf("snapshot base address: %w", err)
	}
	p.BaseAddress = process.ProcessMemoryAddress(base)
	p.log.Debugln("Base address", p.BaseAddress, "from maps listing line", line)
	return nil
}

// Exists is always true: a snapshot never exits.
func (p *ProcessDump) Exists() bool {
	return true
}

func (p *ProcessDump) GetMemoryMap() ([]memory_map.MemoryMapItem, error) {
	result := make([]memory_map.MemoryMapItem, len(p.MemoryMap))
	copy(result, p.MemoryMap)
	return result, nil
}

// CapturedBytes is the total size of region data held by the dump
func (p *ProcessDump) CapturedBytes() uint64 {
	var total uint64
	for _, data := range p.Blobs {
		total += uint64(len(data))
	}
	return total
}

// reindex rebuilds the sorted list of captured regions. Reads only use the
// index, so a loaded dump is safe for concurrent readers.
func (p *ProcessDump) reindex() {
	captured := make([]memory_map.MemoryMapItem, 0, len(p.Blobs))
	for _, region := range p.MemoryMap {
		data, ok := p.Blobs[region.Address]
		if !ok {
			continue
		}
		region.Size = uint(len(data))
		captured = append(captured, region)
	}
	memory_map.Sort(captured)
	p.captured = captured
}

func (p *ProcessDump) slice(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	region := memory_map.Lookup(uint64(addr), p.captured)
	if region == nil {
		return nil, process.ReadFailed(addr, size, process.ErrAddressNotMapped)
	}
	if !region.Contains(uint64(addr), uint64(size)) {
		return nil, process.ReadFailed(addr, size, fmt.Errorf("%w: read crosses end of region 0x%x", process.ErrAddressNotMapped, region.Address))
	}

	data := p.Blobs[region.Address]
	offset := uint64(addr) - region.Address
	return data[offset : offset+uint64(size)], nil
}

func (p *ProcessDump) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	data, err := p.slice(addr, size)
	if err != nil {
		return nil, err
	}
	result := make([]byte, size)
	copy(result, data)
	return result, nil
}

func (p *ProcessDump) ReadMemoryInto(buf []byte, addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (int, error) {
	if err := process.CheckCapacity(buf, size); err != nil {
		return 0, err
	}
	data, err := p.slice(addr, size)
	if err != nil {
		return 0, err
	}
	return copy(buf, data), nil
}

func blobFileName(region memory_map.MemoryMapItem) string {
	return fmt.Sprintf("blob_0x%x_%d.bin", region.Address, region.Size)
}

// Save writes the dump as a directory: metadata, memory map and one file per captured region.
func (p *ProcessDump) Save(dirname string) error {
	if err := os.MkdirAll(dirname, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	metadataJSON, err := json.MarshalIndent(p.Metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dirname, metadataFile), metadataJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	memoryMapJSON, err := json.MarshalIndent(p.MemoryMap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal memory map: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dirname, memoryMapFile), memoryMapJSON, 0644); err != nil {
		return fmt.Errorf("failed to write memory map file: %w", err)
	}

	saved := 0
	for _, region := range p.MemoryMap {
		data, ok := p.Blobs[region.Address]
		if !ok {
			continue
		}
		if err := os.WriteFile(filepath.Join(dirname, blobFileName(region)), data, 0644); err != nil {
			return fmt.Errorf("failed to write region 0x%x: %w", region.Address, err)
		}
		saved++
	}

	p.log.Infoln("Snapshot saved to", dirname, ":", saved, "regions,", humanize.Bytes(p.CapturedBytes()))
	return nil
}

// Load reads a dump directory written by Save
func (p *ProcessDump) Load(dirname string) error {
	metadataBytes, err := os.ReadFile(filepath.Join(dirname, metadataFile))
	if err != nil {
		return fmt.Errorf("failed to read metadata: %w", err)
	}
	if err := json.Unmarshal(metadataBytes, &p.Metadata); err != nil {
		return fmt.Errorf("failed to unmarshal metadata: %w", err)
	}

	mmBytes, err := os.ReadFile(filepath.Join(dirname, memoryMapFile))
	if err != nil {
		return fmt.Errorf("failed to read memory map: %w", err)
	}
	if err := json.Unmarshal(mmBytes, &p.MemoryMap); err != nil {
		return fmt.Errorf("failed to unmarshal memory map: %w", err)
	}

	for _, region := range p.MemoryMap {
		filename := filepath.Join(dirname, blobFileName(region))
		data, err := os.ReadFile(filename)
		if errors.Is(err, os.ErrNotExist) {
			continue // Region not captured (unreadable or too large)
		}
		if err != nil {
			return fmt.Errorf("failed to read blob %s: %w", filename, err)
		}
		p.Blobs[region.Address] = data
	}
	p.reindex()

	p.log.Infoln("Loaded snapshot of", p.Name, "pid", p.PID, ":", len(p.Blobs), "of", len(p.MemoryMap), "regions,", humanize.Bytes(p.CapturedBytes()))
	return nil
}

// LoadDir loads a dump directory
func LoadDir(dirname string) (*ProcessDump, error) {
	dump := NewProcessDump()
	if err := dump.Load(dirname); err != nil {
		return nil, err
	}
	return dump, nil
}
