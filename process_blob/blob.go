package process_blob

import (
	"fmt"

	"iemem/process"
)

// ProcessBlob is a single contiguous span of target memory held in the host.
// It serves reads by absolute target address, so decoders can run against it
// exactly as they run against a live channel.
type ProcessBlob struct {
	baseaddress process.ProcessMemoryAddress
	data        []byte
}

var _ process.Channel = (*ProcessBlob)(nil)

func NewProcessBlob(baseAddress process.ProcessMemoryAddress, data []byte) *ProcessBlob {
	return &ProcessBlob{
		baseaddress: baseAddress,
		data:        data,
	}
}

func (p *ProcessBlob) Data() []byte {
	return p.data
}

func (p *ProcessBlob) Base() process.ProcessMemoryAddress {
	return p.baseaddress
}

func (p *ProcessBlob) Size() process.ProcessMemorySize {
	return process.ProcessMemorySize(len(p.data))
}

// slice returns the backing bytes for [addr, addr+size) without copying.
func (p *ProcessBlob) slice(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	if addr < p.baseaddress {
		return nil, process.ReadFailed(addr, size, process.ErrAddressNotMapped)
	}
	offset := uint64(addr - p.baseaddress)
	if offset > uint64(len(p.data)) || uint64(size) > uint64(len(p.data))-offset {
		return nil, process.ReadFailed(addr, size, fmt.Errorf("%w: blob covers %s+%#x", process.ErrAddressNotMapped, p.baseaddress, len(p.data)))
	}
	return p.data[offset : offset+uint64(size)], nil
}

// ReadMemory returns a copy of size bytes at addr
func (p *ProcessBlob) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	data, err := p.slice(addr, size)
	if err != nil {
		return nil, err
	}
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

func (p *ProcessBlob) ReadMemoryInto(buf []byte, addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (int, error) {
	if err := process.CheckCapacity(buf, size); err != nil {
		return 0, err
	}
	data, err := p.slice(addr, size)
	if err != nil {
		return 0, err
	}
	return copy(buf, data), nil
}
