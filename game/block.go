package game

import (
	"iemem/process"
	"iemem/process_blob"
	"iemem/remote"
)

// blockChannel serves reads inside a previously fetched block from memory and
// forwards everything else (pointer targets) to the underlying channel.
type blockChannel struct {
	block *process_blob.ProcessBlob
	ch    process.Channel
}

var _ process.Channel = blockChannel{}

// readBlock fetches size bytes at p in one read.
func readBlock[T any](ch process.Channel, p remote.Ptr[T], size int64) (blockChannel, error) {
	data, err := p.ReadBytes(ch, process.ProcessMemorySize(size))
	if err != nil {
		return blockChannel{}, err
	}
	return blockChannel{block: process_blob.NewProcessBlob(p.Addr(), data), ch: ch}, nil
}

func (b blockChannel) covers(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) bool {
	start := b.block.Base()
	return addr >= start && uint64(addr-start)+uint64(size) <= uint64(b.block.Size())
}

func (b blockChannel) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	if b.covers(addr, size) {
		return b.block.ReadMemory(addr, size)
	}
	return b.ch.ReadMemory(addr, size)
}

func (b blockChannel) ReadMemoryInto(buf []byte, addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (int, error) {
	if b.covers(addr, size) {
		return b.block.ReadMemoryInto(buf, addr, size)
	}
	return b.ch.ReadMemoryInto(buf, addr, size)
}

// span returns the bytes needed to cover every field, given as offset and
// width pairs.
func span(fields ...[2]int64) int64 {
	var end int64
	for _, f := range fields {
		end = max(end, f[0]+f[1])
	}
	return end
}
