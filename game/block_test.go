package game

import (
	"errors"
	"testing"

	"iemem/process"
	"iemem/process_blob"
	"iemem/remote"
)

func TestReadBlock(t *testing.T) {
	const start = process.ProcessMemoryAddress(0x7f0000001000)
	ch := &countingChannel{Channel: process_blob.NewProcessBlob(start, []byte{1, 2, 3, 4, 5, 6, 7, 8})}

	block, err := readBlock(ch, remote.New[remote.Void](start+2), 4)
	if err != nil {
		t.Fatalf("readBlock: %v", err)
	}
	if ch.reads != 1 {
		t.Fatalf("readBlock made %d reads", ch.reads)
	}

	v, err := remote.ReadAt[uint16](block, remote.New[remote.Void](start+2), 2)
	if err != nil || v != 0x0605 {
		t.Errorf("read inside block = %#x, %v", v, err)
	}
	if ch.reads != 1 {
		t.Errorf("read inside the block reached the channel")
	}

	// outside the block: forwarded
	b, err := remote.Read(block, remote.New[uint8](start+7))
	if err != nil || b != 8 {
		t.Errorf("forwarded read = %d, %v", b, err)
	}
	if ch.reads != 2 {
		t.Errorf("read outside the block was not forwarded (%d reads)", ch.reads)
	}

	if _, err := readBlock(ch, remote.New[remote.Void](start+6), 4); !errors.Is(err, process.ErrMemoryReadFailed) {
		t.Errorf("block past the end = %v", err)
	}
}
