package remote

import (
	"encoding/binary"
	"errors"
	"testing"

	"iemem/process"
	"iemem/process_blob"

	"github.com/google/go-cmp/cmp"
)

const base = process.ProcessMemoryAddress(0x7f0000001000)

type countingChannel struct {
	process.Channel
	reads int
}

func (c *countingChannel) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	c.reads++
	return c.Channel.ReadMemory(addr, size)
}

func (c *countingChannel) ReadMemoryInto(buf []byte, addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (int, error) {
	c.reads++
	return c.Channel.ReadMemoryInto(buf, addr, size)
}

func TestByteOffset(t *testing.T) {
	p := New[Void](base)

	deltas := []int64{0, 1, -1, 0x18, -0x18, 0x4A00, 1 << 40}
	for _, a := range deltas {
		for _, b := range deltas {
			if got, want := p.ByteOffset(a).ByteOffset(b), p.ByteOffset(a+b); got != want {
				t.Errorf("ByteOffset(%d).ByteOffset(%d) = %s, want %s", a, b, got, want)
			}
		}
	}

	if got := p.ByteOffset(0); got != p {
		t.Errorf("ByteOffset(0) = %s, want %s", got, p)
	}
}

func TestCastKeepsAddress(t *testing.T) {
	p := New[uint32](base + 8)
	q := Cast[int16](p)
	if q.Addr() != p.Addr() {
		t.Errorf("Cast moved the address: %s -> %s", p, q)
	}
	if !New[Void](0).IsNull() || p.IsNull() {
		t.Error("IsNull")
	}
}

func TestCompare(t *testing.T) {
	p := New[Void](base + 0x10)
	if p.Compare(base) <= 0 || p.Compare(base+0x10) != 0 || p.Compare(base+0x20) >= 0 {
		t.Error("Compare does not order by address")
	}
	if !p.Within(base, base+0x11) || p.Within(base, base+0x10) {
		t.Error("Within is not half open")
	}
}

type point struct {
	X, Y int32
}

func TestRead(t *testing.T) {
	data := make([]byte, 32)
	binary.LittleEndian.PutUint16(data[0:], 0xBEEF)
	binary.LittleEndian.PutUint32(data[4:], uint32(0xFFFFFFFE)) // -2
	binary.LittleEndian.PutUint32(data[8:], 100)
	binary.LittleEndian.PutUint32(data[12:], uint32(0xFFFFFF9C)) // -100
	binary.LittleEndian.PutUint64(data[16:], uint64(base)+24)
	ch := process_blob.NewProcessBlob(base, data)

	u16, err := Read(ch, New[uint16](base))
	if err != nil || u16 != 0xBEEF {
		t.Errorf("Read[uint16] = %#x, %v", u16, err)
	}

	i32, err := ReadAt[int32](ch, New[Void](base), 4)
	if err != nil || i32 != -2 {
		t.Errorf("ReadAt[int32] = %d, %v", i32, err)
	}

	pt, err := ReadAt[point](ch, New[Void](base), 8)
	if err != nil {
		t.Fatalf("ReadAt[point]: %v", err)
	}
	if diff := cmp.Diff(point{X: 100, Y: -100}, pt); diff != "" {
		t.Errorf("point mismatch (-want +got):\n%s", diff)
	}

	next, err := ReadPtr[point](ch, New[Void](base+16))
	if err != nil || next.Addr() != base+24 {
		t.Errorf("ReadPtr = %s, %v", next, err)
	}
}

func TestReadPastEnd(t *testing.T) {
	ch := process_blob.NewProcessBlob(base, make([]byte, 6))

	if _, err := Read(ch, New[uint64](base)); !errors.Is(err, process.ErrMemoryReadFailed) {
		t.Errorf("Read past end = %v, want ErrMemoryReadFailed", err)
	}
	if _, err := Read(ch, New[uint16](base-2)); !errors.Is(err, process.ErrMemoryReadFailed) {
		t.Errorf("Read before base = %v, want ErrMemoryReadFailed", err)
	}
}

func TestReadSlice(t *testing.T) {
	data := make([]byte, 5*4)
	for i := range 5 {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(i*i))
	}
	ch := &countingChannel{Channel: process_blob.NewProcessBlob(base, data)}

	got, err := ReadSlice(ch, New[uint32](base), 5)
	if err != nil {
		t.Fatalf("ReadSlice: %v", err)
	}
	if diff := cmp.Diff([]uint32{0, 1, 4, 9, 16}, got); diff != "" {
		t.Errorf("ReadSlice mismatch (-want +got):\n%s", diff)
	}
	if ch.reads != 1 {
		t.Errorf("ReadSlice issued %d reads, want 1", ch.reads)
	}

	empty, err := ReadSlice(ch, New[uint32](base), 0)
	if err != nil || len(empty) != 0 {
		t.Errorf("ReadSlice(0) = %v, %v", empty, err)
	}
	if ch.reads != 1 {
		t.Errorf("ReadSlice(0) touched the channel")
	}

	if _, err := ReadSlice(ch, New[uint32](base), 6); !errors.Is(err, process.ErrMemoryReadFailed) {
		t.Errorf("ReadSlice past end = %v", err)
	}
	if _, err := ReadSlice(ch, New[uint32](base), -1); err == nil {
		t.Error("ReadSlice(-1) should fail")
	}
}

func TestReadNotFixedSize(t *testing.T) {
	ch := process_blob.NewProcessBlob(base, make([]byte, 16))
	if _, err := Read(ch, New[map[int]int](base)); err == nil {
		t.Error("Read of a map type should fail")
	}
}
