package game

import (
	"errors"
	"testing"

	"iemem/layout"
	"iemem/process"
	"iemem/remote"

	"github.com/google/go-cmp/cmp"
)

func readU32(ch process.Channel, p remote.Ptr[uint32]) (uint32, error) {
	return remote.Read(ch, p)
}

func TestReadPtrList(t *testing.T) {
	l := testLayout(t, layout.Default, 1)
	m := newImage(t, l, 0x400)

	var payloads []process.ProcessMemoryAddress
	for _, v := range []uint32{10, 20, 30} {
		p := m.alloc(4)
		m.put(p, 0, v)
		payloads = append(payloads, p)
	}
	container := m.alloc(0x20)
	m.ptrList(container, payloads...)

	got, err := ReadPtrList(m.blob(), l, remote.New[PtrList](container), readU32)
	if err != nil {
		t.Fatalf("ReadPtrList: %v", err)
	}
	if diff := cmp.Diff([]uint32{10, 20, 30}, got); diff != "" {
		t.Errorf("ReadPtrList mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPtrListEmpty(t *testing.T) {
	l := testLayout(t, layout.Default, 1)
	m := newImage(t, l, 0x100)
	container := m.alloc(0x20)
	// a garbage head must not be followed when the count is zero
	m.put(container, l.PtrList.Head, uint64(0xDEADBEEF))

	ch := &countingChannel{Channel: m.blob()}
	decoded := 0
	got, err := ReadPtrList(ch, l, remote.New[PtrList](container), func(ch process.Channel, p remote.Ptr[uint32]) (uint32, error) {
		decoded++
		return 0, nil
	})
	if err != nil {
		t.Fatalf("ReadPtrList: %v", err)
	}
	if len(got) != 0 || got == nil {
		t.Errorf("ReadPtrList = %#v, want empty", got)
	}
	if ch.reads != 1 || decoded != 0 {
		t.Errorf("empty list issued %d reads and %d decodes, want 1 and 0", ch.reads, decoded)
	}
}

func TestReadPtrListStopsAtCount(t *testing.T) {
	l := testLayout(t, layout.Default, 1)
	m := newImage(t, l, 0x400)

	a, b := m.alloc(4), m.alloc(4)
	m.put(a, 0, uint32(1))
	m.put(b, 0, uint32(2))
	container := m.alloc(0x20)
	m.ptrList(container, a, b)

	// close the list into a cycle: only the count bounds the walk
	off := l.PtrList
	head, err := remote.ReadPtr[remote.Void](m.blob(), remote.New[remote.Void](container).ByteOffset(off.Head.Int64()))
	if err != nil {
		t.Fatal(err)
	}
	second, err := remote.ReadPtr[remote.Void](m.blob(), head.ByteOffset(off.Next.Int64()))
	if err != nil {
		t.Fatal(err)
	}
	m.put(second.Addr(), off.Next, uint64(head.Addr()))

	got, err := ReadPtrList(m.blob(), l, remote.New[PtrList](container), readU32)
	if err != nil {
		t.Fatalf("ReadPtrList: %v", err)
	}
	if diff := cmp.Diff([]uint32{1, 2}, got); diff != "" {
		t.Errorf("ReadPtrList mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPtrListShorterThanCount(t *testing.T) {
	l := testLayout(t, layout.Default, 1)
	m := newImage(t, l, 0x400)

	a := m.alloc(4)
	container := m.alloc(0x20)
	m.ptrList(container, a)
	m.put(container, l.PtrList.Count, uint32(3))

	_, err := ReadPtrList(m.blob(), l, remote.New[PtrList](container), readU32)
	if !errors.Is(err, process.ErrMemoryReadFailed) {
		t.Errorf("ReadPtrList = %v, want ErrMemoryReadFailed", err)
	}
}

func TestReadPtrListDecodeError(t *testing.T) {
	l := testLayout(t, layout.Default, 1)
	m := newImage(t, l, 0x400)

	container := m.alloc(0x20)
	m.ptrList(container, 0x10)

	_, err := ReadPtrList(m.blob(), l, remote.New[PtrList](container), readU32)
	if !errors.Is(err, process.ErrMemoryReadFailed) {
		t.Errorf("ReadPtrList = %v, want ErrMemoryReadFailed", err)
	}
}
