// Package remote provides typed coordinates into a target's address space.
//
// A Ptr is never dereferenced in the host; every read goes through a
// process.Channel and decodes a fully read, little-endian buffer.
package remote

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"iemem/process"
)

// Void tags a pointer whose pointee layout is not modelled.
type Void struct{}

// Ptr is a foreign address whose pointee is a T. T is only a tag.
type Ptr[T any] struct {
	addr process.ProcessMemoryAddress
}

// New returns a Ptr[T] at addr
func New[T any](addr process.ProcessMemoryAddress) Ptr[T] {
	return Ptr[T]{addr: addr}
}

// Addr returns the numeric foreign address
func (p Ptr[T]) Addr() process.ProcessMemoryAddress {
	return p.addr
}

func (p Ptr[T]) IsNull() bool {
	return p.addr == 0
}

func (p Ptr[T]) String() string {
	return p.addr.ToString()
}

// ByteOffset returns the address delta bytes from p. No bounds checking is
// done here; out of range addresses fail at the channel.
func (p Ptr[T]) ByteOffset(delta int64) Ptr[T] {
	return Ptr[T]{addr: p.addr.Add(delta)}
}

// Compare orders by numeric address only.
func (p Ptr[T]) Compare(addr process.ProcessMemoryAddress) int {
	return cmp.Compare(p.addr, addr)
}

// Within reports whether p lies in [start, end).
func (p Ptr[T]) Within(start, end process.ProcessMemoryAddress) bool {
	return p.Compare(start) >= 0 && p.Compare(end) < 0
}

// ReadBytes reads n raw bytes at p.
func (p Ptr[T]) ReadBytes(ch process.Channel, n process.ProcessMemorySize) ([]byte, error) {
	return ch.ReadMemory(p.addr, n)
}

// Cast reinterprets the element type without touching the address.
func Cast[U, T any](p Ptr[T]) Ptr[U] {
	return Ptr[U]{addr: p.addr}
}

// SizeOf returns the encoded size of T, or -1 when T is not fixed size.
func SizeOf[T any]() int {
	var t T
	return binary.Size(t)
}

// Read decodes one T at p.
func Read[T any](ch process.Channel, p Ptr[T]) (T, error) {
	var v T
	size := binary.Size(v)
	if size < 0 {
		return v, fmt.Errorf("remote: %T is not a fixed size value", v)
	}
	if size == 0 {
		return v, nil
	}

	buf := make([]byte, size)
	if _, err := ch.ReadMemoryInto(buf, p.addr, process.ProcessMemorySize(size)); err != nil {
		return v, err
	}
	if _, err := binary.Decode(buf, binary.LittleEndian, &v); err != nil {
		return v, fmt.Errorf("remote: decode %T at %s: %w", v, p, err)
	}
	return v, nil
}

// ReadAt decodes one T at base+offset.
func ReadAt[T any, B any](ch process.Channel, base Ptr[B], offset int64) (T, error) {
	return Read(ch, Cast[T](base.ByteOffset(offset)))
}

// ReadPtr reads a pointer sized field at p and returns it as a Ptr[T].
func ReadPtr[T any, U any](ch process.Channel, p Ptr[U]) (Ptr[T], error) {
	raw, err := Read(ch, Cast[uint64](p))
	if err != nil {
		return Ptr[T]{}, err
	}
	return New[T](process.ProcessMemoryAddress(raw)), nil
}

// ReadSlice reads count consecutive T values starting at p with a single
// channel read of count*SizeOf[T] bytes, then decodes each element.
func ReadSlice[T any](ch process.Channel, p Ptr[T], count int) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("remote: ReadSlice count must not be negative, got %d", count)
	}
	stride := SizeOf[T]()
	if stride < 0 {
		var t T
		return nil, fmt.Errorf("remote: %T is not a fixed size value", t)
	}
	if count == 0 || stride == 0 {
		return make([]T, count), nil
	}

	total := process.ProcessMemorySize(stride * count)
	data, err := ch.ReadMemory(p.addr, total)
	if err != nil {
		return nil, err
	}
	if len(data) != int(total) {
		return nil, process.ReadFailed(p.addr, total, fmt.Errorf("got %d bytes", len(data)))
	}

	result := make([]T, count)
	for i := range count {
		element := data[i*stride : (i+1)*stride]
		if _, err := binary.Decode(element, binary.LittleEndian, &result[i]); err != nil {
			return nil, fmt.Errorf("remote: ReadSlice element %d: %w", i, err)
		}
	}
	return result, nil
}
