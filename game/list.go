package game

import (
	"fmt"

	"iemem/layout"
	"iemem/process"
	"iemem/remote"
)

// PtrList tags pointers to a counted linked list container
type PtrList struct{}

// ReadPtrList walks the list held in the container at p. It reads the
// element count first and visits exactly that many nodes; a zero count
// returns without touching the nodes.
func ReadPtrList[T any, P any](ch process.Channel, l *layout.Layout, p remote.Ptr[PtrList], decode func(process.Channel, remote.Ptr[P]) (T, error)) ([]T, error) {
	off := l.PtrList

	count, err := remote.ReadAt[uint32](ch, p, off.Count.Int64())
	if err != nil {
		return nil, fmt.Errorf("list count at %s: %w", p, err)
	}
	if count == 0 {
		return []T{}, nil
	}

	node, err := remote.ReadPtr[remote.Void](ch, p.ByteOffset(off.Head.Int64()))
	if err != nil {
		return nil, fmt.Errorf("list head at %s: %w", p, err)
	}

	// count comes from the target; grow as nodes are actually read
	result := make([]T, 0, min(count, 64))
	for i := range count {
		if node.IsNull() {
			return nil, process.ReadFailed(node.Addr(), process.PointerSize, fmt.Errorf("list at %s ends at node %d of %d", p, i, count))
		}

		payload, err := remote.ReadPtr[P](ch, node.ByteOffset(off.Payload.Int64()))
		if err != nil {
			return nil, fmt.Errorf("list node %d: %w", i, err)
		}
		v, err := decode(ch, payload)
		if err != nil {
			return nil, fmt.Errorf("list node %d: %w", i, err)
		}
		result = append(result, v)

		if i+1 == count {
			break
		}
		if node, err = remote.ReadPtr[remote.Void](ch, node.ByteOffset(off.Next.Int64())); err != nil {
			return nil, fmt.Errorf("list node %d next: %w", i, err)
		}
	}
	return result, nil
}
