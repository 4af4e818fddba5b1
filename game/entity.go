// Package game decodes the target's object graph: the entity handle array,
// the script identity and base records of every object, and the creature
// (sprite) records with their stats and effect lists.
//
// Every decoder is a plain function of a process.Channel, a layout and a base
// pointer. Nothing here caches across calls or keeps references into the
// target after returning.
package game

import (
	"encoding/binary"
	"fmt"

	"iemem/layout"
	"iemem/process"
	"iemem/remote"
)

// Object tags pointers to a game object record.
type Object struct{}

// InvalidEntityID marks an unused slot in the entity list
const InvalidEntityID = 0xFFFF

// EntityHandle is one slot of the entity list.
type EntityHandle struct {
	ID  uint16
	Ptr remote.Ptr[Object]
}

func (h EntityHandle) IsValid() bool {
	return h.ID != InvalidEntityID
}

func (h EntityHandle) String() string {
	if !h.IsValid() {
		return "entity(invalid)"
	}
	return fmt.Sprintf("entity(%d @ %s)", h.ID, h.Ptr)
}

// ReadEntityList reads every slot of the entity list found at
// base+EntityList.Offset with a single read, then decodes the slots.
func ReadEntityList(ch process.Channel, l *layout.Layout, base remote.Ptr[remote.Void]) ([]EntityHandle, error) {
	if a, ok := ch.(process.Attached); ok && a.Target() == nil {
		return nil, process.ErrProcessNotOpen
	}
	if live, ok := ch.(process.Liveness); ok && !live.Exists() {
		return nil, process.ErrTargetClosed
	}

	list := l.EntityList
	stride := int(list.Stride)
	start := base.ByteOffset(list.Offset.Int64())

	data, err := start.ReadBytes(ch, process.ProcessMemorySize(list.Count*stride))
	if err != nil {
		return nil, fmt.Errorf("entity list at %s: %w", start, err)
	}

	handles := make([]EntityHandle, list.Count)
	for i := range handles {
		slot := data[i*stride : (i+1)*stride]
		handles[i] = EntityHandle{
			ID:  binary.LittleEndian.Uint16(slot[list.ID:]),
			Ptr: remote.New[Object](process.ProcessMemoryAddress(binary.LittleEndian.Uint64(slot[list.Ptr:]))),
		}
	}
	return handles, nil
}

// ValidHandles filters out unused slots, keeping list order.
func ValidHandles(handles []EntityHandle) []EntityHandle {
	var valid []EntityHandle
	for _, h := range handles {
		if h.IsValid() {
			valid = append(valid, h)
		}
	}
	return valid
}
