package game

import (
	"encoding/binary"
	"testing"

	"iemem/layout"
	"iemem/process"
	"iemem/process_blob"
	"iemem/remote"
)

const moduleBase = process.ProcessMemoryAddress(0x555500000000)

// image is a fake target address space: one region starting at moduleBase
// holding the entity list, with a bump allocator for records behind it.
type image struct {
	t      *testing.T
	layout *layout.Layout
	data   []byte
	next   int
}

func testLayout(t *testing.T, build string, count int) *layout.Layout {
	t.Helper()
	l, err := layout.Builtin(build)
	if err != nil {
		t.Fatalf("Builtin(%s): %v", build, err)
	}
	if count > 0 {
		l.EntityList.Count = count
	}
	return l
}

func newImage(t *testing.T, l *layout.Layout, heap int) *image {
	t.Helper()
	listEnd := int(l.EntityList.Offset) + l.EntityList.Count*int(l.EntityList.Stride)
	m := &image{
		t:      t,
		layout: l,
		data:   make([]byte, listEnd+heap),
		next:   listEnd,
	}
	for i := range l.EntityList.Count {
		m.setHandle(i, InvalidEntityID, 0)
	}
	return m
}

func (m *image) offset(addr process.ProcessMemoryAddress, n int) int {
	m.t.Helper()
	off := int(addr - moduleBase)
	if addr < moduleBase || off+n > len(m.data) {
		m.t.Fatalf("fixture write at %s+%d outside the image", addr, n)
	}
	return off
}

func (m *image) alloc(n int) process.ProcessMemoryAddress {
	m.t.Helper()
	m.next = (m.next + 15) &^ 15
	addr := moduleBase + process.ProcessMemoryAddress(m.next)
	m.offset(addr, n)
	m.next += n
	return addr
}

func (m *image) put(addr process.ProcessMemoryAddress, offset layout.Offset, v any) {
	m.t.Helper()
	at := addr.Add(offset.Int64())
	off := m.offset(at, binary.Size(v))
	if _, err := binary.Encode(m.data[off:], binary.LittleEndian, v); err != nil {
		m.t.Fatalf("encode %T: %v", v, err)
	}
}

func (m *image) putBytes(addr process.ProcessMemoryAddress, offset layout.Offset, b []byte) {
	m.t.Helper()
	at := addr.Add(offset.Int64())
	copy(m.data[m.offset(at, len(b)):], b)
}

func (m *image) putResRef(addr process.ProcessMemoryAddress, offset layout.Offset, s string) {
	var raw [ResRefSize]byte
	copy(raw[:], s)
	m.putBytes(addr, offset, raw[:])
}

// cString allocates s with a terminating NUL and returns its address
func (m *image) cString(s string) process.ProcessMemoryAddress {
	addr := m.alloc(len(s) + 1)
	m.putBytes(addr, 0, append([]byte(s), 0))
	return addr
}

func (m *image) setHandle(i int, id uint16, ptr process.ProcessMemoryAddress) {
	list := m.layout.EntityList
	slot := moduleBase.Add(list.Offset.Int64() + int64(i)*list.Stride.Int64())
	m.put(slot, list.ID, id)
	m.put(slot, list.Ptr, uint64(ptr))
}

func (m *image) blob() *process_blob.ProcessBlob {
	return process_blob.NewProcessBlob(moduleBase, m.data)
}

func blobAt(raw []byte) *process_blob.ProcessBlob {
	return process_blob.NewProcessBlob(moduleBase, raw)
}

func (m *image) base() remote.Ptr[remote.Void] {
	return remote.New[remote.Void](moduleBase)
}

type aiTypeFields struct {
	name      string
	enemyAlly uint8
	general   uint8
	race      uint8
	class     uint8
	instance  int32
	gender    uint8
	alignment uint8
}

type objectFields struct {
	kind   uint8
	x, y   int32
	z      int32
	id     int32
	aiType aiTypeFields
}

// object writes an object head of the size a sprite needs, so any kind can
// later be extended to a sprite.
func (m *image) object(fields objectFields) process.ProcessMemoryAddress {
	l := m.layout
	addr := m.alloc(int(l.Sprite.TimedEffects) + 0x40)
	off := l.Object

	m.put(addr, off.ObjectType, fields.kind)
	m.put(addr, off.Pos, Point{X: fields.x, Y: fields.y})
	m.put(addr, off.PosZ, fields.z)
	m.put(addr, off.ListType, uint8(1))
	m.put(addr, off.ID, fields.id)
	m.put(addr, off.CanBeSeen, int16(1))

	ai := addr.Add(off.TypeAI.Int64())
	t := l.AIType
	if fields.aiType.name != "" {
		m.put(ai, t.Name, uint64(m.cString(fields.aiType.name)))
	}
	m.put(ai, t.EnemyAlly, fields.aiType.enemyAlly)
	m.put(ai, t.General, fields.aiType.general)
	m.put(ai, t.Race, fields.aiType.race)
	m.put(ai, t.Class, fields.aiType.class)
	m.put(ai, t.Instance, fields.aiType.instance)
	m.put(ai, t.SpecialCase, [5]uint8{1, 2, 3, 4, 5})
	m.put(ai, t.Specifics, uint8(7))
	m.put(ai, t.Gender, fields.aiType.gender)
	m.put(ai, t.Alignment, fields.aiType.alignment)
	return addr
}

type effectFields struct {
	id       uint32
	res      string
	duration uint32
}

func (m *image) effect(fields effectFields) process.ProcessMemoryAddress {
	off := m.layout.Effect
	addr := m.alloc(int(off.Base) + int(off.SourceRes) + ResRefSize)
	base := addr.Add(off.Base.Int64())

	m.putResRef(base, off.Version, "V2.0")
	m.put(base, off.EffectID, fields.id)
	m.put(base, off.SpellLevel, int32(3))
	m.put(base, off.DurationType, uint32(1))
	m.put(base, off.Duration, fields.duration)
	m.putResRef(base, off.Res, fields.res)
	m.putResRef(base, off.SourceRes, "SPWI101")
	return addr
}

// ptrList writes a counted list container at container with one node per
// payload.
func (m *image) ptrList(container process.ProcessMemoryAddress, payloads ...process.ProcessMemoryAddress) {
	off := m.layout.PtrList
	nodes := make([]process.ProcessMemoryAddress, len(payloads))
	for i := range payloads {
		nodes[i] = m.alloc(0x20)
	}
	for i, node := range nodes {
		if i+1 < len(nodes) {
			m.put(node, off.Next, uint64(nodes[i+1]))
		}
		m.put(node, off.Payload, uint64(payloads[i]))
	}

	m.put(container, off.Count, uint32(len(payloads)))
	if len(nodes) > 0 {
		m.put(container, off.Head, uint64(nodes[0]))
	}
}

type spriteFields struct {
	objectFields
	resRef   string
	name     string
	area     string
	hp       int16
	maxHP    int16
	levels   [3]int16
	timed    []effectFields
	equipped []effectFields
}

func (m *image) sprite(fields spriteFields) process.ProcessMemoryAddress {
	fields.kind = 0x31
	addr := m.object(fields.objectFields)
	l := m.layout
	off := l.Sprite

	m.putResRef(addr, off.ResRef, fields.resRef)
	if fields.name != "" {
		m.put(addr, off.Name, uint64(m.cString(fields.name)))
	}
	m.putResRef(addr, off.CurrentArea, fields.area)

	header := addr.Add(off.Header.Int64())
	m.put(header, l.Header.HP, fields.hp)
	m.put(header, l.Header.Level1, int8(fields.levels[0]))
	m.put(header, l.Header.Level2, int8(fields.levels[1]))
	m.put(header, l.Header.Level3, int8(fields.levels[2]))

	derived := addr.Add(off.Derived.Int64())
	m.put(derived, l.Derived.MaxHP, fields.maxHP)
	m.put(derived, l.Derived.AC, int16(5))
	m.put(derived, l.Derived.THAC0, int16(18))
	m.put(derived, l.Derived.Level1, fields.levels[0])
	m.put(derived, l.Derived.Level2, fields.levels[1])
	m.put(derived, l.Derived.Level3, fields.levels[2])
	m.put(derived, l.Derived.Dex, int16(18))
	m.put(derived, l.Derived.Chr, int16(16))

	var equipped, timed []process.ProcessMemoryAddress
	for _, e := range fields.equipped {
		equipped = append(equipped, m.effect(e))
	}
	for _, e := range fields.timed {
		timed = append(timed, m.effect(e))
	}
	m.ptrList(addr.Add(off.EquippedEffects.Int64()), equipped...)
	m.ptrList(addr.Add(off.TimedEffects.Int64()), timed...)
	return addr
}

// countingChannel counts reads reaching the wrapped channel.
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

// exitingChannel behaves like a target that exits after a number of reads.
type exitingChannel struct {
	process.Channel
	remaining int
}

func (c *exitingChannel) Exists() bool {
	return c.remaining > 0
}

func (c *exitingChannel) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	if c.remaining <= 0 {
		return nil, process.ErrTargetClosed
	}
	c.remaining--
	return c.Channel.ReadMemory(addr, size)
}

func (c *exitingChannel) ReadMemoryInto(buf []byte, addr process.ProcessMemoryAddress, size process.ProcessMemorySize) (int, error) {
	if c.remaining <= 0 {
		return 0, process.ErrTargetClosed
	}
	c.remaining--
	return c.Channel.ReadMemoryInto(buf, addr, size)
}
