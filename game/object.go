package game

import (
	"fmt"

	"iemem/enum"
	"iemem/ids"
	"iemem/layout"
	"iemem/process"
	"iemem/remote"
)

type Point struct {
	X int32
	Y int32
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// AIObjectType is the script identity of an object: what scripts match it
// against.
type AIObjectType struct {
	Name        *string
	EnemyAlly   enum.Lookup[ids.EnemyAlly]
	General     enum.Lookup[ids.General]
	Race        enum.Lookup[ids.Race]
	Class       enum.Lookup[ids.Class]
	Instance    int32
	SpecialCase [5]uint8
	Specifics   uint8
	Gender      enum.Lookup[ids.Gender]
	Alignment   enum.Lookup[ids.Alignment]
}

// GameObject is the common head of every object in the entity list.
type GameObject struct {
	ObjectType ids.ObjectType
	Pos        Point
	PosZ       int32
	ListType   uint8
	TypeAI     AIObjectType
	ID         int32
	CanBeSeen  int16
}

// AIBase is a decoded entity: the handle it was reached through and its
// object head.
type AIBase struct {
	Handle EntityHandle
	Object GameObject
}

func aiTypeSpan(t layout.AIType) int64 {
	return span(
		[2]int64{t.Name.Int64(), 8},
		[2]int64{t.EnemyAlly.Int64(), 1},
		[2]int64{t.General.Int64(), 1},
		[2]int64{t.Race.Int64(), 1},
		[2]int64{t.Class.Int64(), 1},
		[2]int64{t.Instance.Int64(), 4},
		[2]int64{t.SpecialCase.Int64(), 5},
		[2]int64{t.Specifics.Int64(), 1},
		[2]int64{t.Gender.Int64(), 1},
		[2]int64{t.Alignment.Int64(), 1},
	)
}

func objectSpan(l *layout.Layout) int64 {
	o := l.Object
	return span(
		[2]int64{o.ObjectType.Int64(), 1},
		[2]int64{o.Pos.Int64(), 8},
		[2]int64{o.PosZ.Int64(), 4},
		[2]int64{o.ListType.Int64(), 1},
		[2]int64{o.TypeAI.Int64() + aiTypeSpan(l.AIType), 0},
		[2]int64{o.ID.Int64(), 4},
		[2]int64{o.CanBeSeen.Int64(), 2},
	)
}

// ReadAIObjectType decodes the script identity record at p. Identifier
// fields the tables do not know are kept as Unknown.
func ReadAIObjectType(ch process.Channel, l *layout.Layout, p remote.Ptr[remote.Void]) (AIObjectType, error) {
	var t AIObjectType
	var err error
	off := l.AIType

	if t.Name, err = ReadIndirectString(ch, p.ByteOffset(off.Name.Int64()), off.NameCap); err != nil {
		return t, fmt.Errorf("name: %w", err)
	}

	var raw struct {
		enemyAlly, general, race, class, specifics, gender, alignment uint8
	}
	fields := []struct {
		offset layout.Offset
		dst    *uint8
	}{
		{off.EnemyAlly, &raw.enemyAlly},
		{off.General, &raw.general},
		{off.Race, &raw.race},
		{off.Class, &raw.class},
		{off.Specifics, &raw.specifics},
		{off.Gender, &raw.gender},
		{off.Alignment, &raw.alignment},
	}
	for _, f := range fields {
		if *f.dst, err = remote.ReadAt[uint8](ch, p, f.offset.Int64()); err != nil {
			return t, err
		}
	}
	if t.Instance, err = remote.ReadAt[int32](ch, p, off.Instance.Int64()); err != nil {
		return t, err
	}
	if t.SpecialCase, err = remote.ReadAt[[5]uint8](ch, p, off.SpecialCase.Int64()); err != nil {
		return t, err
	}

	t.EnemyAlly = ids.EnemyAllies.Lookup(ids.EnemyAlly(raw.enemyAlly))
	t.General = ids.Generals.Lookup(ids.General(raw.general))
	t.Race = ids.Races.Lookup(ids.Race(raw.race))
	t.Class = ids.Classes.Lookup(ids.Class(raw.class))
	t.Specifics = raw.specifics
	t.Gender = ids.Genders.Lookup(ids.Gender(raw.gender))
	t.Alignment = ids.Alignments.Lookup(ids.Alignment(raw.alignment))
	return t, nil
}

// ReadAIBase decodes the object head an entity handle points at.
//
// An invalid handle yields (nil, nil). The object kind selects how the rest
// of the record is interpreted, so a kind outside ids.ObjectTypes fails with
// *process.InvalidEnumValueError instead of decoding as Unknown.
func ReadAIBase(ch process.Channel, l *layout.Layout, h EntityHandle) (*AIBase, error) {
	if !h.IsValid() {
		return nil, nil
	}

	p := remote.Cast[remote.Void](h.Ptr)
	head, err := readBlock(ch, p, objectSpan(l))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h, err)
	}

	off := l.Object
	kind, err := remote.ReadAt[uint8](head, p, off.ObjectType.Int64())
	if err != nil {
		return nil, err
	}
	objectType, err := ids.ObjectTypes.Parse(ids.ObjectType(kind))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h, err)
	}

	obj := GameObject{ObjectType: objectType}
	if obj.Pos, err = remote.ReadAt[Point](head, p, off.Pos.Int64()); err != nil {
		return nil, err
	}
	if obj.PosZ, err = remote.ReadAt[int32](head, p, off.PosZ.Int64()); err != nil {
		return nil, err
	}
	if obj.ListType, err = remote.ReadAt[uint8](head, p, off.ListType.Int64()); err != nil {
		return nil, err
	}
	if obj.TypeAI, err = ReadAIObjectType(head, l, p.ByteOffset(off.TypeAI.Int64())); err != nil {
		return nil, fmt.Errorf("%s: type: %w", h, err)
	}
	if obj.ID, err = remote.ReadAt[int32](head, p, off.ID.Int64()); err != nil {
		return nil, err
	}
	if obj.CanBeSeen, err = remote.ReadAt[int16](head, p, off.CanBeSeen.Int64()); err != nil {
		return nil, err
	}

	return &AIBase{Handle: h, Object: obj}, nil
}
